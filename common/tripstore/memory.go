// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package tripstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/curioswitch/skitrip/common/tripdb"
)

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		trips: map[string]tripdb.Trip{},
		subs:  map[*memorySub]struct{}{},
	}
}

// Memory is a Store that keeps trips in process memory, for local development and
// tests. Like Firestore, trips are listed in document ID order.
type Memory struct {
	mu    sync.Mutex
	trips map[string]tripdb.Trip
	subs  map[*memorySub]struct{}
}

type memorySub struct {
	// latest holds at most one pending snapshot, newer snapshots replace it.
	latest chan []tripdb.Trip
}

func (m *Memory) ListTrips(context.Context) ([]tripdb.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshotLocked(), nil
}

func (m *Memory) GetTrip(_ context.Context, id string) (tripdb.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trip, ok := m.trips[id]
	if !ok {
		return tripdb.Trip{}, ErrTripNotFound
	}
	return trip.Clone(), nil
}

func (m *Memory) SubscribeTrips(ctx context.Context, fn func([]tripdb.Trip)) func() {
	ctx, cancel := context.WithCancel(ctx)
	sub := &memorySub{latest: make(chan []tripdb.Trip, 1)}

	m.mu.Lock()
	m.subs[sub] = struct{}{}
	sub.latest <- m.snapshotLocked()
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case trips := <-sub.latest:
				fn(trips)
			}
		}
	}()

	return sync.OnceFunc(func() {
		m.mu.Lock()
		delete(m.subs, sub)
		m.mu.Unlock()

		cancel()
		<-done
	})
}

func (m *Memory) WriteTrip(_ context.Context, id string, trip tripdb.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	trip = trip.Clone()
	trip.ID = id
	trip.Normalize()
	m.trips[id] = trip

	for sub := range m.subs {
		snap := m.snapshotLocked()
		select {
		case <-sub.latest:
		default:
		}
		sub.latest <- snap
	}
	return nil
}

func (m *Memory) snapshotLocked() []tripdb.Trip {
	res := make([]tripdb.Trip, 0, len(m.trips))
	for _, id := range slices.Sorted(maps.Keys(m.trips)) {
		res = append(res, m.trips[id].Clone())
	}
	return res
}
