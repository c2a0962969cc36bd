// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package tripstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/skitrip/common/tripdb"
)

// NewFirestore returns a Store backed by the trips collection of store.
func NewFirestore(store *firestore.Client) *Firestore {
	return &Firestore{
		store: store,
	}
}

// Firestore is a Store backed by Cloud Firestore.
type Firestore struct {
	store *firestore.Client
}

func (f *Firestore) ListTrips(ctx context.Context) ([]tripdb.Trip, error) {
	docs, err := f.store.Collection(tripdb.CollectionTrips).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("tripstore: getting trips from firestore: %w", err)
	}
	return decodeTrips(ctx, docs), nil
}

func (f *Firestore) GetTrip(ctx context.Context, id string) (tripdb.Trip, error) {
	doc, err := f.store.Collection(tripdb.CollectionTrips).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return tripdb.Trip{}, ErrTripNotFound
		}
		return tripdb.Trip{}, fmt.Errorf("tripstore: getting trip %q from firestore: %w", id, err)
	}
	return tripdb.DecodeTrip(doc.Ref.ID, doc.DataTo)
}

func (f *Firestore) SubscribeTrips(ctx context.Context, fn func([]tripdb.Trip)) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		it := f.store.Collection(tripdb.CollectionTrips).Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
					return
				}
				slog.ErrorContext(ctx, "tripstore: receiving trips snapshot", "error", err)
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				slog.ErrorContext(ctx, "tripstore: reading trips snapshot", "error", err)
				return
			}
			fn(decodeTrips(ctx, docs))
		}
	}()

	return sync.OnceFunc(func() {
		cancel()
		<-done
	})
}

func (f *Firestore) WriteTrip(ctx context.Context, id string, trip tripdb.Trip) error {
	if _, err := f.store.Collection(tripdb.CollectionTrips).Doc(id).Set(ctx, trip); err != nil {
		return fmt.Errorf("tripstore: writing trip %q to firestore: %w", id, err)
	}
	return nil
}

// decodeTrips decodes docs, skipping any that are not valid trips.
func decodeTrips(ctx context.Context, docs []*firestore.DocumentSnapshot) []tripdb.Trip {
	trips := make([]tripdb.Trip, 0, len(docs))
	for _, doc := range docs {
		trip, err := tripdb.DecodeTrip(doc.Ref.ID, doc.DataTo)
		if err != nil {
			slog.WarnContext(ctx, "tripstore: skipping invalid trip document", "id", doc.Ref.ID, "error", err)
			continue
		}
		trips = append(trips, trip)
	}
	return trips
}
