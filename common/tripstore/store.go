// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package tripstore reads and writes trip documents.
package tripstore

import (
	"context"
	"errors"

	"github.com/curioswitch/skitrip/common/tripdb"
)

// ErrTripNotFound is returned by GetTrip when no trip document has the requested ID.
var ErrTripNotFound = errors.New("tripstore: trip not found")

// Store is the storage of trips.
type Store interface {
	// ListTrips returns every trip currently stored, each with its document ID.
	ListTrips(ctx context.Context) ([]tripdb.Trip, error)

	// GetTrip returns the trip stored under id.
	GetTrip(ctx context.Context, id string) (tripdb.Trip, error)

	// SubscribeTrips calls fn with all trips as soon as they are available and again
	// after every change until ctx is done or the returned function is called.
	// The returned function blocks until fn is no longer running and may be called
	// more than once.
	SubscribeTrips(ctx context.Context, fn func([]tripdb.Trip)) (unsubscribe func())

	// WriteTrip overwrites the trip document stored under id.
	WriteTrip(ctx context.Context, id string, trip tripdb.Trip) error
}
