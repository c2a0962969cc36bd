// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package catalog contains the trips the application is bootstrapped with.
package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/curioswitch/skitrip/common/tripdb"
)

//go:embed trips.yaml
var tripsYAML []byte

// TripWriter writes a trip document.
type TripWriter interface {
	WriteTrip(ctx context.Context, id string, trip tripdb.Trip) error
}

// Trips returns a fresh copy of the catalog trips.
func Trips() ([]tripdb.Trip, error) {
	return parseTrips(tripsYAML)
}

func parseTrips(b []byte) ([]tripdb.Trip, error) {
	var trips []tripdb.Trip
	if err := yaml.Unmarshal(b, &trips); err != nil {
		return nil, fmt.Errorf("catalog: unmarshalling trips: %w", err)
	}
	for i := range trips {
		trips[i].Normalize()
		if err := trips[i].Validate(); err != nil {
			return nil, fmt.Errorf("catalog: trip %d: %w", i, err)
		}
	}
	return trips, nil
}

// Seed writes every trip to w keyed by its location, overwriting any existing
// document. Running it again with the same trips leaves the store unchanged.
func Seed(ctx context.Context, w TripWriter, trips []tripdb.Trip) error {
	var grp errgroup.Group
	for _, trip := range trips {
		grp.Go(func() error {
			if err := w.WriteTrip(ctx, trip.Location, trip); err != nil {
				return fmt.Errorf("catalog: seeding trip %q: %w", trip.Location, err)
			}
			return nil
		})
	}
	return grp.Wait()
}
