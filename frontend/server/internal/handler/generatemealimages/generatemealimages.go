// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package generatemealimages

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-cmp/cmp"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/util"
)

// ImageFiller sets images on the meals of a trip that have none.
type ImageFiller interface {
	FillMissingImages(ctx context.Context, trip tripdb.Trip) (tripdb.Trip, error)
}

// Response is the body of a successful generation.
type Response struct {
	// UpdatedTrips are the IDs of trips that had images added.
	UpdatedTrips []string `json:"updatedTrips"`
}

func NewHandler(store tripstore.Store, filler ImageFiller) *Handler {
	return &Handler{
		store:  store,
		filler: filler,
	}
}

type Handler struct {
	store  tripstore.Store
	filler ImageFiller
}

// GenerateMealImages generates images for every meal without one across all trips.
func (h *Handler) GenerateMealImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.store.ListTrips(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "generatemealimages: listing trips", "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to generate images")
		return
	}

	res := Response{UpdatedTrips: []string{}}
	for _, trip := range trips {
		filled, err := h.filler.FillMissingImages(ctx, trip)
		if err != nil {
			slog.ErrorContext(ctx, "generatemealimages: generating images", "trip", trip.ID, "error", err)
			util.WriteError(w, r, http.StatusInternalServerError, "Failed to generate images")
			return
		}
		if cmp.Equal(filled, trip) {
			continue
		}
		if err := h.store.WriteTrip(ctx, filled.DocumentID(), filled); err != nil {
			slog.ErrorContext(ctx, "generatemealimages: writing trip", "trip", trip.ID, "error", err)
			util.WriteError(w, r, http.StatusInternalServerError, "Failed to generate images")
			return
		}
		res.UpdatedTrips = append(res.UpdatedTrips, filled.DocumentID())
	}

	util.WriteJSON(w, r, http.StatusOK, res)
}
