// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package seed

import (
	"log/slog"
	"net/http"

	"github.com/curioswitch/skitrip/common/catalog"
	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/frontend/server/internal/util"
)

func NewHandler(store catalog.TripWriter, trips []tripdb.Trip) *Handler {
	return &Handler{
		store: store,
		trips: trips,
	}
}

type Handler struct {
	store catalog.TripWriter
	trips []tripdb.Trip
}

// Seed writes the catalog trips to the store.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := catalog.Seed(ctx, h.store, h.trips); err != nil {
		slog.ErrorContext(ctx, "seed: failed to add trips", "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to add trips")
		return
	}
	util.WriteJSON(w, r, http.StatusOK, map[string]string{"message": "Trips added successfully!"})
}
