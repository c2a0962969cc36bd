// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listtrips

import (
	"log/slog"
	"net/http"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/util"
)

// Response is the body of a list response.
type Response struct {
	Trips []tripdb.Trip `json:"trips"`
}

func NewHandler(store tripstore.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store tripstore.Store
}

func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.store.ListTrips(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "listtrips: listing trips", "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to list trips")
		return
	}
	util.WriteJSON(w, r, http.StatusOK, Response{Trips: trips})
}
