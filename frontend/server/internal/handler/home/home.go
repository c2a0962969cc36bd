// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package home

import (
	"log/slog"
	"net/http"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/i18n"
	"github.com/curioswitch/skitrip/frontend/server/internal/view"
)

func NewHandler(store tripstore.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store tripstore.Store
}

// Home renders the trips page. If trips cannot be read, the page is rendered empty
// and filled in by the live subscription.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.store.ListTrips(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "home: listing trips", "error", err)
		trips = []tripdb.Trip{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPage(w, view.Page{
		Labels: i18n.UserLabels(ctx),
		Trips:  trips,
	}); err != nil {
		slog.ErrorContext(ctx, "home: rendering page", "error", err)
	}
}
