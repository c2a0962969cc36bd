// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package watchtrips

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/i18n"
	"github.com/curioswitch/skitrip/frontend/server/internal/view"
)

// Update is sent to the client for every snapshot of the trips.
type Update struct {
	// Trips are all the trips.
	Trips []tripdb.Trip `json:"trips"`

	// HTML is the rendered trips list.
	HTML string `json:"html"`
}

func NewHandler(store tripstore.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store    tripstore.Store
	upgrader websocket.Upgrader
}

// WatchTrips sends an Update over a WebSocket whenever trips change, until the
// client disconnects.
func (h *Handler) WatchTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "watchtrips: upgrading connection", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	labels := i18n.UserLabels(ctx)
	unsubscribe := h.store.SubscribeTrips(ctx, func(trips []tripdb.Trip) {
		html, err := view.RenderTrips(view.Page{Labels: labels, Trips: trips})
		if err != nil {
			slog.ErrorContext(ctx, "watchtrips: rendering trips", "error", err)
			return
		}
		if err := conn.WriteJSON(Update{Trips: trips, HTML: html}); err != nil {
			slog.DebugContext(ctx, "watchtrips: writing update", "error", err)
			// Unblocks the read loop below.
			_ = conn.Close()
		}
	})
	defer unsubscribe()

	// The client never sends anything, reading only detects the connection closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
