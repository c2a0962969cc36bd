// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package checkstore

import (
	"log/slog"
	"net/http"

	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/util"
)

func NewHandler(store tripstore.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store tripstore.Store
}

// CheckStore reads all trips to verify the store can be reached.
func (h *Handler) CheckStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.store.ListTrips(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "checkstore: firestore connection error", "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Firestore connection failed")
		return
	}
	util.WriteJSON(w, r, http.StatusOK, map[string]any{"trips": trips})
}
