// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package savemeal

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/curioswitch/skitrip/common/reconcile"
	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/util"
)

// Request is the body of a save request.
type Request struct {
	// TripID is the document ID of the trip the meal belongs to.
	TripID string `json:"tripId"`

	// OriginalTitle is the title of the meal before editing.
	OriginalTitle string `json:"originalTitle"`

	// Meal is the edited meal.
	Meal tripdb.Meal `json:"meal"`
}

// Response is the body of a successful save.
type Response struct {
	// Meal is the meal as saved, with empty sections removed.
	Meal tripdb.Meal `json:"meal"`

	// Trip is the trip as saved.
	Trip tripdb.Trip `json:"trip"`
}

func NewHandler(store tripstore.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store tripstore.Store
}

func (h *Handler) SaveMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Request
	if err := util.ReadJSON(w, r, &req); err != nil {
		util.WriteError(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	if req.TripID == "" {
		util.WriteError(w, r, http.StatusBadRequest, "tripId is required")
		return
	}

	trip, err := h.store.GetTrip(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripstore.ErrTripNotFound) {
			util.WriteError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		slog.ErrorContext(ctx, "savemeal: getting trip", "trip", req.TripID, "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Error saving trip")
		return
	}

	updated := reconcile.ApplyMealEdit(trip, req.OriginalTitle, req.Meal)
	if err := h.store.WriteTrip(ctx, updated.DocumentID(), updated); err != nil {
		slog.ErrorContext(ctx, "savemeal: writing trip", "trip", req.TripID, "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Error saving trip")
		return
	}
	slog.InfoContext(ctx, "savemeal: trip updated", "trip", updated.DocumentID(), "meal", req.Meal.Title)

	util.WriteJSON(w, r, http.StatusOK, Response{
		Meal: reconcile.CleanMeal(req.Meal),
		Trip: updated,
	})
}
