// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package uploadmealimage

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/curioswitch/skitrip/common/mealgen"
	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/util"
)

// FileWriter writes a file and returns its public URL.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

// Request is the body of an upload request.
type Request struct {
	// TripID is the document ID of the trip the meal belongs to.
	TripID string `json:"tripId"`

	// MealTitle is the title of the meal.
	MealTitle string `json:"mealTitle"`

	// MealIndex is the position of the meal in the trip. When set, it picks between
	// meals sharing a title.
	MealIndex *int `json:"mealIndex,omitempty"`

	// ImageDataURL is the image as a base64 data URL.
	ImageDataURL string `json:"imageDataUrl"`
}

// Response is the body of a successful upload.
type Response struct {
	// Meal is the meal with its new image URL.
	Meal tripdb.Meal `json:"meal"`
}

func NewHandler(store tripstore.Store, files FileWriter) *Handler {
	return &Handler{
		store: store,
		files: files,
	}
}

type Handler struct {
	store tripstore.Store
	files FileWriter
}

func (h *Handler) UploadMealImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Request
	if err := util.ReadJSON(w, r, &req); err != nil {
		util.WriteError(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	img, err := util.DecodeImageDataURL(req.ImageDataURL)
	if err != nil {
		util.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := h.store.GetTrip(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripstore.ErrTripNotFound) {
			util.WriteError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		slog.ErrorContext(ctx, "uploadmealimage: getting trip", "trip", req.TripID, "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Error uploading image")
		return
	}
	idx := findMeal(trip.Meals, req.MealTitle, req.MealIndex)
	if idx < 0 {
		util.WriteError(w, r, http.StatusNotFound, "meal not found")
		return
	}

	path := mealgen.MealImagePath(trip.DocumentID(), uuid.NewString(), img.Ext)
	url, err := h.files.WriteFile(ctx, path, img.ContentType, img.Data)
	if err != nil {
		slog.ErrorContext(ctx, "uploadmealimage: writing image", "path", path, "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Error uploading image")
		return
	}

	// Only the image changes, the rest of the meal is stored as is.
	updated := trip.Clone()
	updated.Meals[idx].ImageURL = url
	if err := h.store.WriteTrip(ctx, updated.DocumentID(), updated); err != nil {
		slog.ErrorContext(ctx, "uploadmealimage: writing trip", "trip", req.TripID, "error", err)
		util.WriteError(w, r, http.StatusInternalServerError, "Error uploading image")
		return
	}

	util.WriteJSON(w, r, http.StatusOK, Response{Meal: updated.Meals[idx]})
}

// findMeal returns the index of the meal titled title, preferring index when it
// points at such a meal, or -1.
func findMeal(meals []tripdb.Meal, title string, index *int) int {
	if index != nil {
		if i := *index; i >= 0 && i < len(meals) && meals[i].Title == title {
			return i
		}
	}
	for i, m := range meals {
		if m.Title == title {
			return i
		}
	}
	return -1
}
