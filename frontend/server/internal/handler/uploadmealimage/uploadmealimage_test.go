// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package uploadmealimage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/common/tripstore"
)

type fakeFiles struct {
	paths []string
	err   error
}

func (f *fakeFiles) WriteFile(_ context.Context, path string, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.paths = append(f.paths, path)
	return "https://storage.googleapis.com/skitrip-public/" + path, nil
}

func seededStore(t *testing.T) *tripstore.Memory {
	t.Helper()
	store := tripstore.NewMemory()
	require.NoError(t, store.WriteTrip(context.Background(), "Beaver Creek, CO", tripdb.Trip{
		Location: "Beaver Creek, CO",
		Meals: []tripdb.Meal{
			{Title: "Soup"},
			{Title: "Red Beans and Rice", IngredientSections: []tripdb.IngredientSection{{Title: "Main Ingredients", Ingredients: []string{"Rice"}}}},
		},
	}))
	return store
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.UploadMealImage(rec, httptest.NewRequest(http.MethodPost, "/api/meals/image", strings.NewReader(body)))
	return rec
}

func TestUploadMealImage(t *testing.T) {
	store := seededStore(t)
	files := &fakeFiles{}

	rec := post(NewHandler(store, files), `{"tripId": "Beaver Creek, CO", "mealTitle": "Red Beans and Rice", "imageDataUrl": "data:image/png;base64,aGVsbG8="}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, files.paths, 1)
	assert.True(t, strings.HasPrefix(files.paths[0], "trips/Beaver Creek, CO/meals/"))
	assert.True(t, strings.HasSuffix(files.paths[0], ".png"))

	var res Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "https://storage.googleapis.com/skitrip-public/"+files.paths[0], res.Meal.ImageURL)

	trip, err := store.GetTrip(context.Background(), "Beaver Creek, CO")
	require.NoError(t, err)
	assert.Equal(t, res.Meal.ImageURL, trip.Meals[1].ImageURL)
	assert.Equal(t, "Main Ingredients", trip.Meals[1].IngredientSections[0].Title)
	assert.Empty(t, trip.Meals[0].ImageURL)
}

func TestUploadMealImageErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		files *fakeFiles
		code  int
	}{
		{
			name:  "invalid image",
			body:  `{"tripId": "Beaver Creek, CO", "mealTitle": "Soup", "imageDataUrl": "data:text/plain;base64,aGVsbG8="}`,
			files: &fakeFiles{},
			code:  http.StatusBadRequest,
		},
		{
			name:  "unknown trip",
			body:  `{"tripId": "Vail, CO", "mealTitle": "Soup", "imageDataUrl": "data:image/png;base64,aGVsbG8="}`,
			files: &fakeFiles{},
			code:  http.StatusNotFound,
		},
		{
			name:  "unknown meal",
			body:  `{"tripId": "Beaver Creek, CO", "mealTitle": "Tacos", "imageDataUrl": "data:image/png;base64,aGVsbG8="}`,
			files: &fakeFiles{},
			code:  http.StatusNotFound,
		},
		{
			name:  "storage failure",
			body:  `{"tripId": "Beaver Creek, CO", "mealTitle": "Soup", "imageDataUrl": "data:image/png;base64,aGVsbG8="}`,
			files: &fakeFiles{err: errors.New("unavailable")},
			code:  http.StatusInternalServerError,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(NewHandler(seededStore(t), tc.files), tc.body)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestUploadMealImageSharedTitle(t *testing.T) {
	ctx := context.Background()
	store := tripstore.NewMemory()
	soupA := tripdb.Meal{
		Title:              "Soup",
		CookedBy:           []string{"A"},
		IngredientSections: []tripdb.IngredientSection{{Title: "x", Ingredients: []string{"carrot", ""}}},
		DirectionSections:  []tripdb.DirectionSection{},
	}
	soupB := tripdb.Meal{
		Title:              "Soup",
		CookedBy:           []string{"B"},
		IngredientSections: []tripdb.IngredientSection{{Ingredients: []string{"beef"}}},
		DirectionSections:  []tripdb.DirectionSection{},
	}
	require.NoError(t, store.WriteTrip(ctx, "Beaver Creek, CO", tripdb.Trip{
		Location: "Beaver Creek, CO",
		Meals:    []tripdb.Meal{soupA, soupB},
	}))

	tests := []struct {
		name  string
		body  string
		index int
	}{
		{
			name:  "first match by title",
			body:  `{"tripId": "Beaver Creek, CO", "mealTitle": "Soup", "imageDataUrl": "data:image/png;base64,aGVsbG8="}`,
			index: 0,
		},
		{
			name:  "by index",
			body:  `{"tripId": "Beaver Creek, CO", "mealTitle": "Soup", "mealIndex": 1, "imageDataUrl": "data:image/png;base64,aGVsbG8="}`,
			index: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			files := &fakeFiles{}
			rec := post(NewHandler(store, files), tc.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			url := "https://storage.googleapis.com/skitrip-public/" + files.paths[0]

			trip, err := store.GetTrip(ctx, "Beaver Creek, CO")
			require.NoError(t, err)
			require.Len(t, trip.Meals, 2)
			assert.Equal(t, url, trip.Meals[tc.index].ImageURL)

			// Everything but the image is left untouched, blank lines included.
			for i, want := range []tripdb.Meal{soupA, soupB} {
				got := trip.Meals[i]
				got.ImageURL = ""
				assert.Equal(t, want, got)
			}
		})
	}
}
