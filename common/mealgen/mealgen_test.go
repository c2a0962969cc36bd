// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package mealgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/skitrip/common/tripdb"
)

func TestMealImagePath(t *testing.T) {
	assert.Equal(t, "trips/Beaver Creek, CO/meals/abc.jpg", MealImagePath("Beaver Creek, CO", "abc", "jpg"))
}

func TestFillMissingImagesNothingMissing(t *testing.T) {
	g := NewGenerator(nil, nil, "")
	assert.Equal(t, DefaultImageModel, g.model)

	trip := tripdb.Trip{
		Location: "Beaver Creek, CO",
		Meals: []tripdb.Meal{
			{Title: "Soup", ImageURL: "https://example.com/soup.jpg"},
		},
	}
	got, err := g.FillMissingImages(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, trip, got)
}

func TestWithImageURLsSharedTitle(t *testing.T) {
	trip := tripdb.Trip{
		Location: "Beaver Creek, CO",
		Meals: []tripdb.Meal{
			{
				Title:              "Soup",
				CookedBy:           []string{"A"},
				IngredientSections: []tripdb.IngredientSection{{Title: "x", Ingredients: []string{"carrot", ""}}},
			},
			{
				Title:              "Soup",
				CookedBy:           []string{"B"},
				IngredientSections: []tripdb.IngredientSection{{Ingredients: []string{"beef"}}},
				ImageURL:           "https://example.com/old.jpg",
			},
		},
	}

	got := withImageURLs(trip, []string{"https://example.com/new.jpg", ""})

	want := trip.Clone()
	want.Meals[0].ImageURL = "https://example.com/new.jpg"
	assert.Equal(t, want, got)
	assert.Empty(t, trip.Meals[0].ImageURL)
}
