// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/frontend/server/internal/i18n"
)

func TestFormatMealDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"Sunday, 2/1/25", "Saturday, Feb 1"},
		{"2/2/25", "Sunday, Feb 2"},
		{"Tue, 2/4/2025", "Tuesday, Feb 4"},
		{"2025-02-05", "Wednesday, Feb 5"},
		{"February 3, 2025", "Monday, Feb 3"},
		{"Apres ski", "Apres ski"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMealDate(tc.date))
		})
	}
}

func testPage() Page {
	return Page{
		Labels: i18n.UserLabels(context.Background()),
		Trips: []tripdb.Trip{
			{
				ID:        "Beaver Creek, CO",
				Location:  "Beaver Creek, CO",
				Year:      2025,
				Address:   "1024 Bachelor Ridge Rd.",
				StartDate: "Jan 31",
				EndDate:   "Feb 5",
				Meals: []tripdb.Meal{
					{Title: "Sunday Sauce & Meatballs", Date: "Monday, 2/2/25", CookedBy: []string{"Marissa", "Claudette", "Bean"}},
				},
			},
		},
	}
}

func TestRenderPage(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, RenderPage(&sb, testPage()))
	html := sb.String()

	assert.Contains(t, html, "<title>Ski Trip Cookbook</title>")
	assert.Contains(t, html, "Beaver Creek, CO - 2025")
	assert.Contains(t, html, "1024 Bachelor Ridge Rd.")
	assert.Contains(t, html, "Jan 31 - Feb 5")
	assert.Contains(t, html, "Sunday Sauce &amp; Meatballs")
	assert.Contains(t, html, "Sunday, Feb 2")
	assert.Contains(t, html, "Chefs: Marissa, Claudette, Bean")
	assert.Contains(t, html, `id="page-state"`)

	// The page state always carries the labels, only the list itself must not show
	// the placeholder.
	_, list, ok := strings.Cut(html, `<main id="trips" class="trips">`)
	require.True(t, ok)
	list, _, ok = strings.Cut(list, "</main>")
	require.True(t, ok)
	assert.Contains(t, list, "Beaver Creek, CO - 2025")
	assert.NotContains(t, list, "Loading trips...")
}

func TestRenderTripsEmpty(t *testing.T) {
	page := testPage()
	page.Trips = nil
	html, err := RenderTrips(page)
	require.NoError(t, err)
	assert.Contains(t, html, "Loading trips...")
}

func TestStaticHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "WebSocket")
}

func TestAppScriptTracksSavedTitle(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// After a save, uploads must address the meal by its new title.
	js := rec.Body.String()
	assert.Contains(t, js, "current.originalTitle = res.meal.title;")
	assert.Contains(t, js, "mealIndex: current.index,")
}
