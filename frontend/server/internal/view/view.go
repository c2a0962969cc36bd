// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package view renders the trips page.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/curioswitch/skitrip/common/tripdb"
	"github.com/curioswitch/skitrip/frontend/server/internal/i18n"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"formatMealDate": FormatMealDate,
	"join":           strings.Join,
}).ParseFS(templateFiles, "templates/*.html"))

// Page is the data of the trips page.
type Page struct {
	Labels i18n.Labels
	Trips  []tripdb.Trip
}

// State is the data the page script starts from, embedded into the page as JSON.
type State struct {
	Labels i18n.Labels   `json:"labels"`
	Trips  []tripdb.Trip `json:"trips"`
}

func (p Page) State() State {
	return State{Labels: p.Labels, Trips: p.Trips}
}

// RenderPage writes the full trips page.
func RenderPage(w io.Writer, page Page) error {
	if err := templates.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("view: rendering page: %w", err)
	}
	return nil
}

// RenderTrips returns the HTML of the trips list, which replaces the list on the
// page when trips change.
func RenderTrips(page Page) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "trips", page); err != nil {
		return "", fmt.Errorf("view: rendering trips: %w", err)
	}
	return buf.String(), nil
}

// StaticHandler serves the page assets.
func StaticHandler() http.Handler {
	static, _ := fs.Sub(staticFiles, "static")
	return http.FileServerFS(static)
}

var mealDateLayouts = []string{
	"1/2/06",
	"1/2/2006",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatMealDate formats a meal date such as "Sunday, 2/1/25" for display on a meal
// card, e.g. "Saturday, Feb 1". The weekday is computed from the date. Dates that
// cannot be parsed are returned as is.
func FormatMealDate(date string) string {
	s := strings.TrimSpace(date)
	if day, rest, ok := strings.Cut(s, ","); ok && isWeekday(day) {
		s = strings.TrimSpace(rest)
	}
	for _, layout := range mealDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Monday, Jan 2")
		}
	}
	return date
}

func isWeekday(s string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return true
		}
	}
	return false
}
