// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package reconcile turns the free-text edits of a meal into the meal stored
// within its trip.
package reconcile

import (
	"strings"

	"github.com/curioswitch/skitrip/common/tripdb"
)

// DefaultDirectionsTitle is the title given to direction sections that have steps
// but no title. Ingredient sections never get a default title.
const DefaultDirectionsTitle = "Directions"

// CleanIngredientSections drops blank ingredient lines and removes sections that
// have neither a title nor any ingredient left. Titles are trimmed.
func CleanIngredientSections(sections []tripdb.IngredientSection) []tripdb.IngredientSection {
	res := make([]tripdb.IngredientSection, 0, len(sections))
	for _, sec := range sections {
		title := strings.TrimSpace(sec.Title)
		ingredients := nonBlank(sec.Ingredients)
		if title == "" && len(ingredients) == 0 {
			continue
		}
		res = append(res, tripdb.IngredientSection{
			Title:       title,
			Ingredients: ingredients,
		})
	}
	return res
}

// CleanDirectionSections drops blank steps and removes sections that have neither a
// title nor any step left. Untitled sections with steps are titled
// DefaultDirectionsTitle.
func CleanDirectionSections(sections []tripdb.DirectionSection) []tripdb.DirectionSection {
	res := make([]tripdb.DirectionSection, 0, len(sections))
	for _, sec := range sections {
		title := strings.TrimSpace(sec.Title)
		steps := nonBlank(sec.Steps)
		switch {
		case title == "" && len(steps) == 0:
			continue
		case title == "":
			title = DefaultDirectionsTitle
		}
		res = append(res, tripdb.DirectionSection{
			Title: title,
			Steps: steps,
		})
	}
	return res
}

// CleanMeal returns a copy of meal with both section lists cleaned.
func CleanMeal(meal tripdb.Meal) tripdb.Meal {
	res := meal.Clone()
	res.IngredientSections = CleanIngredientSections(meal.IngredientSections)
	res.DirectionSections = CleanDirectionSections(meal.DirectionSections)
	return res
}

// ApplyMealEdit cleans edited and puts it in place of every meal of trip titled
// originalTitle. When no meal has that title, the meals are returned unchanged.
// trip is not modified.
func ApplyMealEdit(trip tripdb.Trip, originalTitle string, edited tripdb.Meal) tripdb.Trip {
	final := CleanMeal(edited)

	res := trip.Clone()
	for i, m := range res.Meals {
		if m.Title == originalTitle {
			// Each match gets its own copy so the returned meals never share slices.
			res.Meals[i] = final.Clone()
		}
	}
	return res
}

// SplitLines splits the contents of a multi-line text field into lines. Blank lines
// are kept, cleaning removes them on save.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func nonBlank(lines []string) []string {
	res := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			res = append(res, l)
		}
	}
	return res
}
