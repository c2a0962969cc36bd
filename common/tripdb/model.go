// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package tripdb

// CollectionTrips is the Firestore collection holding one document per trip.
const CollectionTrips = "trips"

// IngredientSection represents a group of ingredient lines in a meal.
type IngredientSection struct {
	// Title is the optional title of the section.
	Title string `firestore:"title,omitempty" json:"title,omitempty" yaml:"title,omitempty"`

	// Ingredients are the ingredient lines as free-form text.
	Ingredients []string `firestore:"ingredients" json:"ingredients" yaml:"ingredients"`
}

// DirectionSection represents a group of preparation steps in a meal.
type DirectionSection struct {
	// Title is the optional title of the section.
	Title string `firestore:"title,omitempty" json:"title,omitempty" yaml:"title,omitempty"`

	// Steps are the steps as free-form text.
	Steps []string `firestore:"steps" json:"steps" yaml:"steps"`
}

// Meal is one cooking assignment within a trip.
type Meal struct {
	// Title is the title of the meal. Within a trip, the title identifies the meal.
	Title string `firestore:"title" json:"title" yaml:"title"`

	// Date is the display date of the meal, e.g. "Sunday, 2/1/25". It is never parsed
	// for storage.
	Date string `firestore:"date" json:"date" yaml:"date"`

	// CookedBy are the names of the people cooking the meal.
	CookedBy []string `firestore:"cookedBy" json:"cookedBy" yaml:"cookedBy"`

	// IngredientSections are the ingredients of the meal grouped into sections.
	IngredientSections []IngredientSection `firestore:"ingredientSections" json:"ingredientSections" yaml:"ingredientSections"`

	// DirectionSections are the steps of the meal grouped into sections.
	DirectionSections []DirectionSection `firestore:"directionSections" json:"directionSections" yaml:"directionSections"`

	// ImageURL is the URL of an image of the meal.
	ImageURL string `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Trip is a single ski trip stored in Firestore. The whole trip, including its meals,
// is always written as one document.
type Trip struct {
	// ID is the ID of the Firestore document, normally the location. It is not stored
	// as a field.
	ID string `firestore:"-" json:"id,omitempty" yaml:"-"`

	// Location is the name of the trip location, e.g. "Beaver Creek, CO".
	Location string `firestore:"location" json:"location" yaml:"location"`

	// Year is the year of the trip.
	Year int `firestore:"year" json:"year" yaml:"year"`

	// Address is the street address of the lodging.
	Address string `firestore:"address" json:"address" yaml:"address"`

	// StartDate is the display start date of the trip.
	StartDate string `firestore:"startDate" json:"startDate" yaml:"startDate"`

	// EndDate is the display end date of the trip.
	EndDate string `firestore:"endDate" json:"endDate" yaml:"endDate"`

	// Meals are the meals of the trip in display order.
	Meals []Meal `firestore:"meals" json:"meals" yaml:"meals"`
}

// DocumentID returns the ID to write the trip under. Trips read from the store carry
// their document ID, new ones are keyed by location.
func (t *Trip) DocumentID() string {
	if t.ID != "" {
		return t.ID
	}
	return t.Location
}

// Clone returns a deep copy of the trip.
func (t Trip) Clone() Trip {
	res := t
	if t.Meals != nil {
		res.Meals = make([]Meal, len(t.Meals))
		for i, m := range t.Meals {
			res.Meals[i] = m.Clone()
		}
	}
	return res
}

// Clone returns a deep copy of the meal.
func (m Meal) Clone() Meal {
	res := m
	res.CookedBy = cloneStrings(m.CookedBy)
	if m.IngredientSections != nil {
		res.IngredientSections = make([]IngredientSection, len(m.IngredientSections))
		for i, s := range m.IngredientSections {
			res.IngredientSections[i] = IngredientSection{Title: s.Title, Ingredients: cloneStrings(s.Ingredients)}
		}
	}
	if m.DirectionSections != nil {
		res.DirectionSections = make([]DirectionSection, len(m.DirectionSections))
		for i, s := range m.DirectionSections {
			res.DirectionSections[i] = DirectionSection{Title: s.Title, Steps: cloneStrings(s.Steps)}
		}
	}
	return res
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
