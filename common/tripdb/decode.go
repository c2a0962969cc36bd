// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package tripdb

import (
	"fmt"
	"strings"
)

// DecodeError is returned when a trip document read from the store does not have
// the expected shape.
type DecodeError struct {
	// DocumentID is the ID of the invalid document.
	DocumentID string

	// Field is the path of the invalid field, e.g. meals[2].title. Empty when the
	// document could not be decoded at all.
	Field string

	// Reason describes the problem.
	Reason string

	// Err is the underlying decoding error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString("tripdb: invalid trip document ")
	fmt.Fprintf(&sb, "%q", e.DocumentID)
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeTrip decodes a trip document with decode, usually DocumentSnapshot.DataTo,
// and validates the result.
func DecodeTrip(id string, decode func(any) error) (Trip, error) {
	var trip Trip
	if err := decode(&trip); err != nil {
		return Trip{}, &DecodeError{DocumentID: id, Err: err}
	}
	trip.ID = id
	trip.Normalize()
	if err := trip.Validate(); err != nil {
		return Trip{}, err
	}
	return trip, nil
}

// Validate checks that the trip has the fields the application relies on.
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.Location) == "" {
		return &DecodeError{DocumentID: t.ID, Field: "location", Reason: "must not be empty"}
	}
	for i, m := range t.Meals {
		if strings.TrimSpace(m.Title) == "" {
			return &DecodeError{DocumentID: t.ID, Field: fmt.Sprintf("meals[%d].title", i), Reason: "must not be empty"}
		}
	}
	return nil
}

// Normalize replaces nil slices with empty ones so documents missing a list field
// render the same as documents with an empty list.
func (t *Trip) Normalize() {
	if t.Meals == nil {
		t.Meals = []Meal{}
	}
	for i := range t.Meals {
		m := &t.Meals[i]
		if m.CookedBy == nil {
			m.CookedBy = []string{}
		}
		if m.IngredientSections == nil {
			m.IngredientSections = []IngredientSection{}
		}
		if m.DirectionSections == nil {
			m.DirectionSections = []DirectionSection{}
		}
		for j := range m.IngredientSections {
			if m.IngredientSections[j].Ingredients == nil {
				m.IngredientSections[j].Ingredients = []string{}
			}
		}
		for j := range m.DirectionSections {
			if m.DirectionSections[j].Steps == nil {
				m.DirectionSections[j].Steps = []string{}
			}
		}
	}
}
