// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package mealgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/curioswitch/skitrip/common/prompts"
	"github.com/curioswitch/skitrip/common/tripdb"
)

// DefaultImageModel is the model used to generate meal images when none is configured.
const DefaultImageModel = "gemini-2.5-flash-image"

// ImageWriter stores a generated image and returns its URL.
type ImageWriter interface {
	WriteGenAIImage(ctx context.Context, path string, blob *genai.Blob) (string, error)
}

type Generator struct {
	genAI  *genai.Client
	images ImageWriter
	model  string
}

func NewGenerator(genAI *genai.Client, images ImageWriter, model string) *Generator {
	if model == "" {
		model = DefaultImageModel
	}
	return &Generator{
		genAI:  genAI,
		images: images,
		model:  model,
	}
}

// FillMissingImages generates an image for every meal of trip without one and
// returns the trip with the image URLs set.
func (g *Generator) FillMissingImages(ctx context.Context, trip tripdb.Trip) (tripdb.Trip, error) {
	urls := make([]string, len(trip.Meals))

	var grp errgroup.Group
	for i, meal := range trip.Meals {
		if meal.ImageURL != "" {
			continue
		}
		grp.Go(func() error {
			url, err := g.generateMealImage(ctx, trip.DocumentID(), meal)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return trip, err
	}

	return withImageURLs(trip, urls), nil
}

// withImageURLs returns a copy of trip with the image URL of meal i set to urls[i]
// where it is not empty. Meals are addressed by position since titles may repeat.
func withImageURLs(trip tripdb.Trip, urls []string) tripdb.Trip {
	res := trip.Clone()
	for i, url := range urls {
		if url != "" {
			res.Meals[i].ImageURL = url
		}
	}
	return res
}

func (g *Generator) generateMealImage(ctx context.Context, tripID string, meal tripdb.Meal) (string, error) {
	mealJSON, err := json.Marshal(meal)
	if err != nil {
		return "", fmt.Errorf("mealgen: marshalling meal %q: %w", meal.Title, err)
	}

	res, err := g.genAI.Models.GenerateContent(ctx, g.model, genai.Text(string(mealJSON)), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		SystemInstruction:  genai.NewContentFromText(prompts.MealImage(), genai.RoleModel),
	})
	if err != nil {
		return "", fmt.Errorf("mealgen: generating image for meal %q: %w", meal.Title, err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("mealgen: unexpected response from genai for meal image generation request: %v", res)
	}
	var blob *genai.Blob
	for _, part := range res.Candidates[0].Content.Parts {
		b := part.InlineData
		if b != nil && (b.MIMEType == "image/jpeg" || b.MIMEType == "image/png") {
			blob = b
			break
		}
	}
	if blob == nil {
		return "", nil
	}

	url, err := g.images.WriteGenAIImage(ctx, MealImagePath(tripID, uuid.NewString(), "jpg"), blob)
	if err != nil {
		return "", fmt.Errorf("mealgen: writing image for meal %q: %w", meal.Title, err)
	}
	return url, nil
}

// MealImagePath returns the storage path for an image of a meal of a trip.
func MealImagePath(tripID string, name string, ext string) string {
	return fmt.Sprintf("trips/%s/meals/%s.%s", tripID, name, ext)
}
