// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Store struct {
	// Backend is the storage of trips, either firestore or memory.
	Backend string `koanf:"backend"`

	// Seed writes the trip catalog to the store on startup. Only meant for the memory backend.
	Seed bool `koanf:"seed"`
}

type Images struct {
	// Disabled turns off meal image upload and generation. The server then starts
	// without Cloud Storage or Gemini clients.
	Disabled bool `koanf:"disabled"`

	// Bucket is the public bucket meal images are stored in. Defaults to {project}-public.
	Bucket string `koanf:"bucket"`

	// Model is the name of the model used to generate meal images.
	Model string `koanf:"model"`
}

type Config struct {
	config.Common

	// Store is the configuration for trip storage.
	Store Store `koanf:"store"`

	// Images is the configuration for meal images.
	Images Images `koanf:"images"`
}

// ImagesBucket returns the bucket to store meal images in.
func (c *Config) ImagesBucket() string {
	if c.Images.Bucket != "" {
		return c.Images.Bucket
	}
	return c.Google.Project + "-public"
}
