// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/genai"

	"github.com/curioswitch/skitrip/common/catalog"
	"github.com/curioswitch/skitrip/common/file"
	"github.com/curioswitch/skitrip/common/image"
	"github.com/curioswitch/skitrip/common/mealgen"
	"github.com/curioswitch/skitrip/common/tripstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/config"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/checkstore"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/generatemealimages"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/home"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/listtrips"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/savemeal"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/seed"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/uploadmealimage"
	"github.com/curioswitch/skitrip/frontend/server/internal/handler/watchtrips"
	"github.com/curioswitch/skitrip/frontend/server/internal/i18n"
	"github.com/curioswitch/skitrip/frontend/server/internal/view"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	store, closeStore, err := newTripStore(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	trips, err := catalog.Trips()
	if err != nil {
		return fmt.Errorf("main: load trip catalog: %w", err)
	}
	if conf.Store.Seed {
		if err := catalog.Seed(ctx, store, trips); err != nil {
			return fmt.Errorf("main: seed trips: %w", err)
		}
	}

	var (
		uploadImage    http.HandlerFunc
		generateImages http.HandlerFunc
	)
	if conf.Images.Disabled {
		slog.InfoContext(ctx, "main: meal images disabled")
	} else {
		imgs, err := newImages(ctx, conf, store)
		if err != nil {
			return err
		}
		defer imgs.close()
		uploadImage = imgs.upload.UploadMealImage
		generateImages = imgs.generate.GenerateMealImages
	}

	mux.Use(i18n.Middleware())

	mux.Get("/", home.NewHandler(store).Home)
	mux.Handle("/static/*", http.StripPrefix("/static/", view.StaticHandler()))

	mux.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)

		r.Get("/trips", listtrips.NewHandler(store).ListTrips)
		r.Get("/trips/watch", watchtrips.NewHandler(store).WatchTrips)
		r.Post("/meals/save", savemeal.NewHandler(store).SaveMeal)
		if uploadImage != nil {
			r.Post("/meals/image", uploadImage)
		}
	})

	mux.Route("/internal", func(r chi.Router) {
		r.Get("/seed", seed.NewHandler(store, trips).Seed)
		r.Get("/check-store", checkstore.NewHandler(store).CheckStore)
		if generateImages != nil {
			r.Post("/generate-images", generateImages)
		}
	})

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

type images struct {
	upload   *uploadmealimage.Handler
	generate *generatemealimages.Handler
	close    func()
}

func newImages(ctx context.Context, conf *config.Config, store tripstore.Store) (*images, error) {
	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("main: create storage client: %w", err)
	}
	closeStorage := func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}
	files := file.NewIO(storage, conf.ImagesBucket())

	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		Project: conf.Google.Project,
	})
	if err != nil {
		closeStorage()
		return nil, fmt.Errorf("main: create genai client: %w", err)
	}
	generator := mealgen.NewGenerator(genAI, image.NewWriter(files), conf.Images.Model)

	return &images{
		upload:   uploadmealimage.NewHandler(store, files),
		generate: generatemealimages.NewHandler(store, generator),
		close:    closeStorage,
	}, nil
}

func newTripStore(ctx context.Context, conf *config.Config) (tripstore.Store, func(), error) {
	switch conf.Store.Backend {
	case "memory":
		return tripstore.NewMemory(), func() {}, nil
	case "", "firestore":
	default:
		return nil, nil, fmt.Errorf("main: unknown store backend %q", conf.Store.Backend)
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return nil, nil, fmt.Errorf("main: create firebase app: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("main: create firestore client: %w", err)
	}
	return tripstore.NewFirestore(firestore), func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}, nil
}
