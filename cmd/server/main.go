package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/focusnest/crafternoon/internal/config"
	"github.com/focusnest/crafternoon/internal/datastore"
	"github.com/focusnest/crafternoon/internal/httpapi"
	"github.com/focusnest/crafternoon/internal/hunt"
	"github.com/focusnest/crafternoon/internal/progress"
	"github.com/focusnest/crafternoon/internal/shared/dto"
	"github.com/focusnest/crafternoon/internal/shared/logging"
	sharedserver "github.com/focusnest/crafternoon/internal/shared/server"
	"github.com/focusnest/crafternoon/internal/view"
)

const serviceName = "hunt-service"

// BuildVersion is set at compile time via -ldflags.
var BuildVersion string

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger(serviceName, cfg.LogLevel)

	version := BuildVersion
	if version == "" {
		version = "dev-" + strconv.FormatInt(time.Now().Unix(), 10)
	}

	repo, cleanup, err := datastore.Open(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("repository init error: %w", err))
	}
	defer cleanup()

	store, err := progress.NewStore(repo, logger)
	if err != nil {
		panic(fmt.Errorf("progress store init error: %w", err))
	}

	renderer, err := view.NewRenderer(version)
	if err != nil {
		panic(fmt.Errorf("template init error: %w", err))
	}

	sessions := hunt.NewSessions(store, logger, cfg.HTTP.SessionLimit)

	router := sharedserver.NewRouter(dto.HealthResponse{
		Service:   serviceName,
		Version:   version,
		Datastore: string(cfg.DataStore),
	}, func(r chi.Router) {
		httpapi.RegisterRoutes(r, sessions, renderer, httpapi.Options{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			SecureCookies:  cfg.HTTP.SecureCookies,
			Logger:         logger,
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("hunt service configured", "datastore", cfg.DataStore, "version", version)
	if err := sharedserver.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
