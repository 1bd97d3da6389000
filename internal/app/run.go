package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"climabrasil-server/internal/config"
	"climabrasil-server/internal/httpapi"
	clima "climabrasil-server/internal/modules/clima"
	"climabrasil-server/internal/modules/clima/inmet"
	climaviews "climabrasil-server/internal/modules/clima/views"
)

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"inmetBaseURL", cfg.INMETBaseURL,
		"fetchTimeout", cfg.FetchTimeout,
		"maxEstacoes", cfg.MaxEstacoes,
	)

	if err := climaviews.LoadTemplates(); err != nil {
		return err
	}

	client := inmet.New(cfg)
	mux := httpapi.NewMux()
	clima.RegisterFeature(mux, client)

	// The API is consumed by browser frontends on other origins; everything it
	// serves is public and read-only.
	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}).Handler(mux)

	srv := httpapi.NewServer(cfg, corsHandler)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err := <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
