package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"weather-stats/config"
	v1 "weather-stats/internal/controllers/http/v1"
	"weather-stats/internal/models"
	"weather-stats/internal/repositories"
	"weather-stats/internal/services/weather"
	"weather-stats/internal/storage"
	"weather-stats/pkg/httpserver"
	"weather-stats/pkg/logger"
	"weather-stats/pkg/observe"
)

// @title Weather Stats API
// @version 0.1.0
// @description Computes temperature statistics for a place and date range from the VisualCrossing timeline API
// @description and keeps every result in memory for later retrieval or deletion.

// @contact.name KhudyakovGleb

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather statistics operations
// @tag.name Records
// @tag.description Stored statistics records
// @tag.name Info
// @tag.description Service metadata
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load configuration: %v\n", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot init sentry: %v\n", err)
		} else {
			writers = append(writers, hook)
		}
	}

	l, err := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot init logger: %v\n", err)
		os.Exit(1)
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	if cnf.Weather.APIKey == "" {
		l.Warning("weather API key is not set, statistics requests will fail", map[string]any{
			"env": "WEATHER_API_KEY or API_KEY",
		})
	}

	repo := repositories.NewVisualCrossingRepository(repositories.VisualCrossingOptions{
		BaseURL:          cnf.Weather.BaseURL,
		APIKey:           cnf.Weather.APIKey,
		Timeout:          cnf.Weather.Timeout,
		FailureThreshold: cnf.Weather.FailureThreshold,
		OpenInterval:     cnf.Weather.OpenInterval,
	}, nil, l)

	service := weather.NewWeatherService(
		repo,
		storage.NewMemoryStore(),
		l,
		weather.WithEmptyListNotFound(cnf.Storage.EmptyListNotFound),
	)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	}, l)

	v1.NewRouter(
		app,
		service,
		models.AppInfo{
			Version: cnf.App.Version,
			Service: cnf.App.Service,
			Author:  cnf.App.Author,
		},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"env":     cnf.App.Env,
		"version": cnf.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			l.Error(err)
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		l.Info("received shutdown signal")
	case <-ctx.Done():
		l.Warning("context cancelled")
	}
}
