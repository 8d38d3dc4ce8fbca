package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-forecast/config"
	_ "weather-forecast/docs"
	v1 "weather-forecast/internal/controllers/http/v1"
	"weather-forecast/internal/repositories"
	"weather-forecast/internal/services/presentation"
	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/httpserver"
	"weather-forecast/pkg/logger"
	"weather-forecast/pkg/observe"
	"weather-forecast/web"
)

// @title Weather Forecast
// @version 1.0.0
// @description Forecast viewer backed by the OpenWeatherMap 5 day / 3 hour forecast.
// @description Shapes the next days of a place into a temperature series or a grid of sky icons.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Forecast
// @tag.description Forecast operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	dotenvErr := godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	hook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)

	l := logger.NewZapLogger(cnf.App.Name, cnf.App.Env, cnf.Log.Level, os.Stdout, hook)
	hook.SetLogger(l)

	if dotenvErr != nil {
		l.Warning("no .env file loaded", map[string]any{"err": dotenvErr.Error()})
	}

	cred := config.LoadCredential(cnf.Weather.SecretsFile, os.LookupEnv)
	if !cred.Present() {
		l.Warning("no API key found in secrets store or environment", map[string]any{
			"secrets_file": cnf.Weather.SecretsFile,
		})
	} else {
		l.Info("API key resolved", map[string]any{"source": string(cred.Source)})
	}

	if err := presentation.DefaultIcons.Verify(web.FS); err != nil {
		l.Warning("icon set is incomplete", map[string]any{"err": err.Error()})
	}

	readTimeout, writeTimeout, idleTimeout := cnf.Server.Timeouts()
	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		Views:        web.NewViews(),
	}, l)

	repo := repositories.InitForecastRepository(cnf, cred, l)

	service := weather.NewForecastService(repo, presentation.DefaultIcons, l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"version":  cnf.App.Version,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		hook.Flush()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
