// Command forecast-probe fetches one forecast window and prints a short summary.
//
//	forecast-probe -place Tokyo -days 3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"weather-forecast/config"
	"weather-forecast/internal/models"
	"weather-forecast/internal/repositories"
	"weather-forecast/pkg/logger"
)

var errEmptyWindow = errors.New("no data points retrieved")

func main() {
	place := flag.String("place", "Tokyo", "place to fetch the forecast for")
	days := flag.Int("days", 3, "number of forecast days")
	flag.Parse()

	_ = godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	l := logger.NewZapLogger("forecast-probe", cnf.App.Env, cnf.Log.Level, os.Stderr)
	defer func() { _ = l.Stop() }()

	cred := config.LoadCredential(cnf.Weather.SecretsFile, os.LookupEnv)
	repo := repositories.InitForecastRepository(cnf, cred, l)

	if err := probe(context.Background(), repo, *place, *days, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "probe failed:", err)
		var fe *models.ForecastError
		if errors.As(err, &fe) {
			fmt.Fprintln(os.Stderr, fe.UserMessage())
		}
		os.Exit(1)
	}
}

func probe(ctx context.Context, repo repositories.ForecastRepository, place string, days int, w io.Writer) error {
	window, err := repo.FetchForecast(ctx, place, days)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Number of data points retrieved: %d\n", len(window))
	if len(window) == 0 {
		return errEmptyWindow
	}

	first := window[0]
	fmt.Fprintf(w, "First data point: %s  %.2f C  %s\n", first.TimeText, first.TemperatureCelsius, first.WeatherCategory)

	return nil
}
