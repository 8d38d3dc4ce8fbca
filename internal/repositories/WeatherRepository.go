package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-forecast/config"
	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
)

// HTTPClient is the subset of *http.Client the repositories use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRepository obtains a forecast window for a place.
type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, place string, days int) (models.ForecastWindow, error)
}

// InitForecastRepository wires the OpenWeatherMap repository from configuration.
func InitForecastRepository(cfg *config.Config, cred config.Credential, l *logger.Logger) ForecastRepository {
	return NewOpenWeatherMapRepository(
		cfg.Weather.BaseURL,
		cred,
		cfg.WeatherTimeout(),
		l,
		nil,
	)
}

func newDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
