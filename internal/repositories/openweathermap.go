package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-forecast/config"
	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
)

const (
	DefaultTimeout = 10 * time.Second

	// units=metric makes the provider answer in Celsius.
	metricUnits = "metric"
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	credential config.Credential
	timeout    time.Duration
	httpClient HTTPClient
	l          *logger.Logger
}

// NewOpenWeatherMapRepository never rejects an empty credential: the request
// is still sent and the provider answers with an authentication error.
func NewOpenWeatherMapRepository(
	baseURL string,
	cred config.Credential,
	timeout time.Duration,
	l *logger.Logger,
	httpClient HTTPClient,
) *OpenWeatherMapRepository {
	if baseURL == "" {
		baseURL = config.OpenWeatherMapForecastURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = newDefaultHTTPClient(timeout)
	}

	return &OpenWeatherMapRepository{
		BaseURL:    baseURL,
		credential: cred,
		timeout:    timeout,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type openWeatherMapResponse struct {
	// nil when the key is absent or null, which is how error payloads look.
	List *[]openWeatherMapEntry `json:"list"`
}

type openWeatherMapEntry struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type openWeatherMapError struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// FetchForecast issues exactly one GET and keeps the first 8*days samples.
// days is not validated here; see models.NewForecastWindow.
func (o *OpenWeatherMapRepository) FetchForecast(ctx context.Context, place string, days int) (models.ForecastWindow, error) {
	request := models.ForecastRequest{Place: place, Days: days}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	reqURL, err := o.requestURL(place)
	if err != nil {
		return nil, models.NewFetchFailure(err)
	}

	o.l.Info("making openweathermap API request", map[string]any{
		"params":     request.RequestParams(),
		"credential": o.credential.String(),
		"timeout":    o.timeout.String(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewFetchFailure(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, models.NewFetchFailure(fmt.Errorf("failed to do request: %w", err))
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewFetchFailure(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, models.NewFetchFailure(statusError(resp, body))
	}

	var response openWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, models.NewMalformedResponse(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	if response.List == nil {
		return nil, models.NewMalformedResponse(errors.New("response has no forecast list"))
	}

	window := models.NewForecastWindow(toForecastPoints(*response.List), days)

	o.l.Info("parsed API response", map[string]any{
		"items":  len(*response.List),
		"window": len(window),
	})

	return window, nil
}

func (o *OpenWeatherMapRepository) requestURL(place string) (string, error) {
	u, err := url.Parse(o.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", o.BaseURL, err)
	}

	q := u.Query()
	q.Set("q", place)
	q.Set("appid", o.credential.APIKey)
	q.Set("units", metricUnits)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func toForecastPoints(entries []openWeatherMapEntry) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, len(entries))

	for _, e := range entries {
		var category string
		if len(e.Weather) > 0 {
			category = e.Weather[0].Main
		}

		points = append(points, models.ForecastPoint{
			Timestamp:          e.Dt,
			TimeText:           e.DtTxt,
			TemperatureCelsius: e.Main.Temp,
			WeatherCategory:    category,
		})
	}

	return points
}

// statusError keeps the provider's own code and message when it sent one.
func statusError(resp *http.Response, body []byte) error {
	var payload openWeatherMapError
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("HTTP error (status %d): provider code %s: %s",
			resp.StatusCode, strings.Trim(string(payload.Cod), `"`), payload.Message)
	}

	return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
}
