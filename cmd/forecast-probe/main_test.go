package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast/internal/models"
)

type stubRepository struct {
	window models.ForecastWindow
	err    error
	days   int
}

func (s *stubRepository) Name() string { return "stub" }

func (s *stubRepository) FetchForecast(_ context.Context, _ string, days int) (models.ForecastWindow, error) {
	s.days = days
	return s.window, s.err
}

func TestProbe_PrintsSummary(t *testing.T) {
	repo := &stubRepository{window: models.ForecastWindow{
		{Timestamp: 1753444800, TimeText: "2025-07-25 12:00:00", TemperatureCelsius: 29.5, WeatherCategory: "Clear"},
		{Timestamp: 1753455600, TimeText: "2025-07-25 15:00:00", TemperatureCelsius: 28, WeatherCategory: "Clouds"},
	}}

	var out bytes.Buffer
	err := probe(context.Background(), repo, "Tokyo", 3, &out)

	require.NoError(t, err)
	assert.Equal(t, 3, repo.days)
	assert.Contains(t, out.String(), "Number of data points retrieved: 2")
	assert.Contains(t, out.String(), "2025-07-25 12:00:00  29.50 C  Clear")
}

func TestProbe_FetchError(t *testing.T) {
	repo := &stubRepository{err: models.NewFetchFailure(assert.AnError)}

	var out bytes.Buffer
	err := probe(context.Background(), repo, "Atlantis", 1, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, &models.ForecastError{Kind: models.KindFetchFailure})
	assert.Empty(t, out.String())
}

func TestProbe_EmptyWindow(t *testing.T) {
	var out bytes.Buffer
	err := probe(context.Background(), &stubRepository{}, "Tokyo", 1, &out)

	assert.ErrorIs(t, err, errEmptyWindow)
	assert.Contains(t, out.String(), "Number of data points retrieved: 0")
}
