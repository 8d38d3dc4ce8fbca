package weather_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/presentation"
	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/logger"
)

// MockRepository implements ForecastRepository for testing
type MockRepository struct {
	points      []models.ForecastPoint
	err         error
	shouldPanic bool
	callCount   int
	lastPlace   string
	lastDays    int
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) FetchForecast(ctx context.Context, place string, days int) (models.ForecastWindow, error) {
	m.callCount++
	m.lastPlace = place
	m.lastDays = days

	if m.shouldPanic {
		panic("provider exploded")
	}
	if m.err != nil {
		return nil, m.err
	}

	return models.NewForecastWindow(m.points, days), nil
}

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", "test", "debug", io.Discard)
}

func points(n int, category string) []models.ForecastPoint {
	out := make([]models.ForecastPoint, n)
	for i := range out {
		out[i] = models.ForecastPoint{
			Timestamp:          1753455600 + int64(i)*10800,
			TimeText:           fmt.Sprintf("entry-%02d", i),
			TemperatureCelsius: float64(i) / 2,
			WeatherCategory:    category,
		}
	}

	return out
}

func TestForecastService_Render_TokyoTemperature(t *testing.T) {
	repo := &MockRepository{points: points(24, "Clear")}
	service := weather.NewForecastService(repo, nil, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "Tokyo", Days: 3}, presentation.ModeTemperature)

	require.Nil(t, view.Err)
	assert.Equal(t, presentation.StateDisplayingResult, view.State)
	require.NotNil(t, view.Temperature)
	assert.Len(t, view.Temperature.Dates, 24)
	assert.Len(t, view.Temperature.Temperatures, 24)
	assert.Equal(t, "entry-00", view.Temperature.Dates[0])
	assert.Equal(t, 1, repo.callCount)
	assert.Equal(t, "Tokyo", repo.lastPlace)
	assert.Equal(t, 3, repo.lastDays)
}

func TestForecastService_Render_Sky(t *testing.T) {
	repo := &MockRepository{points: points(8, "Rain")}
	service := weather.NewForecastService(repo, presentation.DefaultIcons, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "London,UK", Days: 1}, presentation.ModeSky)

	require.Nil(t, view.Err)
	require.NotNil(t, view.Sky)
	assert.Len(t, view.Sky.Images, 8)
	assert.Equal(t, "images/rain.svg", view.Sky.Images[0])
	assert.Equal(t, "entry-07", view.Sky.Captions[7])
}

func TestForecastService_Render_EmptyPlaceSkipsFetch(t *testing.T) {
	repo := &MockRepository{points: points(8, "Clear")}
	service := weather.NewForecastService(repo, nil, testLogger())

	for _, place := range []string{"", "   "} {
		view := service.Render(context.Background(), models.ForecastRequest{Place: place, Days: 4}, presentation.ModeSky)

		assert.Equal(t, presentation.StateAwaitingPlace, view.State)
		assert.Nil(t, view.Err)
		assert.Nil(t, view.Sky)
	}
	assert.Equal(t, 0, repo.callCount)
}

func TestForecastService_Render_MalformedResponse(t *testing.T) {
	repo := &MockRepository{err: models.NewMalformedResponse(errors.New("response has no forecast list"))}
	service := weather.NewForecastService(repo, nil, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "Atlantis", Days: 2}, presentation.ModeTemperature)

	assert.Equal(t, presentation.StateDisplayingResult, view.State)
	require.NotNil(t, view.Err)
	assert.Equal(t, models.KindMalformedResponse, view.Err.Kind)
	assert.Equal(t, models.GenericErrorMessage, view.Message())
	assert.Equal(t, "Atlantis", view.Request.Place)
	assert.Nil(t, view.Temperature)
}

func TestForecastService_Render_FetchFailure(t *testing.T) {
	repo := &MockRepository{err: models.NewFetchFailure(errors.New("HTTP error (status 401)"))}
	service := weather.NewForecastService(repo, nil, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "Tokyo", Days: 1}, presentation.ModeSky)

	require.NotNil(t, view.Err)
	assert.Equal(t, models.KindFetchFailure, view.Err.Kind)
	assert.Equal(t, models.GenericErrorMessage, view.Message())
}

func TestForecastService_Render_UnclassifiedErrorIsInternal(t *testing.T) {
	repo := &MockRepository{err: errors.New("something odd")}
	service := weather.NewForecastService(repo, nil, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "Tokyo", Days: 1}, presentation.ModeSky)

	require.NotNil(t, view.Err)
	assert.Equal(t, models.KindInternal, view.Err.Kind)
	assert.Equal(t, models.GenericErrorMessage, view.Message())
}

func TestForecastService_Render_UnmappedCategory(t *testing.T) {
	repo := &MockRepository{points: append(points(3, "Clear"), points(1, "Mist")...)}
	service := weather.NewForecastService(repo, nil, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "London", Days: 1}, presentation.ModeSky)

	require.NotNil(t, view.Err)
	assert.Equal(t, models.KindUnmappedCategory, view.Err.Kind)
	assert.Equal(t, "Mist", view.Err.Category)
	assert.Nil(t, view.Sky)
}

func TestForecastService_Render_UnmappedCategoryIgnoredForTemperature(t *testing.T) {
	repo := &MockRepository{points: points(4, "Mist")}
	service := weather.NewForecastService(repo, nil, testLogger())

	view := service.Render(context.Background(), models.ForecastRequest{Place: "London", Days: 1}, presentation.ModeTemperature)

	assert.Nil(t, view.Err)
	require.NotNil(t, view.Temperature)
	assert.Len(t, view.Temperature.Dates, 4)
}

func TestForecastService_Render_RecoversPanic(t *testing.T) {
	repo := &MockRepository{shouldPanic: true}
	service := weather.NewForecastService(repo, nil, testLogger())

	var view presentation.View
	require.NotPanics(t, func() {
		view = service.Render(context.Background(), models.ForecastRequest{Place: "Tokyo", Days: 1}, presentation.ModeTemperature)
	})

	assert.Equal(t, presentation.StateDisplayingResult, view.State)
	require.NotNil(t, view.Err)
	assert.Equal(t, models.KindInternal, view.Err.Kind)
	assert.Equal(t, "Tokyo", view.Request.Place)
}

func TestForecastService_Render_EachCallRefetches(t *testing.T) {
	repo := &MockRepository{points: points(40, "Snow")}
	service := weather.NewForecastService(repo, nil, testLogger())

	req := models.ForecastRequest{Place: "Oslo", Days: 2}
	service.Render(context.Background(), req, presentation.ModeTemperature)
	service.Render(context.Background(), req, presentation.ModeSky)

	assert.Equal(t, 2, repo.callCount)
}

func TestForecastService_FetchForecast(t *testing.T) {
	repo := &MockRepository{points: points(40, "Clear")}
	service := weather.NewForecastService(repo, nil, testLogger())

	window, err := service.FetchForecast(context.Background(), models.ForecastRequest{Place: "Tokyo", Days: 5})
	require.NoError(t, err)
	assert.Len(t, window, 40)

	repo.err = errors.New("boom")
	_, err = service.FetchForecast(context.Background(), models.ForecastRequest{Place: "Tokyo", Days: 5})
	assert.True(t, errors.Is(err, &models.ForecastError{Kind: models.KindInternal}))
}
