package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/presentation"
	"weather-forecast/pkg/httpserver"
)

// ForecastResponse represents the shaped forecast for one mode
type ForecastResponse struct {
	Place       string                          `json:"place" example:"Tokyo"`
	Days        int                             `json:"days" example:"3"`
	Mode        string                          `json:"mode" example:"Temperature"`
	Temperature *presentation.TemperatureSeries `json:"temperature,omitempty"`
	Sky         *presentation.SkyGrid           `json:"sky,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City not found. Please try again."`
	Kind  string `json:"kind,omitempty" example:"MalformedResponse"`
}

// GetForecast godoc
// @Summary Get forecast for a place
// @Description Fetches the 3-hourly forecast for a place and shapes it for a temperature chart or a sky icon grid
// @Tags Forecast
// @Produce json
// @Param place query string true "Place name, optionally City,CountryCode" example(London,UK)
// @Param days query integer false "Number of forecast days (1-5, default: 1)" minimum(1) maximum(5) example(3)
// @Param mode query string false "Display mode" Enums(Temperature, Sky) default(Temperature)
// @Success 200 {object} ForecastResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 422 {object} ErrorResponse "Weather category without an icon"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Failure 502 {object} ErrorResponse "Provider failure or unexpected provider response"
// @Router /api/v1/forecast [get]
func (r *routes) handleForecastCall(c *fiber.Ctx) error {
	req := r.forecastParams(c)

	if !req.HasPlace() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: place",
		})
	}

	mode, ok := modeParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "mode must be Temperature or Sky",
		})
	}

	view := r.service.Render(c.UserContext(), req, mode)

	if view.Err != nil {
		r.l.Warning("forecast request failed", map[string]any{
			"request_id": httpserver.RequestID(c),
			"kind":       view.Err.Kind.String(),
		})

		return c.Status(statusFor(view.Err.Kind)).JSON(ErrorResponse{
			Error: view.Message(),
			Kind:  view.Err.Kind.String(),
		})
	}

	return c.JSON(ForecastResponse{
		Place:       view.Request.Place,
		Days:        view.Request.Days,
		Mode:        string(view.Mode),
		Temperature: view.Temperature,
		Sky:         view.Sky,
	})
}

func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindFetchFailure, models.KindMalformedResponse:
		return fiber.StatusBadGateway
	case models.KindUnmappedCategory:
		return fiber.StatusUnprocessableEntity
	case models.KindInternal:
		return fiber.StatusInternalServerError
	}

	return fiber.StatusInternalServerError
}
