package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/presentation"
)

// forecastParams reads place and days. An invalid days value falls back to
// the default and is logged, it never blocks the request.
func (r *routes) forecastParams(c *fiber.Ctx) models.ForecastRequest {
	req := models.ForecastRequest{
		Place: c.Query("place"),
		Days:  models.DefaultDays,
	}

	if raw := c.Query("days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days >= models.MinDays && days <= models.MaxDays {
			req.Days = days
		} else {
			r.l.Warning("invalid days parameter, using default", map[string]any{
				"provided": raw,
				"default":  req.Days,
			})
		}
	}

	return req
}

// modeParam returns ok=false for a mode outside the closed set. A missing
// mode means Temperature.
func modeParam(c *fiber.Ctx) (presentation.Mode, bool) {
	raw := c.Query("mode")
	if raw == "" {
		return presentation.ModeTemperature, true
	}

	mode, err := presentation.ParseMode(raw)
	if err != nil {
		return presentation.ModeTemperature, false
	}

	return mode, true
}
