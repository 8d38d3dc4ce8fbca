package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/presentation"
	"weather-forecast/pkg/chart"
)

const (
	pageTitle = "Weather Forecast for the Next Days"
	// iconWidth is the rendered icon width in pixels.
	iconWidth = 115
)

type skyItem struct {
	Image   string
	Caption string
}

// handlePage renders the interactive page. It always answers 200 with the
// inputs echoed back so the user can correct them and resubmit.
func (r *routes) handlePage(c *fiber.Ctx) error {
	req := r.forecastParams(c)

	mode, ok := modeParam(c)
	if !ok {
		r.l.Warning("invalid mode parameter, using default", map[string]any{
			"provided": c.Query("mode"),
			"default":  string(mode),
		})
	}

	view := r.service.Render(c.UserContext(), req, mode)

	data := fiber.Map{
		"Title":      pageTitle,
		"Place":      req.Place,
		"Days":       req.Days,
		"MinDays":    models.MinDays,
		"MaxDays":    models.MaxDays,
		"Mode":       string(mode),
		"Modes":      modeNames(),
		"Subheader":  view.Subheader(),
		"State":      string(view.State),
		"Error":      view.Message(),
		"ImageWidth": iconWidth,
	}

	switch {
	case view.Temperature != nil:
		html, err := r.temperatureChart(view)
		if err != nil {
			r.l.Error(err, map[string]any{"place": req.Place, "days": req.Days})
			data["Error"] = models.GenericErrorMessage
			break
		}
		data["Chart"] = html
	case view.Sky != nil:
		items := make([]skyItem, len(view.Sky.Images))
		for i := range items {
			items[i] = skyItem{Image: view.Sky.Images[i], Caption: view.Sky.Captions[i]}
		}
		data["Sky"] = items
	}

	return c.Render("index", data)
}

// temperatureChart returns a standalone chart page, embedded via iframe srcdoc.
func (r *routes) temperatureChart(view presentation.View) (string, error) {
	var buf bytes.Buffer

	err := chart.RenderLine(&buf, chart.LineOptions{
		Title:      view.Subheader(),
		XName:      "Date",
		YName:      "Temperatures (C)",
		SeriesName: "Temperature",
		Width:      "900px",
		Height:     "400px",
	}, view.Temperature.Dates, view.Temperature.Temperatures)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func modeNames() []string {
	names := make([]string, len(presentation.Modes))
	for i, m := range presentation.Modes {
		names[i] = string(m)
	}

	return names
}
