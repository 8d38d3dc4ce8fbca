package presentation

import (
	"fmt"
	"strings"

	"weather-forecast/internal/models"
)

// Mode selects what is derived from a forecast window.
type Mode string

const (
	ModeTemperature Mode = "Temperature"
	ModeSky         Mode = "Sky"
)

// Modes lists the selector options in display order.
var Modes = []Mode{ModeTemperature, ModeSky}

// ParseMode accepts the two mode names case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}

	return "", fmt.Errorf("unknown display mode %q", s)
}

// TemperatureSeries holds two parallel sequences for a date/temperature line plot.
type TemperatureSeries struct {
	Dates        []string  `json:"dates"`
	Temperatures []float64 `json:"temperatures"`
}

// SkyGrid holds two parallel sequences: an icon per sample and its caption.
type SkyGrid struct {
	Images   []string `json:"images"`
	Captions []string `json:"captions"`
}

func Temperature(window models.ForecastWindow) TemperatureSeries {
	series := TemperatureSeries{
		Dates:        make([]string, len(window)),
		Temperatures: make([]float64, len(window)),
	}

	for i, p := range window {
		series.Dates[i] = p.TimeText
		series.Temperatures[i] = p.TemperatureCelsius
	}

	return series
}

// Sky fails on the first category the icon set does not cover; it never
// returns a partial grid.
func Sky(window models.ForecastWindow, icons IconSet) (SkyGrid, error) {
	grid := SkyGrid{
		Images:   make([]string, len(window)),
		Captions: make([]string, len(window)),
	}

	for i, p := range window {
		icon, err := icons.Icon(p.WeatherCategory)
		if err != nil {
			return SkyGrid{}, err
		}
		grid.Images[i] = icon
		grid.Captions[i] = p.TimeText
	}

	return grid, nil
}
