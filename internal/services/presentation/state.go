package presentation

import (
	"fmt"

	"weather-forecast/internal/models"
)

// State is where a page interaction stands. There is no transition back to
// AwaitingPlace: every changed input renders DisplayingResult from scratch.
type State string

const (
	StateAwaitingPlace    State = "AwaitingPlace"
	StateDisplayingResult State = "DisplayingResult"
)

// View is the typed result of one interaction. When State is
// DisplayingResult exactly one of Temperature, Sky or Err is set.
type View struct {
	State       State                  `json:"state"`
	Request     models.ForecastRequest `json:"request"`
	Mode        Mode                   `json:"mode"`
	Temperature *TemperatureSeries     `json:"temperature,omitempty"`
	Sky         *SkyGrid               `json:"sky,omitempty"`
	Err         *models.ForecastError  `json:"-"`
}

func Awaiting(req models.ForecastRequest, mode Mode) View {
	return View{State: StateAwaitingPlace, Request: req, Mode: mode}
}

func Failed(req models.ForecastRequest, mode Mode, err *models.ForecastError) View {
	return View{State: StateDisplayingResult, Request: req, Mode: mode, Err: err}
}

// Build derives the mode's data from a fetched window.
func Build(req models.ForecastRequest, mode Mode, window models.ForecastWindow, icons IconSet) View {
	v := View{State: StateDisplayingResult, Request: req, Mode: mode}

	switch mode {
	case ModeTemperature:
		series := Temperature(window)
		v.Temperature = &series
	case ModeSky:
		grid, err := Sky(window, icons)
		if err != nil {
			v.Err = models.AsForecastError(err)
			return v
		}
		v.Sky = &grid
	default:
		v.Err = models.NewInternal(fmt.Errorf("unknown display mode %q", mode))
	}

	return v
}

// Subheader mirrors the page caption, e.g. "Sky for the next 3 days in Tokyo".
func (v View) Subheader() string {
	return fmt.Sprintf("%s for the next %d days in %s", v.Mode, v.Request.Days, v.Request.Place)
}

// Message is the single inline error line, empty when nothing failed.
func (v View) Message() string {
	if v.Err == nil {
		return ""
	}

	return v.Err.UserMessage()
}
