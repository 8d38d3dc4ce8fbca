package models

import (
	"fmt"
	"strings"
)

const (
	// SamplesPerDay is the provider resolution: one sample every 3 hours.
	SamplesPerDay = 8
	MinDays       = 1
	MaxDays       = 5
	DefaultDays   = 1
)

type ForecastRequest struct {
	Place string `json:"place" example:"Tokyo"`
	Days  int    `json:"days" example:"3"`
}

// HasPlace reports whether a fetch should be attempted at all.
func (r ForecastRequest) HasPlace() bool {
	return strings.TrimSpace(r.Place) != ""
}

func (r ForecastRequest) RequestParams() string {
	return fmt.Sprintf("place: %s days: %d", r.Place, r.Days)
}

// ForecastWindow is the chronologically ordered, truncated series for one request.
type ForecastWindow []ForecastPoint

// NewForecastWindow keeps the first SamplesPerDay*days points. It never pads
// and never fails: asking for more than is available yields what there is.
func NewForecastWindow(points []ForecastPoint, days int) ForecastWindow {
	n := min(max(SamplesPerDay*days, 0), len(points))

	return ForecastWindow(points[:n])
}
