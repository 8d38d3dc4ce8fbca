package models

import "time"

// ForecastPoint is one 3-hour sample as returned by the provider.
type ForecastPoint struct {
	Timestamp          int64   `json:"timestamp" example:"1753455600"`
	TimeText           string  `json:"time_text" example:"2025-07-25 15:00:00"`
	TemperatureCelsius float64 `json:"temperature_celsius" example:"22.5"`
	WeatherCategory    string  `json:"weather_category" example:"Clouds"`
}

func (p ForecastPoint) Time() time.Time {
	return time.Unix(p.Timestamp, 0).UTC()
}
