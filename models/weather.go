package models

import (
	"time"
)

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentWeather is the present-moment snapshot parsed from a single provider response
type CurrentWeather struct {
	Provider         string    `json:"provider"`
	LocationName     string    `json:"locationName"`
	CountryCode      string    `json:"countryCode"`
	TemperatureC     float64   `json:"temperatureC"`
	FeelsLikeC       float64   `json:"feelsLikeC"`
	Description      string    `json:"description"`
	ConditionKind    string    `json:"conditionKind"` // coarse label, e.g. "Clear", "Rain"
	WindSpeedMs      float64   `json:"windSpeedMs"`
	WindDirectionDeg float64   `json:"windDirectionDeg"`
	HumidityPct      float64   `json:"humidityPct"`
	PressureHpa      float64   `json:"pressureHpa"`
	Timestamp        time.Time `json:"timestamp"`
}
