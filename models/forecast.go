package models

import (
	"time"
)

// ForecastEntry represents a single forecast point at a specific time
type ForecastEntry struct {
	Timestamp     time.Time `json:"timestamp"`     // UTC
	TemperatureC  float64   `json:"temperatureC"`  // in Celsius
	WindSpeedMs   float64   `json:"windSpeedMs"`   // in m/s
	HumidityPct   float64   `json:"humidityPct"`   // percentage
	ConditionKind string    `json:"conditionKind"` // coarse label used for the icon
	Description   string    `json:"description"`   // short text description
}

// ForecastData is the full 3-hour series returned by a provider for one location
type ForecastData struct {
	Provider string          `json:"provider"` // weather data provider name
	Location string          `json:"location"` // "Name,CC" as reported by the provider
	Entries  []ForecastEntry `json:"entries"`  // every 3-hour entry, oldest first
	Updated  time.Time       `json:"updated"`  // when this forecast was fetched
}
