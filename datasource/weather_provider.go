package datasource

import (
	"context"

	"weather-client/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a location
	GetWeather(ctx context.Context, loc Location) (models.CurrentWeather, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the 5-day/3-hour forecast for a location
	FetchForecast(ctx context.Context, loc Location) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}

// Provider combines both lookups; the client needs one of these per search
type Provider interface {
	WeatherProvider
	ForecastSource
}
