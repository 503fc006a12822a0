package openweathermap

import (
	"context"
	"fmt"
	"time"

	owm "github.com/briandowns/openweathermap"

	"weather-client/datasource"
	"weather-client/models"
)

// forecastSamples is the number of 3-hour entries the free 5-day endpoint returns
const forecastSamples = 40

// FetchForecast gets the 5-day/3-hour forecast through the SDK
func (p *SDKProvider) FetchForecast(ctx context.Context, loc datasource.Location) (models.ForecastData, error) {
	if err := ctx.Err(); err != nil {
		return models.ForecastData{}, &datasource.FetchError{Endpoint: "forecast", Err: err}
	}

	client, status := p.recordingClient()
	fc, err := owm.NewForecast("5", "C", "en", p.apiKey, owm.WithHttpClient(client))
	if err != nil {
		return models.ForecastData{}, fmt.Errorf("failed to create client: %w", err)
	}

	if loc.Coords != nil {
		err = fc.DailyByCoordinates(&owm.Coordinates{
			Latitude:  loc.Coords.Latitude,
			Longitude: loc.Coords.Longitude,
		}, forecastSamples)
	} else {
		err = fc.DailyByName(loc.City, forecastSamples)
	}
	if err != nil {
		return models.ForecastData{}, status.fetchError("forecast", err)
	}

	data, ok := fc.ForecastWeatherJson.(*owm.Forecast5WeatherData)
	if !ok {
		return models.ForecastData{}, &datasource.FetchError{
			Endpoint: "forecast",
			Err:      fmt.Errorf("unexpected forecast payload %T", fc.ForecastWeatherJson),
		}
	}

	forecastData := models.ForecastData{
		Provider: p.Name(),
		Location: loc.String(),
		Entries:  make([]models.ForecastEntry, 0, len(data.List)),
		Updated:  time.Now(),
	}

	for _, item := range data.List {
		entry := models.ForecastEntry{
			Timestamp:    time.Unix(int64(item.Dt), 0).UTC(),
			TemperatureC: item.Main.Temp,
			WindSpeedMs:  item.Wind.Speed,
			HumidityPct:  float64(item.Main.Humidity),
		}
		if len(item.Weather) > 0 {
			entry.ConditionKind = item.Weather[0].Main
			entry.Description = item.Weather[0].Description
		}
		forecastData.Entries = append(forecastData.Entries, entry)
	}

	return forecastData, nil
}
