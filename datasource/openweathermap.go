package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-client/models"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 REST root
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Units is the unit system requested from the API; the models are metric
const Units = "metric"

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey  string
	baseURL string
	fetcher Fetcher
}

// Ensure OpenWeatherMapProvider implements Provider
var _ Provider = (*OpenWeatherMapProvider)(nil)

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider. An empty baseURL
// selects DefaultBaseURL.
func NewOpenWeatherMapProvider(apiKey, baseURL string, fetcher Fetcher) *OpenWeatherMapProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: fetcher,
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type owmCurrentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Weather []owmCondition `json:"weather"`
	Name    string         `json:"name"`
	Dt      int64          `json:"dt"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type owmForecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

// GetWeather fetches current weather for a location
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, loc Location) (models.CurrentWeather, error) {
	var response owmCurrentResponse
	if err := p.get(ctx, "weather", loc, &response); err != nil {
		return models.CurrentWeather{}, err
	}

	// Extract the primary condition if available
	var cond owmCondition
	if len(response.Weather) > 0 {
		cond = response.Weather[0]
	}

	return models.CurrentWeather{
		Provider:         p.Name(),
		LocationName:     response.Name,
		CountryCode:      response.Sys.Country,
		TemperatureC:     response.Main.Temp,
		FeelsLikeC:       response.Main.FeelsLike,
		Description:      cond.Description,
		ConditionKind:    cond.Main,
		WindSpeedMs:      response.Wind.Speed,
		WindDirectionDeg: response.Wind.Deg,
		HumidityPct:      response.Main.Humidity,
		PressureHpa:      response.Main.Pressure,
		Timestamp:        time.Unix(response.Dt, 0).UTC(),
	}, nil
}

// FetchForecast fetches the 5-day forecast in 3-hour steps. All entries are returned;
// picking one per day is a presentation concern.
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, loc Location) (models.ForecastData, error) {
	var response owmForecastResponse
	if err := p.get(ctx, "forecast", loc, &response); err != nil {
		return models.ForecastData{}, err
	}

	forecast := models.ForecastData{
		Provider: p.Name(),
		Location: response.City.Name,
		Entries:  make([]models.ForecastEntry, 0, len(response.List)),
		Updated:  time.Now(),
	}
	if response.City.Country != "" {
		forecast.Location = fmt.Sprintf("%s,%s", response.City.Name, response.City.Country)
	}

	for _, item := range response.List {
		var cond owmCondition
		if len(item.Weather) > 0 {
			cond = item.Weather[0]
		}

		forecast.Entries = append(forecast.Entries, models.ForecastEntry{
			Timestamp:     time.Unix(item.Dt, 0).UTC(),
			TemperatureC:  item.Main.Temp,
			WindSpeedMs:   item.Wind.Speed,
			HumidityPct:   item.Main.Humidity,
			ConditionKind: cond.Main,
			Description:   cond.Description,
		})
	}

	return forecast, nil
}

// endpointURL builds {base}/{endpoint}?q=...|lat=..&lon=..&appid=..&units=metric
func (p *OpenWeatherMapProvider) endpointURL(endpoint string, loc Location) string {
	params := url.Values{}
	if loc.Coords != nil {
		params.Add("lat", strconv.FormatFloat(loc.Coords.Latitude, 'f', -1, 64))
		params.Add("lon", strconv.FormatFloat(loc.Coords.Longitude, 'f', -1, 64))
	} else {
		params.Add("q", loc.City)
	}
	params.Add("appid", p.apiKey)
	params.Add("units", Units)

	return fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, params.Encode())
}

func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, loc Location, out any) error {
	resp, err := p.fetcher.Get(ctx, p.endpointURL(endpoint, loc))
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}

	// Check for error status code
	if !resp.OK() {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}
