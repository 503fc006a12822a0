package openweathermap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	owm "github.com/briandowns/openweathermap"

	"weather-client/datasource"
	"weather-client/models"
)

// SDKProvider serves the same lookups as datasource.OpenWeatherMapProvider through
// the briandowns/openweathermap client library
type SDKProvider struct {
	apiKey string
	client *http.Client
}

// Ensure SDKProvider implements datasource.Provider
var _ datasource.Provider = (*SDKProvider)(nil)

// NewSDKProvider creates a new SDK-backed provider. A nil client selects
// http.DefaultClient.
func NewSDKProvider(apiKey string, client *http.Client) *SDKProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &SDKProvider{
		apiKey: apiKey,
		client: client,
	}
}

// Name returns the name of this data source
func (p *SDKProvider) Name() string {
	return "OpenWeatherMap SDK"
}

// GetWeather fetches current conditions. The SDK has no context support, so ctx is
// only checked before the call.
func (p *SDKProvider) GetWeather(ctx context.Context, loc datasource.Location) (models.CurrentWeather, error) {
	if err := ctx.Err(); err != nil {
		return models.CurrentWeather{}, &datasource.FetchError{Endpoint: "weather", Err: err}
	}

	// "C" maps to units=metric inside the SDK
	client, status := p.recordingClient()
	w, err := owm.NewCurrent("C", "en", p.apiKey, owm.WithHttpClient(client))
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to create client: %w", err)
	}

	if loc.Coords != nil {
		err = w.CurrentByCoordinates(&owm.Coordinates{
			Latitude:  loc.Coords.Latitude,
			Longitude: loc.Coords.Longitude,
		})
	} else {
		err = w.CurrentByName(loc.City)
	}
	if err != nil {
		return models.CurrentWeather{}, status.fetchError("weather", err)
	}

	data := models.CurrentWeather{
		Provider:         p.Name(),
		LocationName:     w.Name,
		CountryCode:      w.Sys.Country,
		TemperatureC:     w.Main.Temp,
		FeelsLikeC:       w.Main.FeelsLike,
		WindSpeedMs:      w.Wind.Speed,
		WindDirectionDeg: float64(w.Wind.Deg),
		HumidityPct:      float64(w.Main.Humidity),
		PressureHpa:      float64(w.Main.Pressure),
		Timestamp:        time.Unix(int64(w.Dt), 0).UTC(),
	}

	// Add the weather description and keyword if available
	if len(w.Weather) > 0 {
		data.Description = w.Weather[0].Description
		data.ConditionKind = w.Weather[0].Main
	}

	return data, nil
}

// statusRecorder fails non-2xx responses before the SDK decodes them. The SDK only
// recognises 401 on current weather and nothing on the forecast endpoint.
type statusRecorder struct {
	base   http.RoundTripper
	status int
}

func (s *statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := s.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	s.status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("API returned non-success status: %d", resp.StatusCode)
	}
	return resp, nil
}

// fetchError maps an SDK failure to a FetchError, keeping the status when the
// request got that far
func (s *statusRecorder) fetchError(endpoint string, err error) error {
	if s.status != 0 && (s.status < 200 || s.status >= 300) {
		return &datasource.FetchError{Endpoint: endpoint, StatusCode: s.status}
	}
	return &datasource.FetchError{Endpoint: endpoint, Err: err}
}

// recordingClient returns a per-call copy of the configured client whose transport
// records the response status
func (p *SDKProvider) recordingClient() (*http.Client, *statusRecorder) {
	base := p.client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	rec := &statusRecorder{base: base}
	client := *p.client
	client.Transport = rec
	return &client, rec
}
