// Package client is the weather search application: command handlers that validate
// input, fetch current conditions and forecast, and render them into a Display.
package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-client/datasource"
	"weather-client/history"
	"weather-client/models"
	"weather-client/present"
)

// Options are the collaborators injected into a Client
type Options struct {
	Display  Display
	Provider datasource.Provider
	History  *history.Store
	// Geolocator may be nil; location lookups then report unsupported
	Geolocator Geolocator
	Logger     *log.Logger
	// TimeZone renders forecast dates; nil means time.Local
	TimeZone *time.Location
	// OnPhase, when set, observes every phase change of every flow
	OnPhase func(flowID string, phase Phase)
}

// Client wires user commands to retrieval, presentation and history. Each command
// runs one independent flow; overlapping flows are not coordinated, so the last one
// to finish renders.
type Client struct {
	display  Display
	provider datasource.Provider
	history  *history.Store
	geo      Geolocator
	logger   *log.Logger
	tz       *time.Location
	onPhase  func(string, Phase)

	mu    sync.Mutex
	phase Phase
}

// New creates a Client from its collaborators
func New(opts Options) (*Client, error) {
	if opts.Display == nil {
		return nil, errors.New("client: display is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("client: provider is required")
	}
	if opts.History == nil {
		return nil, errors.New("client: history store is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TimeZone == nil {
		opts.TimeZone = time.Local
	}

	return &Client{
		display:  opts.Display,
		provider: opts.Provider,
		history:  opts.History,
		geo:      opts.Geolocator,
		logger:   opts.Logger,
		tz:       opts.TimeZone,
		onPhase:  opts.OnPhase,
	}, nil
}

// Phase returns the phase most recently entered by any flow
func (c *Client) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Client) setPhase(flow string, p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()

	if c.onPhase != nil {
		c.onPhase(flow, p)
	}
}

// Start loads the persisted history and renders the suggestion list
func (c *Client) Start(ctx context.Context) {
	entries := c.history.Load(ctx)
	c.display.RenderRecent(entries)
	c.logger.Printf("Recent searches loaded: %d items", len(entries))
}

// Search runs the city flow for the raw text of the city field
func (c *Client) Search(ctx context.Context, input string) error {
	flow := uuid.NewString()
	c.setPhase(flow, PhaseValidating)

	city := strings.TrimSpace(input)
	if city == "" {
		c.logger.Printf("[%s] Empty city name provided", flow)
		c.display.ShowError(MsgEmptyCity)
		c.setPhase(flow, PhaseIdle)
		return &ValidationError{Message: MsgEmptyCity}
	}

	c.logger.Printf("[%s] Searching weather for: %s", flow, city)
	c.beginLoading(flow)
	defer c.endLoading(flow)

	current, forecast, err := c.retrieve(ctx, datasource.ByCity(city))
	if err != nil {
		c.logger.Printf("[%s] Error fetching weather data: %v", flow, err)
		c.setPhase(flow, PhaseFailure)
		c.display.ShowError(MsgFetchFailed)
		return err
	}

	c.render(current, forecast)
	c.remember(ctx, flow, city)
	c.setPhase(flow, PhaseSuccess)
	return nil
}

// UseCurrentLocation runs the coordinate flow using the geolocator
func (c *Client) UseCurrentLocation(ctx context.Context) error {
	flow := uuid.NewString()
	c.setPhase(flow, PhaseValidating)

	if c.geo == nil || !c.geo.Supported() {
		c.logger.Printf("[%s] Geolocation not supported", flow)
		c.display.ShowError(MsgGeoUnsupported)
		c.setPhase(flow, PhaseIdle)
		return &GeolocationError{Err: ErrGeolocationUnsupported}
	}

	c.beginLoading(flow)
	defer c.endLoading(flow)

	coords, err := c.geo.CurrentPosition(ctx)
	if err != nil {
		c.logger.Printf("[%s] Geolocation error: %v", flow, err)
		c.setPhase(flow, PhaseFailure)
		c.display.ShowError(MsgGeoDenied)
		return &GeolocationError{Err: err}
	}

	loc := datasource.ByCoordinates(coords.Latitude, coords.Longitude)
	c.logger.Printf("[%s] Searching weather for coordinates %s", flow, loc)

	current, forecast, err := c.retrieve(ctx, loc)
	if err != nil {
		c.logger.Printf("[%s] Error fetching location-based weather: %v", flow, err)
		c.setPhase(flow, PhaseFailure)
		c.display.ShowError(MsgLocationFetchFailed)
		return err
	}

	c.render(current, forecast)
	c.setPhase(flow, PhaseSuccess)
	return nil
}

// FocusInput shows the suggestion list when there is history to show
func (c *Client) FocusInput(ctx context.Context) {
	if len(c.history.Load(ctx)) > 0 {
		c.display.ShowRecent()
	}
}

// ClickOutside hides the suggestion list
func (c *Client) ClickOutside() {
	c.display.HideRecent()
}

// SelectRecent fills the city field with a suggestion and searches for it
func (c *Client) SelectRecent(ctx context.Context, city string) error {
	c.display.SetCityInput(city)
	c.display.HideRecent()
	return c.Search(ctx, city)
}

func (c *Client) beginLoading(flow string) {
	c.setPhase(flow, PhaseLoading)
	c.display.ShowLoading(true)
	c.display.HideError()
}

// endLoading is the single reset shared by success and failure
func (c *Client) endLoading(flow string) {
	c.display.ShowLoading(false)
	c.setPhase(flow, PhaseIdle)
}

// retrieve awaits current conditions, then the forecast. Nothing is rendered unless
// both succeed.
func (c *Client) retrieve(ctx context.Context, loc datasource.Location) (models.CurrentWeather, models.ForecastData, error) {
	current, err := c.provider.GetWeather(ctx, loc)
	if err != nil {
		return models.CurrentWeather{}, models.ForecastData{}, fmt.Errorf("current weather for %s: %w", loc, err)
	}

	forecast, err := c.provider.FetchForecast(ctx, loc)
	if err != nil {
		return models.CurrentWeather{}, models.ForecastData{}, fmt.Errorf("forecast for %s: %w", loc, err)
	}

	return current, forecast, nil
}

func (c *Client) render(current models.CurrentWeather, forecast models.ForecastData) {
	c.display.RenderCurrent(present.Current(current))
	c.display.RenderForecast(present.Forecast(forecast.Entries, c.tz))
}

// remember records a successful city search. Persistence failures are only logged,
// and the suggestion list then shows what is actually stored.
func (c *Client) remember(ctx context.Context, flow, city string) {
	entries, err := c.history.Save(ctx, city)
	if err != nil {
		c.logger.Printf("[%s] Error saving recent search: %v", flow, err)
		entries = c.history.Load(ctx)
	}
	c.display.RenderRecent(entries)
}
