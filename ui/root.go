// Package ui is the browser surface of the weather client, built with go-app.
package ui

import (
	"log"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"weather-client/client"
	"weather-client/datasource"
	"weather-client/history"
	"weather-client/present"
)

// Env keys baked into the go-app handler
const (
	EnvAPIKey  = "OWM_API_KEY"
	EnvBaseURL = "OWM_BASE_URL"
)

var _ app.Mounter = (*Root)(nil)
var _ client.Display = (*Root)(nil)

// Root is the weather dashboard page. It implements client.Display; every mutation is
// dispatched onto the UI goroutine.
type Root struct {
	app.Compo

	ctx     app.Context
	mounted bool
	client  *client.Client

	input         string
	loading       bool
	errorText     string
	errorVisible  bool
	current       *present.CurrentView
	forecast      []present.ForecastCard
	recent        []string
	recentVisible bool
}

func (r *Root) OnMount(ctx app.Context) {
	r.ctx = ctx
	r.mounted = true

	baseURL := app.Getenv(EnvBaseURL)
	if baseURL == "" {
		baseURL = datasource.DefaultBaseURL
	}
	logger := log.New(consoleWriter{}, "", 0)
	provider := datasource.NewOpenWeatherMapProvider(app.Getenv(EnvAPIKey), baseURL, newFetcher())

	c, err := client.New(client.Options{
		Display:    r,
		Provider:   provider,
		History:    history.New(LocalStorage{}, logger),
		Geolocator: BrowserGeolocator{},
		Logger:     logger,
	})
	if err != nil {
		app.Log("Failed to initialize weather app:", err)
		return
	}
	r.client = c

	app.Log("Initializing Weather App...")
	r.client.Start(ctx)
}

// update applies fn on the UI goroutine and re-renders. Before mount there is no UI
// goroutine yet, so fn runs in place.
func (r *Root) update(fn func()) {
	if !r.mounted {
		fn()
		return
	}
	r.ctx.Dispatch(func(app.Context) { fn() })
}

func (r *Root) ShowLoading(on bool) {
	r.update(func() { r.loading = on })
}

func (r *Root) ShowError(message string) {
	r.update(func() {
		r.errorText = message
		r.errorVisible = true
	})
}

func (r *Root) HideError() {
	r.update(func() { r.errorVisible = false })
}

func (r *Root) RenderCurrent(view present.CurrentView) {
	r.update(func() { r.current = &view })
}

func (r *Root) RenderForecast(cards []present.ForecastCard) {
	r.update(func() { r.forecast = cards })
}

func (r *Root) RenderRecent(cities []string) {
	r.update(func() { r.recent = cities })
}

func (r *Root) ShowRecent() {
	r.update(func() { r.recentVisible = true })
}

func (r *Root) HideRecent() {
	r.update(func() { r.recentVisible = false })
}

func (r *Root) SetCityInput(city string) {
	r.update(func() { r.input = city })
}

func (r *Root) onInput(ctx app.Context, e app.Event) {
	r.input = ctx.JSSrc().Get("value").String()
}

func (r *Root) onKeyPress(ctx app.Context, e app.Event) {
	if e.Get("key").String() == "Enter" {
		app.Log("Enter key pressed on city input")
		r.search(ctx)
	}
}

func (r *Root) onSearch(ctx app.Context, e app.Event) {
	app.Log("Search button clicked")
	r.search(ctx)
}

func (r *Root) search(ctx app.Context) {
	if r.client == nil {
		return
	}
	input := r.input
	ctx.Async(func() {
		_ = r.client.Search(ctx, input)
	})
}

func (r *Root) onLocation(ctx app.Context, e app.Event) {
	app.Log("Current location button clicked")
	if r.client == nil {
		return
	}
	ctx.Async(func() {
		_ = r.client.UseCurrentLocation(ctx)
	})
}

func (r *Root) onFocus(ctx app.Context, e app.Event) {
	if r.client == nil {
		return
	}
	ctx.Async(func() {
		r.client.FocusInput(ctx)
	})
}

// onSearchBoxClick keeps clicks on the input and the suggestions from reaching onPageClick
func (r *Root) onSearchBoxClick(ctx app.Context, e app.Event) {
	e.StopImmediatePropagation()
}

func (r *Root) onPageClick(ctx app.Context, e app.Event) {
	if r.client != nil {
		r.client.ClickOutside()
	}
}

func (r *Root) onRecentClick(city string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		app.Log("Recent search item clicked:", city)
		if r.client == nil {
			return
		}
		ctx.Async(func() {
			_ = r.client.SelectRecent(ctx, city)
		})
	}
}

func (r *Root) Render() app.UI {
	return app.Div().
		Class("min-h-screen bg-gradient-to-br from-blue-400 to-blue-700 text-white p-6").
		OnClick(r.onPageClick).
		Body(
			app.Div().Class("max-w-4xl mx-auto").Body(
				app.H1().Class("text-3xl font-bold text-center mb-6").Text("Weather Dashboard"),
				r.renderSearch(),
				r.renderLoading(),
				r.renderError(),
				r.renderCurrent(),
				r.renderForecast(),
			),
		)
}

func (r *Root) renderSearch() app.UI {
	return app.Div().Class("relative flex gap-2 mb-6").OnClick(r.onSearchBoxClick).Body(
		app.Div().Class("relative flex-1").Body(
			app.Input().
				ID("cityInput").
				Type("text").
				Class("w-full px-4 py-2 rounded-lg text-gray-800").
				Placeholder("Enter city name...").
				AutoComplete(false).
				Value(r.input).
				OnInput(r.onInput).
				OnKeyPress(r.onKeyPress).
				OnFocus(r.onFocus),
			r.renderRecent(),
		),
		app.Button().ID("searchBtn").
			Class("px-4 py-2 bg-white text-blue-600 rounded-lg font-semibold").
			Text("Search").
			OnClick(r.onSearch),
		app.Button().ID("currentLocationBtn").
			Class("px-4 py-2 bg-white text-blue-600 rounded-lg").
			Title("Use current location").
			Text("📍").
			OnClick(r.onLocation),
	)
}

func (r *Root) renderRecent() app.UI {
	items := make([]app.UI, 0, len(r.recent))
	for _, city := range r.recent {
		items = append(items, app.Div().
			Class("px-4 py-2 hover:bg-gray-100 cursor-pointer recent-search-item").
			DataSet("city", city).
			Text(city).
			OnClick(r.onRecentClick(city)))
	}

	return app.Div().
		ID("recentSearches").
		Class(visibility("absolute z-10 w-full mt-1 bg-white text-gray-800 rounded-lg shadow-lg", r.recentVisible && len(r.recent) > 0)).
		Body(items...)
}

func (r *Root) renderLoading() app.UI {
	return app.Div().
		ID("loadingIndicator").
		Class(visibility("text-center my-6", r.loading)).
		Text("Loading weather data...")
}

func (r *Root) renderError() app.UI {
	return app.Div().
		ID("errorMessage").
		Class(visibility("bg-red-500 bg-opacity-80 rounded-lg p-4 mb-6", r.errorVisible)).
		Body(app.Span().ID("errorText").Text(r.errorText))
}

func (r *Root) renderCurrent() app.UI {
	v := r.current
	if v == nil {
		return app.Div().ID("currentWeather").Class("hidden")
	}

	return app.Div().ID("currentWeather").Class("bg-white bg-opacity-20 rounded-lg p-6 mb-6 fade-in").Body(
		app.Div().Class("flex items-center justify-between").Body(
			app.Div().Body(
				app.H2().ID("currentLocation").Class("text-2xl font-semibold").Text(v.Location),
				app.P().ID("currentDescription").Class("text-gray-200").Text(v.Description),
				app.Div().ID("currentTemp").Class("text-5xl font-bold my-2").Text(v.Temperature),
				app.P().ID("feelsLike").Class("text-gray-200").Text(v.FeelsLike),
			),
			app.Div().ID("currentIcon").Class("text-7xl").Text(v.Icon),
		),
		app.Div().Class("grid grid-cols-2 gap-4 mt-4 text-sm").Body(
			app.Div().ID("windSpeed").Text(v.WindSpeed),
			app.Div().ID("windDirection").Text(v.WindDirection),
			app.Div().ID("humidity").Text(v.Humidity),
			app.Div().ID("pressure").Text(v.Pressure),
		),
	)
}

func (r *Root) renderForecast() app.UI {
	if len(r.forecast) == 0 {
		return app.Div().ID("forecastSection").Class("hidden")
	}

	cards := make([]app.UI, 0, len(r.forecast))
	for _, f := range r.forecast {
		cards = append(cards, app.Div().Class("bg-white bg-opacity-20 rounded-lg p-4 text-center").Body(
			app.Div().Class("font-semibold mb-2").Text(f.Day),
			app.Div().Class("text-sm text-gray-200 mb-3").Text(f.Date),
			app.Div().Class("text-3xl mb-3").Text(f.Icon),
			app.Div().Class("font-bold text-lg mb-2").Text(f.Temperature),
			app.Div().Class("text-sm text-gray-200 mb-1").Text("💨 "+f.WindSpeed),
			app.Div().Class("text-sm text-gray-200").Text("💧 "+f.Humidity),
		))
	}

	return app.Div().ID("forecastSection").Class("fade-in").Body(
		app.H3().Class("text-xl font-semibold mb-4").Text("5-Day Forecast"),
		app.Div().ID("forecastContainer").Class("grid grid-cols-2 md:grid-cols-5 gap-4").Body(cards...),
	)
}

func visibility(class string, visible bool) string {
	if visible {
		return class
	}
	return class + " hidden"
}

// consoleWriter sends log output to the browser console
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	app.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
