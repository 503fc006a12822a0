package client

import (
	"context"

	"weather-client/models"
	"weather-client/present"
)

// Display is the surface the client writes into. Implementations must be safe to
// call from the goroutine running a command.
type Display interface {
	ShowLoading(on bool)
	ShowError(message string)
	HideError()
	RenderCurrent(view present.CurrentView)
	RenderForecast(cards []present.ForecastCard)
	RenderRecent(cities []string)
	ShowRecent()
	HideRecent()
	SetCityInput(city string)
}

// Geolocator yields the device position
type Geolocator interface {
	// Supported reports whether a position can be requested at all
	Supported() bool
	// CurrentPosition blocks until the platform answers or ctx is done
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}
