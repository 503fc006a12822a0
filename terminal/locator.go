package terminal

import (
	"context"

	"weather-client/client"
	"weather-client/models"
)

// FixedLocator reports a configured position in place of device geolocation
type FixedLocator struct {
	Coords  models.Coordinates
	Enabled bool
}

var _ client.Geolocator = FixedLocator{}

func (l FixedLocator) Supported() bool { return l.Enabled }

func (l FixedLocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	return l.Coords, nil
}
