package datasource

import (
	"fmt"
	"strconv"

	"weather-client/models"
)

// Location identifies what to look up: a city name or a coordinate pair
type Location struct {
	City   string
	Coords *models.Coordinates
}

// ByCity returns a Location that queries by city name
func ByCity(name string) Location {
	return Location{City: name}
}

// ByCoordinates returns a Location that queries by latitude and longitude
func ByCoordinates(lat, lon float64) Location {
	return Location{Coords: &models.Coordinates{Latitude: lat, Longitude: lon}}
}

// String renders the location for log lines
func (l Location) String() string {
	if l.Coords != nil {
		return fmt.Sprintf("(%s, %s)",
			strconv.FormatFloat(l.Coords.Latitude, 'f', -1, 64),
			strconv.FormatFloat(l.Coords.Longitude, 'f', -1, 64))
	}
	return l.City
}
