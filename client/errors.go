package client

import (
	"errors"
)

// User-facing messages
const (
	MsgEmptyCity           = "Please enter a city name"
	MsgFetchFailed         = "Failed to fetch weather data. Please check the city name and try again."
	MsgLocationFetchFailed = "Failed to fetch weather data for your location"
	MsgGeoUnsupported      = "Geolocation is not supported by your browser"
	MsgGeoDenied           = "Unable to get your location. Please allow location access or search manually."
)

// ErrGeolocationUnsupported is wrapped by GeolocationError when no position source exists
var ErrGeolocationUnsupported = errors.New("geolocation unsupported")

// ValidationError rejects input before any network call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GeolocationError wraps the platform's reason for not producing a position
type GeolocationError struct {
	Err error
}

func (e *GeolocationError) Error() string { return "geolocation: " + e.Err.Error() }

func (e *GeolocationError) Unwrap() error { return e.Err }
