// Package config loads the weather client configuration from a JSON file and the
// environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names
const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderSDK            = "owm-sdk"
)

// Storage drivers
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config represents the application configuration
type Config struct {
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseURL"`
	Provider string `json:"provider"`
	// TimeoutSeconds bounds each HTTP request; 0 means no timeout
	TimeoutSeconds int `json:"timeoutSeconds"`

	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
		Path   string `json:"path"`
	} `json:"storage"`

	// Location stands in for browser geolocation on the terminal
	Location struct {
		Enabled   bool    `json:"enabled"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

// LoadConfig loads configuration from a JSON file. Fields absent from the file keep
// their defaults.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{
		BaseURL:  "https://api.openweathermap.org/data/2.5",
		Provider: ProviderOpenWeatherMap,
	}
	config.Storage.Driver = DriverFile
	config.Storage.Path = "recent_searches.json"
	return config
}

// ApplyEnv overlays environment values onto the configuration. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("OPENWEATHERMAP_API_KEY"); ok {
		c.APIKey = v
	}
	if v, ok := lookup("WEATHER_BASE_URL"); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup("WEATHER_PROVIDER"); ok && v != "" {
		c.Provider = v
	}
	if v, ok := lookup("WEATHER_STORAGE_DRIVER"); ok && v != "" {
		c.Storage.Driver = v
	}
	if v, ok := lookup("WEATHER_STORAGE_DSN"); ok && v != "" {
		c.Storage.DSN = v
	}
	if v, ok := lookup("WEATHER_TIMEOUT_SECONDS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEATHER_TIMEOUT_SECONDS: %w", err)
		}
		c.TimeoutSeconds = n
	}

	lat, latOK := lookup("WEATHER_LAT")
	lon, lonOK := lookup("WEATHER_LON")
	if latOK && lonOK {
		la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
		if err != nil {
			return fmt.Errorf("WEATHER_LAT: %w", err)
		}
		lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
		if err != nil {
			return fmt.Errorf("WEATHER_LON: %w", err)
		}
		c.Location.Enabled = true
		c.Location.Latitude = la
		c.Location.Longitude = lo
	}

	return nil
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("no API key provided"))
	}
	switch c.Provider {
	case ProviderOpenWeatherMap, ProviderSDK:
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if c.TimeoutSeconds < 0 {
		errs = append(errs, errors.New("timeoutSeconds must not be negative"))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("file storage needs a path"))
		}
	case DriverSQLite, DriverMySQL:
		if c.Storage.DSN == "" {
			errs = append(errs, fmt.Errorf("%s storage needs a dsn", c.Storage.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	if c.Location.Enabled {
		if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
			errs = append(errs, fmt.Errorf("latitude %v out of range", c.Location.Latitude))
		}
		if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
			errs = append(errs, fmt.Errorf("longitude %v out of range", c.Location.Longitude))
		}
	}

	return errors.Join(errs...)
}
