// Package present turns parsed weather records into display-ready strings.
package present

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"weather-client/models"
)

const (
	// SampleStride is the number of 3-hour entries per day
	SampleStride = 8
	// MaxForecastDays caps the number of forecast cards
	MaxForecastDays = 5
)

// CurrentView holds the formatted fields of the current-conditions panel
type CurrentView struct {
	Temperature   string
	Location      string
	Description   string
	FeelsLike     string
	WindSpeed     string
	WindDirection string
	Humidity      string
	Pressure      string
	Icon          string
}

// ForecastCard holds the formatted fields of one forecast day
type ForecastCard struct {
	Day         string // short weekday, e.g. "Mon"
	Date        string // e.g. "Jan 2"
	Icon        string
	Temperature string
	WindSpeed   string
	Humidity    string
}

var wordPattern = regexp.MustCompile(`\w\S*`)

// Round rounds half-up to the nearest integer, so -2.5 becomes -2
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Temperature formats a Celsius value as a whole degree, e.g. "18°C"
func Temperature(c float64) string {
	return fmt.Sprintf("%d°C", Round(c))
}

// CapitalizeWords upper-cases the first letter of every word and lower-cases the rest
func CapitalizeWords(s string) string {
	return wordPattern.ReplaceAllStringFunc(s, func(word string) string {
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	})
}

// number prints a float in its shortest form: 4 -> "4", 3.6 -> "3.6"
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LocationLabel renders "Name, CC"
func LocationLabel(name, country string) string {
	if country == "" {
		return name
	}
	return name + ", " + country
}

// Current builds the current-conditions panel
func Current(w models.CurrentWeather) CurrentView {
	return CurrentView{
		Temperature:   Temperature(w.TemperatureC),
		Location:      LocationLabel(w.LocationName, w.CountryCode),
		Description:   CapitalizeWords(w.Description),
		FeelsLike:     "Feels like: " + Temperature(w.FeelsLikeC),
		WindSpeed:     "Speed: " + number(w.WindSpeedMs) + " m/s",
		WindDirection: "Direction: " + number(w.WindDirectionDeg) + "°",
		Humidity:      "Humidity: " + number(w.HumidityPct) + "%",
		Pressure:      "Pressure: " + number(w.PressureHpa) + " hPa",
		Icon:          Icon(w.ConditionKind),
	}
}

// DailySamples keeps every SampleStride-th entry starting at index 0, at most
// MaxForecastDays of them. It strides by list position and does not look at dates.
func DailySamples(entries []models.ForecastEntry) []models.ForecastEntry {
	daily := make([]models.ForecastEntry, 0, MaxForecastDays)
	for i := 0; i < len(entries) && len(daily) < MaxForecastDays; i += SampleStride {
		daily = append(daily, entries[i])
	}
	return daily
}

// Forecast samples the series and builds one card per day. Dates are rendered in
// loc; nil means time.Local.
func Forecast(entries []models.ForecastEntry, loc *time.Location) []ForecastCard {
	if loc == nil {
		loc = time.Local
	}

	daily := DailySamples(entries)
	cards := make([]ForecastCard, 0, len(daily))
	for _, e := range daily {
		t := e.Timestamp.In(loc)
		cards = append(cards, ForecastCard{
			Day:         t.Format("Mon"),
			Date:        t.Format("Jan 2"),
			Icon:        Icon(e.ConditionKind),
			Temperature: Temperature(e.TemperatureC),
			WindSpeed:   number(e.WindSpeedMs) + " m/s",
			Humidity:    number(e.HumidityPct) + "%",
		})
	}
	return cards
}
