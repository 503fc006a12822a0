package present

import (
	"testing"
	"time"

	"weather-client/models"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{17.4, 17},
		{17.5, 18},
		{17.6, 18},
		{0, 0},
		{-0.4, 0},
		{-2.5, -2},
		{-2.6, -3},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"broken clouds", "Broken Clouds"},
		{"light RAIN", "Light Rain"},
		{"thunderstorm with heavy drizzle", "Thunderstorm With Heavy Drizzle"},
		{"", ""},
		{"  mist  ", "  Mist  "},
	}
	for _, tt := range tests {
		if got := CapitalizeWords(tt.in); got != tt.want {
			t.Errorf("CapitalizeWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIcon(t *testing.T) {
	tests := map[string]string{
		"Clear":        "☀️",
		"Clouds":       "☁️",
		"Rain":         "🌧️",
		"Fog":          "🌫️",
		"Tornado":      "🌪️",
		"Squall":       "💨",
		"Volcano":      DefaultIcon,
		"":             DefaultIcon,
		"clear":        DefaultIcon,
		"Thunderstorm": "⛈️",
	}
	for kind, want := range tests {
		if got := Icon(kind); got != want {
			t.Errorf("Icon(%q) = %q, want %q", kind, got, want)
		}
	}
}

func TestCurrent(t *testing.T) {
	view := Current(models.CurrentWeather{
		LocationName:     "Tokyo",
		CountryCode:      "JP",
		TemperatureC:     17.6,
		FeelsLikeC:       16.4,
		Description:      "broken clouds",
		ConditionKind:    "Clouds",
		WindSpeedMs:      3.6,
		WindDirectionDeg: 230,
		HumidityPct:      55,
		PressureHpa:      1014,
	})

	want := CurrentView{
		Temperature:   "18°C",
		Location:      "Tokyo, JP",
		Description:   "Broken Clouds",
		FeelsLike:     "Feels like: 16°C",
		WindSpeed:     "Speed: 3.6 m/s",
		WindDirection: "Direction: 230°",
		Humidity:      "Humidity: 55%",
		Pressure:      "Pressure: 1014 hPa",
		Icon:          "☁️",
	}
	if view != want {
		t.Errorf("Current() =\n%+v\nwant\n%+v", view, want)
	}
}

func TestLocationLabelWithoutCountry(t *testing.T) {
	if got := LocationLabel("Somewhere", ""); got != "Somewhere" {
		t.Errorf("got %q", got)
	}
}

func series(n int) []models.ForecastEntry {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]models.ForecastEntry, n)
	for i := range entries {
		entries[i] = models.ForecastEntry{
			Timestamp:     start.Add(time.Duration(i) * 3 * time.Hour),
			TemperatureC:  float64(i),
			ConditionKind: "Clear",
		}
	}
	return entries
}

func TestDailySamples(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		indices []int
	}{
		{"full five days", 40, []int{0, 8, 16, 24, 32}},
		{"extra entries are ignored", 48, []int{0, 8, 16, 24, 32}},
		{"short series", 17, []int{0, 8, 16}},
		{"single entry", 1, []int{0}},
		{"empty", 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailySamples(series(tt.n))
			if len(got) != len(tt.indices) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.indices))
			}
			for i, idx := range tt.indices {
				if got[i].TemperatureC != float64(idx) {
					t.Errorf("sample %d came from index %v, want %d", i, got[i].TemperatureC, idx)
				}
			}
		})
	}
}

func TestForecastCards(t *testing.T) {
	entries := series(40)
	entries[8].ConditionKind = "Meteor"
	entries[8].WindSpeedMs = 4
	entries[8].HumidityPct = 63

	cards := Forecast(entries, time.UTC)
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}

	first := cards[0]
	if first.Day != "Mon" || first.Date != "Jan 1" || first.Temperature != "0°C" || first.Icon != "☀️" {
		t.Errorf("unexpected first card: %+v", first)
	}

	second := cards[1]
	if second.Day != "Tue" || second.Date != "Jan 2" || second.Icon != DefaultIcon {
		t.Errorf("unexpected second card: %+v", second)
	}
	if second.WindSpeed != "4 m/s" || second.Humidity != "63%" {
		t.Errorf("unexpected second card measurements: %+v", second)
	}
}
