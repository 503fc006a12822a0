package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"weather-client/models"
	"weather-client/present"
)

func TestRenderCurrent(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)

	d.RenderCurrent(present.CurrentView{
		Temperature:   "18°C",
		Location:      "Tokyo, JP",
		Description:   "Broken Clouds",
		FeelsLike:     "Feels like: 16°C",
		WindSpeed:     "Speed: 3.6 m/s",
		WindDirection: "Direction: 230°",
		Humidity:      "Humidity: 55%",
		Pressure:      "Pressure: 1014 hPa",
		Icon:          "☁️",
	})

	out := buf.String()
	for _, want := range []string{"18°C", "Tokyo, JP", "Broken Clouds", "Speed: 3.6 m/s", "Pressure: 1014 hPa"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderForecastAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)

	d.RenderForecast([]present.ForecastCard{
		{Day: "Mon", Date: "Jan 1", Icon: "☀️", Temperature: "0°C", WindSpeed: "4 m/s", Humidity: "63%"},
		{Day: "Tue", Date: "Jan 12", Icon: "🌧️", Temperature: "-12°C", WindSpeed: "10.5 m/s", Humidity: "100%"},
	})

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "Mon") || strings.HasPrefix(line, "Tue") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(rows), buf.String())
	}
	if strings.Index(rows[0], "Jan") != strings.Index(rows[1], "Jan") {
		t.Errorf("date column not aligned:\n%s\n%s", rows[0], rows[1])
	}
}

func TestRecentList(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)

	d.RenderRecent([]string{"Lima", "Oslo"})
	if buf.Len() != 0 {
		t.Errorf("hidden list printed: %q", buf.String())
	}

	d.ShowRecent()
	if !strings.Contains(buf.String(), "2. Oslo") {
		t.Errorf("list not printed: %q", buf.String())
	}

	if c, ok := d.Pick(1); !ok || c != "Lima" {
		t.Errorf("Pick(1) = %q, %v", c, ok)
	}
	if _, ok := d.Pick(3); ok {
		t.Error("Pick(3) should fail")
	}

	d.HideRecent()
	buf.Reset()
	d.RenderRecent([]string{"Rome"})
	if buf.Len() != 0 {
		t.Errorf("hidden list printed: %q", buf.String())
	}
	if got := d.Recent(); len(got) != 1 || got[0] != "Rome" {
		t.Errorf("Recent() = %v", got)
	}
}

func TestShowError(t *testing.T) {
	var buf bytes.Buffer
	NewDisplay(&buf).ShowError("Please enter a city name")
	if buf.String() != "Error: Please enter a city name\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestFixedLocator(t *testing.T) {
	l := FixedLocator{Coords: models.Coordinates{Latitude: 1, Longitude: 2}, Enabled: true}
	if !l.Supported() {
		t.Fatal("expected supported")
	}
	c, err := l.CurrentPosition(context.Background())
	if err != nil || c.Latitude != 1 || c.Longitude != 2 {
		t.Errorf("CurrentPosition = %+v, %v", c, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.CurrentPosition(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	if (FixedLocator{}).Supported() {
		t.Error("zero locator should be unsupported")
	}
}
