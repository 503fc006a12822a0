// Package terminal renders the weather client into a text stream.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"weather-client/client"
	"weather-client/present"
)

// Display writes panels to an io.Writer
type Display struct {
	mu      sync.Mutex
	out     io.Writer
	recent  []string
	visible bool
	input   string
}

// Ensure Display implements client.Display
var _ client.Display = (*Display)(nil)

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (d *Display) ShowLoading(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if on {
		fmt.Fprintln(d.out, "Loading...")
	}
}

func (d *Display) ShowError(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "Error: %s\n", message)
}

// HideError is a no-op; printed errors scroll away
func (d *Display) HideError() {}

func (d *Display) RenderCurrent(v present.CurrentView) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, "%s  %s  %s\n", v.Icon, v.Temperature, v.Location)
	fmt.Fprintf(d.out, "   %s, %s\n", v.Description, v.FeelsLike)
	fmt.Fprintf(d.out, "   Wind %s, %s\n", v.WindSpeed, v.WindDirection)
	fmt.Fprintf(d.out, "   %s, %s\n", v.Humidity, v.Pressure)
}

func (d *Display) RenderForecast(cards []present.ForecastCard) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "5-Day Forecast")
	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.Day, c.Date, c.Icon, c.Temperature, c.WindSpeed, c.Humidity)
	}
	w.Flush()
	fmt.Fprintln(d.out)
}

// RenderRecent stores the list; it is printed by ShowRecent
func (d *Display) RenderRecent(cities []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recent = append([]string(nil), cities...)
	if d.visible {
		d.printRecent()
	}
}

func (d *Display) ShowRecent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible = true
	d.printRecent()
}

func (d *Display) HideRecent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible = false
}

func (d *Display) SetCityInput(city string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.input = city
	fmt.Fprintf(d.out, "> %s\n", city)
}

// Recent returns the last rendered suggestion list
func (d *Display) Recent() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.recent...)
}

// Pick returns the 1-based n-th suggestion
func (d *Display) Pick(n int) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n < 1 || n > len(d.recent) {
		return "", false
	}
	return d.recent[n-1], true
}

func (d *Display) printRecent() {
	if len(d.recent) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("Recent searches:\n")
	for i, c := range d.recent {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, c)
	}
	io.WriteString(d.out, b.String())
}
