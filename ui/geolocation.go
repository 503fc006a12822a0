package ui

import (
	"context"
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"weather-client/client"
	"weather-client/models"
)

// BrowserGeolocator asks navigator.geolocation for a single position
type BrowserGeolocator struct{}

var _ client.Geolocator = BrowserGeolocator{}

func geolocation() app.Value {
	return app.Window().Get("navigator").Get("geolocation")
}

func (BrowserGeolocator) Supported() bool {
	return geolocation().Truthy()
}

type position struct {
	coords models.Coordinates
	err    error
}

// pendingPosition is one outstanding getCurrentPosition request. The JS callbacks
// stay registered until the browser answers, even when the caller stopped waiting.
type pendingPosition struct {
	done    chan position
	release func()
}

func newPendingPosition(release func()) *pendingPosition {
	return &pendingPosition{done: make(chan position, 1), release: release}
}

// answer is called exactly once, from whichever callback the browser invokes
func (p *pendingPosition) answer(pos position) {
	p.done <- pos
	p.release()
}

func (p *pendingPosition) wait(ctx context.Context) (models.Coordinates, error) {
	select {
	case pos := <-p.done:
		return pos.coords, pos.err
	case <-ctx.Done():
		return models.Coordinates{}, ctx.Err()
	}
}

// CurrentPosition waits for the browser callback or ctx, whichever comes first
func (BrowserGeolocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	var success, failure app.Func
	pending := newPendingPosition(func() {
		success.Release()
		failure.Release()
	})

	success = app.FuncOf(func(this app.Value, args []app.Value) any {
		coords := args[0].Get("coords")
		pending.answer(position{coords: models.Coordinates{
			Latitude:  coords.Get("latitude").Float(),
			Longitude: coords.Get("longitude").Float(),
		}})
		return nil
	})

	failure = app.FuncOf(func(this app.Value, args []app.Value) any {
		msg := "position unavailable"
		if len(args) > 0 && args[0].Truthy() {
			msg = args[0].Get("message").String()
		}
		pending.answer(position{err: errors.New(msg)})
		return nil
	})

	geolocation().Call("getCurrentPosition", success, failure)

	return pending.wait(ctx)
}
