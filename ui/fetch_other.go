//go:build !(js && wasm)

package ui

import (
	"weather-client/datasource"
)

// newFetcher falls back to net/http outside the browser, where the component is only
// compiled for the page handler
func newFetcher() datasource.Fetcher {
	return datasource.NewHTTPFetcher(0)
}
