//go:build js && wasm

package ui

import (
	"context"
	"fmt"

	fetch "github.com/mlctrez/wasm-fetch"

	"weather-client/datasource"
)

// browserFetcher issues requests through the browser fetch API
type browserFetcher struct{}

var _ datasource.Fetcher = browserFetcher{}

func newFetcher() datasource.Fetcher {
	return browserFetcher{}
}

func (browserFetcher) Get(ctx context.Context, url string) (*datasource.Response, error) {
	resp, err := fetch.Fetch(url, &fetch.Opts{Method: fetch.MethodGet, Signal: ctx})
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	return &datasource.Response{StatusCode: resp.Status, Body: resp.Body}, nil
}
