package datasource

import (
	"fmt"
)

// FetchError reports a failed request against the weather API. Either StatusCode is
// a non-success HTTP status or Err holds the transport/decoding failure.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("fetch %s: API returned non-success status: %d", e.Endpoint, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
