package m3u8parse

import (
	"fmt"
)

// FetchError is returned when the playlist document could not be retrieved.
// The parser is never invoked in that case.
type FetchError struct {
	// URL of the request.
	URL string

	// status code of the response, when the server replied with a
	// non-success status.
	StatusCode int

	// underlying error, when the request itself failed.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot fetch playlist %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cannot fetch playlist %s: bad status code: %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}
