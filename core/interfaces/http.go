package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests from fetch
// adapters. The abstraction keeps adapters testable and lets retry behavior
// live in one implementation.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses returned by HTTPClient.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or "" when absent.
	// Header names are case-insensitive.
	Header(key string) string
}
