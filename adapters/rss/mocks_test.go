// ABOUTME: Mock HTTP client and logger for RSS fetcher tests
// ABOUTME: Serves canned bodies keyed by URL

package rss

import (
	"context"
	"errors"
	"io"
	"strings"

	"mediawatch-api/core/interfaces"
)

type mockResponse struct {
	status int
	body   string
}

func (m *mockResponse) StatusCode() int        { return m.status }
func (m *mockResponse) Body() io.ReadCloser    { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

// mockClient serves per-URL canned responses; unknown URLs fail.
type mockClient struct {
	responses map[string]*mockResponse
	requests  []string
}

func (m *mockClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	m.requests = append(m.requests, url)
	resp, ok := m.responses[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return resp, nil
}

type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.warnings++ }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
