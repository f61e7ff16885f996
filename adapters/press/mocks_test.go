// ABOUTME: Mock HTTP client and logger for press fetcher tests
// ABOUTME: Serves one canned HTML body per URL

package press

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

func (m *mockResponse) StatusCode() int          { return m.status }
func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

type mockClient struct {
	responses map[string]*mockResponse
}

func (m *mockClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	resp, ok := m.responses[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return resp, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
