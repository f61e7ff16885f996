// ABOUTME: Request parsing for the articles and collect endpoints
// ABOUTME: Caller-supplied window bounds are validated, never silently defaulted

package requests

import (
	"net/url"
	"strconv"
	"time"

	"mediawatch-api/core/domain"
	coreerrors "mediawatch-api/core/errors"
)

// dateLayouts are the accepted formats for the start/end parameters.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ArticlesRequest carries the parsed query parameters of a filtered read.
type ArticlesRequest struct {
	Service string
	Query   domain.Query
}

// ParseArticles validates and converts the request's query parameters.
// Malformed start/end values are rejected: they are caller-supplied bounds,
// unlike per-item dates which resolve leniently.
func ParseArticles(values url.Values) (*ArticlesRequest, error) {
	req := &ArticlesRequest{
		Service: values.Get("service"),
		Query: domain.Query{
			Raw:      values.Get("q"),
			Excludes: domain.SplitExcludes(values.Get("exclude")),
			Language: values.Get("lang"),
			Country:  values.Get("country"),
		},
	}

	if raw := values.Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, &coreerrors.ValidationError{Field: "n", Message: "must be a positive integer"}
		}
		req.Query.N = n
	}

	if raw := values.Get("start"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, &coreerrors.ValidationError{Field: "start", Message: "must be an ISO date"}
		}
		req.Query.Start = t
	}

	if raw := values.Get("end"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, &coreerrors.ValidationError{Field: "end", Message: "must be an ISO date"}
		}
		req.Query.End = t
	}

	if !req.Query.Start.IsZero() && !req.Query.End.IsZero() && req.Query.End.Before(req.Query.Start) {
		return nil, &coreerrors.ValidationError{Field: "end", Message: "must not precede start"}
	}

	return req, nil
}

// CollectRequest carries the parameters of a forced snapshot refresh.
type CollectRequest struct {
	Service string
	Query   string
	N       int
}

// ParseCollect validates and converts the collect parameters.
func ParseCollect(values url.Values) (*CollectRequest, error) {
	req := &CollectRequest{
		Service: values.Get("service"),
		Query:   values.Get("q"),
	}

	if raw := values.Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, &coreerrors.ValidationError{Field: "n", Message: "must be a positive integer"}
		}
		req.N = n
	}

	return req, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
