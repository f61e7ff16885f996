// ABOUTME: Articles service ties the snapshot cache and normalizer into one pipeline
// ABOUTME: Holds the static source registry mapping service tags to fetcher + field map

package articles

import (
	"context"
	"fmt"
	"time"

	"mediawatch-api/core/domain"
	coreerrors "mediawatch-api/core/errors"
	"mediawatch-api/core/interfaces"
	"mediawatch-api/core/normalize"
	"mediawatch-api/core/snapshot"
)

// Source pairs a fetch capability with the field map describing its raw
// shape. Sources are registered once at startup; request handling only does
// a map read, never a dynamic lookup-by-name.
type Source struct {
	Fetcher interfaces.Fetcher
	Map     normalize.FieldMap
}

// Service is the pipeline's public entry point: filtered reads over cached
// snapshots, and forced collects that refresh them.
type Service struct {
	snapshots  *snapshot.Service
	normalizer *normalize.Normalizer
	logger     interfaces.Logger
	sources    map[string]Source
	defaultN   int

	// now is replaceable in tests; the date window's upper bound is
	// relative to evaluation time.
	now func() time.Time
}

// NewService creates the pipeline service. Register sources before serving
// requests; the registry is not safe for concurrent mutation.
func NewService(snapshots *snapshot.Service, normalizer *normalize.Normalizer, logger interfaces.Logger, defaultN int) *Service {
	if defaultN <= 0 {
		defaultN = 200
	}
	return &Service{
		snapshots:  snapshots,
		normalizer: normalizer,
		logger:     logger,
		sources:    make(map[string]Source),
		defaultN:   defaultN,
		now:        time.Now,
	}
}

// RegisterSource adds a source under its service tag.
func (s *Service) RegisterSource(tag string, src Source) error {
	if tag == "" {
		return fmt.Errorf("source tag cannot be empty")
	}
	if src.Fetcher == nil {
		return fmt.Errorf("source '%s' has no fetcher", tag)
	}
	if _, dup := s.sources[tag]; dup {
		return fmt.Errorf("source '%s' already registered", tag)
	}
	s.sources[tag] = src
	return nil
}

// Services returns the registered service tags.
func (s *Service) Services() []string {
	tags := make([]string, 0, len(s.sources))
	for tag := range s.sources {
		tags = append(tags, tag)
	}
	return tags
}

// Articles answers a filtered query against one source. The snapshot cache
// is consulted first; only a miss reaches the remote fetcher. A query
// matching nothing returns an empty list, never an error.
func (s *Service) Articles(ctx context.Context, service string, q domain.Query) ([]domain.Item, error) {
	src, ok := s.sources[service]
	if !ok {
		return nil, &coreerrors.UnknownServiceError{Service: service}
	}

	now := s.now()
	q.Language = normalize.CanonicalFilter(q.Language)
	q.Country = normalize.CanonicalFilter(q.Country)
	q.ApplyDefaults(now, s.defaultN)

	slug := snapshotSlug(service, q.Raw)
	raw, err := s.snapshots.GetOrFetch(ctx, slug, src.Map.ResolveURL, s.fetchFunc(service, src, q))
	if err != nil {
		return nil, err
	}

	items := s.normalizer.Apply(raw, src.Map, q, now)

	if s.logger != nil {
		s.logger.Debug("Query served", map[string]interface{}{
			"service": service,
			"slug":    slug,
			"raw":     len(raw),
			"items":   len(items),
		})
	}

	return items, nil
}

// Collect forces a refresh of the snapshot for the query, bypassing the hit
// check, and reports how many raw items were stored.
func (s *Service) Collect(ctx context.Context, service, rawQuery string, n int) (int, error) {
	src, ok := s.sources[service]
	if !ok {
		return 0, &coreerrors.UnknownServiceError{Service: service}
	}

	if n <= 0 {
		n = s.defaultN
	}
	q := domain.Query{Raw: rawQuery, N: n}

	slug := snapshotSlug(service, rawQuery)
	items, err := s.snapshots.Refresh(ctx, slug, src.Map.ResolveURL, s.fetchFunc(service, src, q))
	if err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Info("Collect completed", map[string]interface{}{
			"service": service,
			"slug":    slug,
			"count":   len(items),
		})
	}

	return len(items), nil
}

// snapshotSlug derives the store key from both the service tag and the
// query. All sources share one store, and their raw shapes differ; a key
// namespaced per service keeps one source's snapshot from answering another
// source's query.
func snapshotSlug(service, rawQuery string) string {
	return snapshot.Slugify(service + " " + rawQuery)
}

// fetchFunc wraps a source fetch so failures surface as FetchError,
// distinguishable from an empty result set.
func (s *Service) fetchFunc(service string, src Source, q domain.Query) snapshot.FetchFunc {
	return func(ctx context.Context) ([]domain.RawItem, error) {
		items, err := src.Fetcher.Fetch(ctx, q.Raw, q.N)
		if err != nil {
			return nil, &coreerrors.FetchError{Service: service, Err: err}
		}
		return items, nil
	}
}
