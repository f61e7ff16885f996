// ABOUTME: Fetcher is the per-source capability that yields raw remote records
// ABOUTME: The pipeline treats a fetch as one blocking call with no internal retry

package interfaces

import (
	"context"

	"mediawatch-api/core/domain"
)

// Fetcher obtains raw, source-shaped records from a remote source. Retry and
// backoff policy, if any, belongs to the implementation — the pipeline never
// retries.
type Fetcher interface {
	// Fetch returns up to maxCount raw items for the query, most recent
	// first when the source supports ordering.
	Fetch(ctx context.Context, query string, maxCount int) ([]domain.RawItem, error)
}

// FetchFunc adapts a plain function to the Fetcher interface.
type FetchFunc func(ctx context.Context, query string, maxCount int) ([]domain.RawItem, error)

// Fetch calls f.
func (f FetchFunc) Fetch(ctx context.Context, query string, maxCount int) ([]domain.RawItem, error) {
	return f(ctx, query, maxCount)
}
