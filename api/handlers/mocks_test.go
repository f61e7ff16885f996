// ABOUTME: Mock pipeline service for handler tests
// ABOUTME: Func-field struct so each test overrides only what it needs

package handlers

import (
	"context"

	"mediawatch-api/core/domain"
)

type mockArticlesService struct {
	ArticlesFunc func(ctx context.Context, service string, q domain.Query) ([]domain.Item, error)
	CollectFunc  func(ctx context.Context, service, rawQuery string, n int) (int, error)
	ServicesFunc func() []string
}

func (m *mockArticlesService) Articles(ctx context.Context, service string, q domain.Query) ([]domain.Item, error) {
	if m.ArticlesFunc != nil {
		return m.ArticlesFunc(ctx, service, q)
	}
	return nil, nil
}

func (m *mockArticlesService) Collect(ctx context.Context, service, rawQuery string, n int) (int, error) {
	if m.CollectFunc != nil {
		return m.CollectFunc(ctx, service, rawQuery, n)
	}
	return 0, nil
}

func (m *mockArticlesService) Services() []string {
	if m.ServicesFunc != nil {
		return m.ServicesFunc()
	}
	return nil
}
