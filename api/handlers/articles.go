// ABOUTME: HTTP handlers for the articles (filtered read) and collect (refresh) endpoints
// ABOUTME: Thin boundary over the pipeline service; all policy lives in core

package handlers

import (
	"context"
	"net/http"

	"mediawatch-api/api/dto/mappers"
	"mediawatch-api/api/dto/requests"
	"mediawatch-api/api/dto/responses"
	"mediawatch-api/core/domain"
	coreerrors "mediawatch-api/core/errors"
)

// ArticlesService defines the pipeline operations the handlers need.
type ArticlesService interface {
	Articles(ctx context.Context, service string, q domain.Query) ([]domain.Item, error)
	Collect(ctx context.Context, service, rawQuery string, n int) (int, error)
	Services() []string
}

// ArticlesHandler serves the query surface of the pipeline.
type ArticlesHandler struct {
	service ArticlesService
}

// NewArticlesHandler creates a new articles handler.
func NewArticlesHandler(service ArticlesService) *ArticlesHandler {
	return &ArticlesHandler{service: service}
}

// RegisterRoutes attaches the handler's endpoints to the mux.
func (h *ArticlesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /articles", h.Articles)
	mux.HandleFunc("GET /collect", h.Collect)
	mux.HandleFunc("GET /services", h.ListServices)
}

// Articles handles GET /articles: a filtered read over the cached snapshot,
// fetching remotely only on a cache miss.
func (h *ArticlesHandler) Articles(w http.ResponseWriter, r *http.Request) {
	req, err := requests.ParseArticles(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Service == "" {
		writeError(w, &coreerrors.ValidationError{Field: "service", Message: "is required"})
		return
	}

	items, err := h.service.Articles(r.Context(), req.Service, req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToArticles(items))
}

// Collect handles GET /collect: the explicit refresh operation that always
// invokes the remote fetcher and overwrites the stored snapshot.
func (h *ArticlesHandler) Collect(w http.ResponseWriter, r *http.Request) {
	req, err := requests.ParseCollect(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Service == "" {
		writeError(w, &coreerrors.ValidationError{Field: "service", Message: "is required"})
		return
	}

	count, err := h.service.Collect(r.Context(), req.Service, req.Query, req.N)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.CollectResponse{Status: "ok", Count: count})
}

// ListServices handles GET /services: the registered source tags.
func (h *ArticlesHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.ServicesResponse{Services: h.service.Services()})
}
