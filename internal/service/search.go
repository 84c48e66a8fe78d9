package service

import (
	"context"
	"strings"

	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/search"
	"go.uber.org/zap"
)

const suggestLimit = 10

// SearchService runs the portal-wide search and title suggestions.
type SearchService struct {
	coordinator *search.Coordinator
	pages       repository.PageRepository
	logger      *zap.Logger
}

// Search queries every kind (type "all") or a single one.
func (s *SearchService) Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error) {
	res, err := s.coordinator.Search(ctx, search.Request{
		Query:    req.Query,
		Kind:     req.Type,
		Language: req.Lang,
		Page:     req.Page,
		PageSize: req.Limit,
	})
	if err != nil {
		s.logger.Debug("search failed", zap.String("query", req.Query), zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	page := 1
	if res.Limit > 0 {
		page = res.Offset/res.Limit + 1
	}
	return &model.SearchResponse{
		Query:      res.Query,
		Data:       res.Data(),
		Pagination: model.Pagination{Page: page, Limit: res.Limit},
	}, nil
}

// Suggest returns up to ten page titles starting with the query. Queries
// shorter than two characters yield an empty list.
func (s *SearchService) Suggest(ctx context.Context, req model.SuggestRequest) (*model.SuggestResponse, error) {
	q := strings.TrimSpace(req.Query)
	if len([]rune(q)) < search.MinQueryLength {
		return &model.SuggestResponse{Data: []string{}}, nil
	}
	titles, err := s.pages.Suggest(ctx, q, req.Lang, suggestLimit)
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []string{}
	}
	return &model.SuggestResponse{Data: titles}, nil
}

// Kinds lists the searchable kinds.
func (s *SearchService) Kinds() []string {
	return s.coordinator.Kinds()
}
