// Package search fans a free-text query out to every translated kind.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/alexivanou/cityportal-api/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	// All selects every registered kind.
	All = "all"
	// PerKindLimitAll caps each kind when searching all kinds.
	PerKindLimitAll = 5
	// MinQueryLength is the shortest query that is searched.
	MinQueryLength = 2
)

// Searcher runs one kind's substring query.
type Searcher interface {
	Search(ctx context.Context, query, lang string, limit, offset int) ([]model.View, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, query, lang string, limit, offset int) ([]model.View, error)

func (f SearcherFunc) Search(ctx context.Context, query, lang string, limit, offset int) ([]model.View, error) {
	return f(ctx, query, lang, limit, offset)
}

// Request is one search call.
type Request struct {
	Query    string
	Kind     string
	Language string
	Page     int
	PageSize int
}

// Result is either a mapping kind → items (Kind == All) or one kind's list.
type Result struct {
	Kind   string
	ByKind map[string][]model.View
	Items  []model.View
	Query  string
	Limit  int
	Offset int
}

// Data returns the response payload: the map for All, else the list.
func (r Result) Data() any {
	if r.Kind == All {
		return r.ByKind
	}
	return r.Items
}

// Coordinator runs all selected searchers concurrently.
type Coordinator struct {
	searchers map[string]Searcher
	metrics   *metrics.Collector
}

// NewCoordinator creates a coordinator; m may be nil.
func NewCoordinator(m *metrics.Collector) *Coordinator {
	return &Coordinator{searchers: map[string]Searcher{}, metrics: m}
}

// Register adds the searcher for kind.
func (c *Coordinator) Register(kind string, s Searcher) {
	c.searchers[kind] = s
}

// Kinds lists the registered kind names in sorted order.
func (c *Coordinator) Kinds() []string {
	kinds := make([]string, 0, len(c.searchers))
	for k := range c.searchers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Search validates req and queries the selected kinds. With Kind == All
// every kind returns at most PerKindLimitAll items from its start; a single
// kind returns up to PageSize items starting at the requested page. Any
// failing branch fails the whole search.
func (c *Coordinator) Search(ctx context.Context, req Request) (Result, error) {
	req.Query = strings.TrimSpace(req.Query)
	if len([]rune(req.Query)) < MinQueryLength {
		return Result{}, apperror.Validation("query must be at least %d characters", MinQueryLength)
	}
	if req.Kind == "" {
		req.Kind = All
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	kinds := c.Kinds()
	limit, offset := PerKindLimitAll, 0
	if req.Kind != All {
		if _, ok := c.searchers[req.Kind]; !ok {
			return Result{}, apperror.Validation("unknown search type %q", req.Kind)
		}
		kinds = []string{req.Kind}
		limit, offset = req.PageSize, (req.Page-1)*req.PageSize
	}

	results := make([][]model.View, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		s := c.searchers[kind]
		g.Go(func() error {
			start := time.Now()
			items, err := s.Search(gctx, req.Query, req.Language, limit, offset)
			c.metrics.SearchBranch(kind, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("search %s: %w", kind, err)
			}
			if len(items) > limit {
				items = items[:limit]
			}
			if items == nil {
				items = []model.View{}
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Kind: req.Kind, Query: req.Query, Limit: limit, Offset: offset}
	if req.Kind != All {
		res.Items = results[0]
		return res, nil
	}
	res.ByKind = make(map[string][]model.View, len(kinds))
	for i, kind := range kinds {
		res.ByKind[kind] = results[i]
	}
	return res, nil
}
