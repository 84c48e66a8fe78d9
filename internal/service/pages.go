package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"go.uber.org/zap"
)

// PageService manages portal pages and their navigation tree.
type PageService struct {
	content   content[model.Page]
	languages *i18n.Resolver
	logger    *zap.Logger
}

// List returns one page of published pages.
func (s *PageService) List(ctx context.Context, filter repository.PageFilter, q model.ListQuery) (*model.ListResponse, error) {
	key := ""
	switch {
	case filter.ParentID != nil:
		key = fmt.Sprintf("parent=%d", *filter.ParentID)
	case filter.RootOnly:
		key = "root"
	}
	return s.content.list(ctx, filter, key, q)
}

// Hierarchy returns all published pages in lang as a navigation forest.
func (s *PageService) Hierarchy(ctx context.Context, lang string) ([]model.View, error) {
	tree, err := s.content.tree(ctx, lang, func(p model.Page) *int64 { return p.ParentID })
	if err != nil {
		return nil, fmt.Errorf("failed to build page hierarchy: %w", err)
	}
	return tree, nil
}

func (s *PageService) BySlug(ctx context.Context, slug, lang string) (model.View, error) {
	return s.content.bySlug(ctx, slug, lang)
}

func (s *PageService) Get(ctx context.Context, id int64, lang string) (model.View, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.content.get(ctx, id, lang)
}

// Create stores a page authored by principal. The slug is derived from the
// title when omitted.
func (s *PageService) Create(ctx context.Context, principal *auth.Principal, req model.PageRequest) (model.Page, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.Page{}, err
	}
	slug, err := slugFor(req.Slug, req.Translations, "title", s.languages)
	if err != nil {
		return model.Page{}, err
	}
	page := req.Page
	page.Slug = slug
	page.CreatedBy = &principal.ID
	if page.Template == "" {
		page.Template = "default"
	}

	created, err := s.content.create(ctx, page, req.Translations)
	if err != nil {
		return model.Page{}, err
	}
	s.logger.Info("page created", zap.Int64("id", created.ID), zap.String("slug", created.Slug), zap.Int64("by", principal.ID))
	return created, nil
}

func (s *PageService) Update(ctx context.Context, principal *auth.Principal, id int64, req model.PageUpdate) (model.Page, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.Page{}, err
	}
	if err := requireID(id); err != nil {
		return model.Page{}, err
	}
	if req.ParentID != nil && *req.ParentID == id {
		return model.Page{}, errSelfParent(id)
	}
	return s.content.update(ctx, id, req.PagePatch, req.Translations)
}

func (s *PageService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireEditor(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.content.delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("page deleted", zap.Int64("id", id), zap.Int64("by", principal.ID))
	return nil
}
