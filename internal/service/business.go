package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/search"
	"go.uber.org/zap"
)

// DefaultCity is stored for listings submitted without a city.
const DefaultCity = "München"

// BusinessService manages the business directory and its categories.
// Any signed-in user may submit a listing; owners and admins may edit it.
type BusinessService struct {
	content    content[model.Business]
	categories content[model.Category]
	languages  *i18n.Resolver
	logger     *zap.Logger
}

func (s *BusinessService) List(ctx context.Context, filter repository.BusinessFilter, q model.ListQuery) (*model.ListResponse, error) {
	var parts []string
	if filter.CategoryID != nil {
		parts = append(parts, fmt.Sprintf("category=%d", *filter.CategoryID))
	}
	if filter.District != nil {
		parts = append(parts, "district="+*filter.District)
	}
	if filter.Verified != nil {
		parts = append(parts, fmt.Sprintf("verified=%t", *filter.Verified))
	}
	if filter.OwnerID != nil {
		parts = append(parts, fmt.Sprintf("owner=%d", *filter.OwnerID))
	}
	return s.content.list(ctx, filter, strings.Join(parts, ","), q)
}

// Search matches active listings by name or description.
func (s *BusinessService) Search(ctx context.Context, query string, q model.ListQuery) (*model.ListResponse, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < search.MinQueryLength {
		return nil, apperror.Validation("query must be at least %d characters", search.MinQueryLength)
	}
	opts := repository.ListOptions{Page: q.Page, PageSize: q.Limit, Language: q.Language}.Normalize()
	items, err := s.content.repo.Search(ctx, query, opts.Language, opts.PageSize, opts.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	return &model.ListResponse{
		Data:       model.Views(items),
		Pagination: model.Pagination{Page: opts.Page, Limit: opts.PageSize},
	}, nil
}

// Categories returns the category forest in lang.
func (s *BusinessService) Categories(ctx context.Context, lang string) ([]model.View, error) {
	tree, err := s.categories.tree(ctx, lang, func(c model.Category) *int64 { return c.ParentID })
	if err != nil {
		return nil, fmt.Errorf("failed to build category tree: %w", err)
	}
	return tree, nil
}

func (s *BusinessService) Get(ctx context.Context, id int64, lang string) (model.View, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.content.get(ctx, id, lang)
}

// Create submits a listing owned by principal. Only admins may set the
// moderation fields; other submissions start pending.
func (s *BusinessService) Create(ctx context.Context, principal *auth.Principal, req model.BusinessRequest) (model.Business, error) {
	if principal == nil {
		return model.Business{}, apperror.Unauthorized("authentication required")
	}
	b := req.Business
	b.OwnerID = &principal.ID
	if strings.TrimSpace(b.City) == "" {
		b.City = DefaultCity
	}
	if !principal.IsAdmin() {
		b.Status = ""
		b.IsPremium = false
		b.IsVerified = false
	}

	created, err := s.content.create(ctx, b, req.Translations)
	if err != nil {
		return model.Business{}, err
	}
	s.logger.Info("business submitted", zap.Int64("id", created.ID), zap.Int64("owner", principal.ID))
	return created, nil
}

// Update edits a listing. Non-admin owners cannot change moderation fields.
func (s *BusinessService) Update(ctx context.Context, principal *auth.Principal, id int64, req model.BusinessUpdate) (model.Business, error) {
	if principal == nil {
		return model.Business{}, apperror.Unauthorized("authentication required")
	}
	if err := requireID(id); err != nil {
		return model.Business{}, err
	}
	if !principal.IsAdmin() {
		current, err := s.content.repo.FindByID(ctx, id, "")
		if err != nil {
			return model.Business{}, err
		}
		owner := current.Entity.OwnerID
		if owner == nil || *owner != principal.ID {
			return model.Business{}, apperror.Forbidden("only the owner or an admin may edit business %d", id)
		}
		req.Status = nil
		req.IsPremium = nil
		req.IsVerified = nil
	}
	return s.content.update(ctx, id, req.BusinessPatch, req.Translations)
}

func (s *BusinessService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireAdmin(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.content.delete(ctx, id)
}

// Verify marks a listing verified and active.
func (s *BusinessService) Verify(ctx context.Context, principal *auth.Principal, id int64) (model.Business, error) {
	if err := auth.RequireAdmin(principal); err != nil {
		return model.Business{}, err
	}
	if err := requireID(id); err != nil {
		return model.Business{}, err
	}
	verified := true
	active := model.StatusActive
	b, err := s.content.update(ctx, id, model.BusinessPatch{IsVerified: &verified, Status: &active}, nil)
	if err != nil {
		return model.Business{}, err
	}
	s.logger.Info("business verified", zap.Int64("id", id), zap.Int64("by", principal.ID))
	return b, nil
}

func (s *BusinessService) CreateCategory(ctx context.Context, principal *auth.Principal, req model.CategoryRequest) (model.Category, error) {
	if err := auth.RequireAdmin(principal); err != nil {
		return model.Category{}, err
	}
	slug, err := slugFor(req.Slug, req.Translations, "name", s.languages)
	if err != nil {
		return model.Category{}, err
	}
	c := req.Category
	c.Slug = slug
	return s.categories.create(ctx, c, req.Translations)
}

func (s *BusinessService) UpdateCategory(ctx context.Context, principal *auth.Principal, id int64, req model.CategoryUpdate) (model.Category, error) {
	if err := auth.RequireAdmin(principal); err != nil {
		return model.Category{}, err
	}
	if err := requireID(id); err != nil {
		return model.Category{}, err
	}
	if req.ParentID != nil && *req.ParentID == id {
		return model.Category{}, errSelfParent(id)
	}
	return s.categories.update(ctx, id, req.CategoryPatch, req.Translations)
}

func (s *BusinessService) DeleteCategory(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireAdmin(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.categories.delete(ctx, id)
}
