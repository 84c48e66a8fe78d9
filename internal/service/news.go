package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/cache"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"go.uber.org/zap"
)

const defaultLatestLimit = 5

// NewsService manages news articles.
type NewsService struct {
	content   content[model.News]
	languages *i18n.Resolver
	logger    *zap.Logger
}

func (s *NewsService) List(ctx context.Context, filter repository.NewsFilter, q model.ListQuery) (*model.ListResponse, error) {
	var parts []string
	if filter.Category != nil {
		parts = append(parts, "category="+*filter.Category)
	}
	if filter.Featured != nil {
		parts = append(parts, fmt.Sprintf("featured=%t", *filter.Featured))
	}
	return s.content.list(ctx, filter, strings.Join(parts, ","), q)
}

// Latest returns the most recently published articles.
func (s *NewsService) Latest(ctx context.Context, lang string, limit int) ([]model.View, error) {
	limit = clampLimit(limit, defaultLatestLimit)
	return cache.GetOrCompute(ctx, s.content.cache, cache.Key(nsNews, "latest", lang, limit), listTTL,
		func(ctx context.Context) ([]model.View, error) {
			items, err := s.content.repo.List(ctx, repository.NoFilter{},
				repository.ListOptions{Page: 1, PageSize: limit, Language: lang})
			if err != nil {
				return nil, fmt.Errorf("failed to get latest news: %w", err)
			}
			return model.Views(items), nil
		})
}

func (s *NewsService) Categories(ctx context.Context) ([]string, error) {
	return s.content.categories(ctx)
}

func (s *NewsService) Get(ctx context.Context, id int64, lang string) (model.View, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.content.get(ctx, id, lang)
}

func (s *NewsService) BySlug(ctx context.Context, slug, lang string) (model.View, error) {
	return s.content.bySlug(ctx, slug, lang)
}

func (s *NewsService) Create(ctx context.Context, principal *auth.Principal, req model.NewsRequest) (model.News, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.News{}, err
	}
	slug, err := slugFor(req.Slug, req.Translations, "title", s.languages)
	if err != nil {
		return model.News{}, err
	}
	news := req.News
	news.Slug = slug
	news.AuthorID = &principal.ID

	created, err := s.content.create(ctx, news, req.Translations)
	if err != nil {
		return model.News{}, err
	}
	s.logger.Info("news created", zap.Int64("id", created.ID), zap.String("slug", created.Slug), zap.Int64("by", principal.ID))
	return created, nil
}

func (s *NewsService) Update(ctx context.Context, principal *auth.Principal, id int64, req model.NewsUpdate) (model.News, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.News{}, err
	}
	if err := requireID(id); err != nil {
		return model.News{}, err
	}
	return s.content.update(ctx, id, req.NewsPatch, req.Translations)
}

func (s *NewsService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireEditor(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.content.delete(ctx, id)
}
