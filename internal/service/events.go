package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/cache"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultUpcomingLimit = 10
	maxFeedLimit         = 100
	dateLayout           = "2006-01-02"
)

// EventService manages dated city events.
type EventService struct {
	content content[model.Event]
	logger  *zap.Logger
	now     func() time.Time
}

func (s *EventService) List(ctx context.Context, filter repository.EventFilter, q model.ListQuery) (*model.ListResponse, error) {
	return s.content.list(ctx, filter, eventFilterKey(filter), q)
}

func eventFilterKey(f repository.EventFilter) string {
	var parts []string
	if f.Category != nil {
		parts = append(parts, "category="+*f.Category)
	}
	if f.From != nil {
		parts = append(parts, "from="+f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		parts = append(parts, "to="+f.To.UTC().Format(time.RFC3339))
	}
	if f.Featured != nil {
		parts = append(parts, fmt.Sprintf("featured=%t", *f.Featured))
	}
	return strings.Join(parts, ",")
}

// Upcoming returns the next limit published events starting now or later.
func (s *EventService) Upcoming(ctx context.Context, lang string, limit int) ([]model.View, error) {
	limit = clampLimit(limit, defaultUpcomingLimit)
	return cache.GetOrCompute(ctx, s.content.cache, cache.Key(nsEvents, "upcoming", lang, limit), listTTL,
		func(ctx context.Context) ([]model.View, error) {
			now := s.now().UTC()
			items, err := s.content.repo.List(ctx, repository.EventFilter{From: &now},
				repository.ListOptions{Page: 1, PageSize: limit, Language: lang})
			if err != nil {
				return nil, fmt.Errorf("failed to get upcoming events: %w", err)
			}
			return model.Views(items), nil
		})
}

// ByDate returns the published events starting on date (YYYY-MM-DD, UTC).
func (s *EventService) ByDate(ctx context.Context, date, lang string) ([]model.View, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, apperror.Validation("date must be formatted as YYYY-MM-DD")
	}
	next := day.Add(24 * time.Hour)
	items, err := s.content.repo.All(ctx, repository.EventFilter{From: &day, To: &next}, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by date: %w", err)
	}
	return model.Views(items), nil
}

func (s *EventService) Categories(ctx context.Context) ([]string, error) {
	return s.content.categories(ctx)
}

func (s *EventService) Get(ctx context.Context, id int64, lang string) (model.View, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.content.get(ctx, id, lang)
}

func (s *EventService) Create(ctx context.Context, principal *auth.Principal, req model.EventRequest) (model.Event, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.Event{}, err
	}
	event := req.Event
	event.CreatedBy = &principal.ID
	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		return model.Event{}, apperror.Validation("endDate must not be before startDate")
	}

	created, err := s.content.create(ctx, event, req.Translations)
	if err != nil {
		return model.Event{}, err
	}
	s.logger.Info("event created", zap.Int64("id", created.ID), zap.Int64("by", principal.ID))
	return created, nil
}

func (s *EventService) Update(ctx context.Context, principal *auth.Principal, id int64, req model.EventUpdate) (model.Event, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.Event{}, err
	}
	if err := requireID(id); err != nil {
		return model.Event{}, err
	}
	return s.content.update(ctx, id, req.EventPatch, req.Translations)
}

func (s *EventService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireEditor(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.content.delete(ctx, id)
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}
