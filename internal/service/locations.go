package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"go.uber.org/zap"
)

// LocationService serves districts, points of interest and accommodations.
type LocationService struct {
	districts      content[model.District]
	pois           content[model.POI]
	accommodations content[model.Accommodation]
	languages      *i18n.Resolver
	logger         *zap.Logger
}

// Districts returns every district in lang, ordered by name.
func (s *LocationService) Districts(ctx context.Context, lang string) ([]model.View, error) {
	views, err := s.districts.all(ctx, "all", repository.NoFilter{}, lang, referenceTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	return views, nil
}

func (s *LocationService) District(ctx context.Context, slug, lang string) (model.View, error) {
	return s.districts.bySlug(ctx, slug, lang)
}

func (s *LocationService) POIs(ctx context.Context, filter repository.POIFilter, q model.ListQuery) (*model.ListResponse, error) {
	var parts []string
	if filter.Category != nil {
		parts = append(parts, "category="+*filter.Category)
	}
	if filter.DistrictID != nil {
		parts = append(parts, fmt.Sprintf("district=%d", *filter.DistrictID))
	}
	return s.pois.list(ctx, filter, strings.Join(parts, ","), q)
}

func (s *LocationService) POI(ctx context.Context, id int64, lang string) (model.View, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.pois.get(ctx, id, lang)
}

func (s *LocationService) POICategories(ctx context.Context) ([]string, error) {
	return s.pois.categories(ctx)
}

func (s *LocationService) Accommodations(ctx context.Context, filter repository.AccommodationFilter, q model.ListQuery) (*model.ListResponse, error) {
	var parts []string
	if filter.Type != nil {
		parts = append(parts, "type="+*filter.Type)
	}
	if filter.Stars != nil {
		parts = append(parts, fmt.Sprintf("stars=%d", *filter.Stars))
	}
	if filter.DistrictID != nil {
		parts = append(parts, fmt.Sprintf("district=%d", *filter.DistrictID))
	}
	return s.accommodations.list(ctx, filter, strings.Join(parts, ","), q)
}

func (s *LocationService) Accommodation(ctx context.Context, id int64, lang string) (model.View, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.accommodations.get(ctx, id, lang)
}

// AccommodationTypes returns the distinct types in use.
func (s *LocationService) AccommodationTypes(ctx context.Context) ([]string, error) {
	return s.accommodations.categories(ctx)
}

func (s *LocationService) CreateDistrict(ctx context.Context, principal *auth.Principal, req model.DistrictRequest) (model.District, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.District{}, err
	}
	slug, err := slugFor(req.Slug, req.Translations, "name", s.languages)
	if err != nil {
		return model.District{}, err
	}
	d := req.District
	d.Slug = slug
	return s.districts.create(ctx, d, req.Translations)
}

func (s *LocationService) UpdateDistrict(ctx context.Context, principal *auth.Principal, id int64, req model.DistrictUpdate) (model.District, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.District{}, err
	}
	if err := requireID(id); err != nil {
		return model.District{}, err
	}
	return s.districts.update(ctx, id, req.DistrictPatch, req.Translations)
}

func (s *LocationService) DeleteDistrict(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireEditor(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.districts.delete(ctx, id)
}

func (s *LocationService) CreatePOI(ctx context.Context, principal *auth.Principal, req model.POIRequest) (model.POI, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.POI{}, err
	}
	return s.pois.create(ctx, req.POI, req.Translations)
}

func (s *LocationService) UpdatePOI(ctx context.Context, principal *auth.Principal, id int64, req model.POIUpdate) (model.POI, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.POI{}, err
	}
	if err := requireID(id); err != nil {
		return model.POI{}, err
	}
	return s.pois.update(ctx, id, req.POIPatch, req.Translations)
}

func (s *LocationService) DeletePOI(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireEditor(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.pois.delete(ctx, id)
}

func (s *LocationService) CreateAccommodation(ctx context.Context, principal *auth.Principal, req model.AccommodationRequest) (model.Accommodation, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.Accommodation{}, err
	}
	created, err := s.accommodations.create(ctx, req.Accommodation, req.Translations)
	if err != nil {
		return model.Accommodation{}, err
	}
	s.logger.Info("accommodation created", zap.Int64("id", created.ID), zap.String("type", created.Type))
	return created, nil
}

func (s *LocationService) UpdateAccommodation(ctx context.Context, principal *auth.Principal, id int64, req model.AccommodationUpdate) (model.Accommodation, error) {
	if err := auth.RequireEditor(principal); err != nil {
		return model.Accommodation{}, err
	}
	if err := requireID(id); err != nil {
		return model.Accommodation{}, err
	}
	return s.accommodations.update(ctx, id, req.AccommodationPatch, req.Translations)
}

func (s *LocationService) DeleteAccommodation(ctx context.Context, principal *auth.Principal, id int64) error {
	if err := auth.RequireEditor(principal); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.accommodations.delete(ctx, id)
}
