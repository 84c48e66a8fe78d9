package service

import (
	"context"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
)

// The interfaces below are what the HTTP layer depends on, so handlers can
// be tested against mocks.

type PageAPI interface {
	List(ctx context.Context, filter repository.PageFilter, q model.ListQuery) (*model.ListResponse, error)
	Hierarchy(ctx context.Context, lang string) ([]model.View, error)
	BySlug(ctx context.Context, slug, lang string) (model.View, error)
	Get(ctx context.Context, id int64, lang string) (model.View, error)
	Create(ctx context.Context, principal *auth.Principal, req model.PageRequest) (model.Page, error)
	Update(ctx context.Context, principal *auth.Principal, id int64, req model.PageUpdate) (model.Page, error)
	Delete(ctx context.Context, principal *auth.Principal, id int64) error
}

type EventAPI interface {
	List(ctx context.Context, filter repository.EventFilter, q model.ListQuery) (*model.ListResponse, error)
	Upcoming(ctx context.Context, lang string, limit int) ([]model.View, error)
	ByDate(ctx context.Context, date, lang string) ([]model.View, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64, lang string) (model.View, error)
	Create(ctx context.Context, principal *auth.Principal, req model.EventRequest) (model.Event, error)
	Update(ctx context.Context, principal *auth.Principal, id int64, req model.EventUpdate) (model.Event, error)
	Delete(ctx context.Context, principal *auth.Principal, id int64) error
}

type NewsAPI interface {
	List(ctx context.Context, filter repository.NewsFilter, q model.ListQuery) (*model.ListResponse, error)
	Latest(ctx context.Context, lang string, limit int) ([]model.View, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64, lang string) (model.View, error)
	BySlug(ctx context.Context, slug, lang string) (model.View, error)
	Create(ctx context.Context, principal *auth.Principal, req model.NewsRequest) (model.News, error)
	Update(ctx context.Context, principal *auth.Principal, id int64, req model.NewsUpdate) (model.News, error)
	Delete(ctx context.Context, principal *auth.Principal, id int64) error
}

type BusinessAPI interface {
	List(ctx context.Context, filter repository.BusinessFilter, q model.ListQuery) (*model.ListResponse, error)
	Search(ctx context.Context, query string, q model.ListQuery) (*model.ListResponse, error)
	Categories(ctx context.Context, lang string) ([]model.View, error)
	Get(ctx context.Context, id int64, lang string) (model.View, error)
	Create(ctx context.Context, principal *auth.Principal, req model.BusinessRequest) (model.Business, error)
	Update(ctx context.Context, principal *auth.Principal, id int64, req model.BusinessUpdate) (model.Business, error)
	Delete(ctx context.Context, principal *auth.Principal, id int64) error
	Verify(ctx context.Context, principal *auth.Principal, id int64) (model.Business, error)
	CreateCategory(ctx context.Context, principal *auth.Principal, req model.CategoryRequest) (model.Category, error)
	UpdateCategory(ctx context.Context, principal *auth.Principal, id int64, req model.CategoryUpdate) (model.Category, error)
	DeleteCategory(ctx context.Context, principal *auth.Principal, id int64) error
}

type LocationAPI interface {
	Districts(ctx context.Context, lang string) ([]model.View, error)
	District(ctx context.Context, slug, lang string) (model.View, error)
	POIs(ctx context.Context, filter repository.POIFilter, q model.ListQuery) (*model.ListResponse, error)
	POI(ctx context.Context, id int64, lang string) (model.View, error)
	POICategories(ctx context.Context) ([]string, error)
	Accommodations(ctx context.Context, filter repository.AccommodationFilter, q model.ListQuery) (*model.ListResponse, error)
	Accommodation(ctx context.Context, id int64, lang string) (model.View, error)
	AccommodationTypes(ctx context.Context) ([]string, error)
	CreateDistrict(ctx context.Context, principal *auth.Principal, req model.DistrictRequest) (model.District, error)
	UpdateDistrict(ctx context.Context, principal *auth.Principal, id int64, req model.DistrictUpdate) (model.District, error)
	DeleteDistrict(ctx context.Context, principal *auth.Principal, id int64) error
	CreatePOI(ctx context.Context, principal *auth.Principal, req model.POIRequest) (model.POI, error)
	UpdatePOI(ctx context.Context, principal *auth.Principal, id int64, req model.POIUpdate) (model.POI, error)
	DeletePOI(ctx context.Context, principal *auth.Principal, id int64) error
	CreateAccommodation(ctx context.Context, principal *auth.Principal, req model.AccommodationRequest) (model.Accommodation, error)
	UpdateAccommodation(ctx context.Context, principal *auth.Principal, id int64, req model.AccommodationUpdate) (model.Accommodation, error)
	DeleteAccommodation(ctx context.Context, principal *auth.Principal, id int64) error
}

type SearchAPI interface {
	Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error)
	Suggest(ctx context.Context, req model.SuggestRequest) (*model.SuggestResponse, error)
}

type I18nAPI interface {
	Languages() []i18n.Language
	Default() string
	Translations(lang string) (*model.UITranslationsResponse, error)
}

var (
	_ PageAPI     = (*PageService)(nil)
	_ EventAPI    = (*EventService)(nil)
	_ NewsAPI     = (*NewsService)(nil)
	_ BusinessAPI = (*BusinessService)(nil)
	_ LocationAPI = (*LocationService)(nil)
	_ SearchAPI   = (*SearchService)(nil)
	_ I18nAPI     = (*I18nService)(nil)
)
