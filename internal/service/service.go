package service

import (
	"time"

	"github.com/alexivanou/cityportal-api/internal/cache"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/search"
	"go.uber.org/zap"
)

// Cache lifetimes per read.
const (
	listTTL      = 5 * time.Minute
	hierarchyTTL = 10 * time.Minute
	referenceTTL = time.Hour
)

// Cache namespaces. Every write drops its whole namespace.
const (
	nsPages     = "pages"
	nsEvents    = "events"
	nsNews      = "news"
	nsBusiness  = "business"
	nsLocations = "locations"
)

// Service groups the use cases of each content area.
type Service struct {
	Pages     *PageService
	Events    *EventService
	News      *NewsService
	Business  *BusinessService
	Locations *LocationService
	Search    *SearchService
	I18n      *I18nService
}

// Deps are the collaborators shared by all services.
type Deps struct {
	Repos     *repository.Container
	Cache     *cache.Aside
	Languages *i18n.Resolver
	Catalog   i18n.Catalog
	Metrics   *metrics.Collector
	Logger    *zap.Logger
}

// NewService creates all services over deps. Cache and Metrics may be nil;
// a nil Catalog is replaced by the bundled one.
func NewService(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now
	r := deps.Repos

	catalog := deps.Catalog
	if catalog == nil {
		var err error
		if catalog, err = i18n.LoadCatalog(); err != nil {
			logger.Warn("UI catalog unavailable", zap.Error(err))
		}
	}

	pages := &PageService{
		content:   newContent(r.Pages, nsPages, nsPages, deps.Cache),
		languages: deps.Languages,
		logger:    logger.Named("pages"),
	}
	events := &EventService{
		content: newContent(r.Events, nsEvents, nsEvents, deps.Cache),
		logger:  logger.Named("events"),
		now:     now,
	}
	news := &NewsService{
		content:   newContent(r.News, nsNews, nsNews, deps.Cache),
		languages: deps.Languages,
		logger:    logger.Named("news"),
	}
	business := &BusinessService{
		content:    newContent(r.Businesses, nsBusiness, nsBusiness, deps.Cache),
		categories: newContent(r.Categories, nsBusiness, nsBusiness+":categories", deps.Cache),
		languages:  deps.Languages,
		logger:     logger.Named("business"),
	}
	locations := &LocationService{
		districts:      newContent(r.Districts, nsLocations, nsLocations+":districts", deps.Cache),
		pois:           newContent(r.POIs, nsLocations, nsLocations+":poi", deps.Cache),
		accommodations: newContent(r.Accommodations, nsLocations, nsLocations+":accommodation", deps.Cache),
		languages:      deps.Languages,
		logger:         logger.Named("locations"),
	}

	coordinator := search.NewCoordinator(deps.Metrics)
	coordinator.Register("pages", searcher(r.Pages))
	coordinator.Register("events", searcher(r.Events))
	coordinator.Register("news", searcher(r.News))
	coordinator.Register("business", searcher(r.Businesses))
	coordinator.Register("locations", searcher(r.POIs))

	return &Service{
		Pages:     pages,
		Events:    events,
		News:      news,
		Business:  business,
		Locations: locations,
		Search: &SearchService{
			coordinator: coordinator,
			pages:       r.Pages,
			logger:      logger.Named("search"),
		},
		I18n: &I18nService{languages: deps.Languages, catalog: catalog},
	}
}
