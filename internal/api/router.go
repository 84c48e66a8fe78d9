package api

import (
	"net/http"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RouterDeps are the collaborators of the HTTP layer. Stats, Metrics and
// Tokens may be nil.
type RouterDeps struct {
	Handler   *Handler
	Stats     StatsCollector
	Languages *i18n.Resolver
	Tokens    *auth.TokenParser
	Metrics   *metrics.Collector
	Logger    *zap.Logger
}

// NewRouter creates a new HTTP router
func NewRouter(deps RouterDeps) *mux.Router {
	h := deps.Handler
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter()
	router.Use(observeMiddleware(deps.Metrics, logger))

	// Health check
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	if deps.Metrics != nil {
		router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.Use(languageMiddleware(deps.Languages), authMiddleware(deps.Tokens, logger))

	if deps.Stats != nil {
		v1.HandleFunc("/stats", NewStatsHandler(deps.Stats, logger).GetStats).Methods(http.MethodGet)
	}
	v1.HandleFunc("/i18n/languages", h.GetLanguages).Methods(http.MethodGet)
	v1.HandleFunc("/i18n/translations/{lang}", h.GetTranslations).Methods(http.MethodGet)
	v1.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	v1.HandleFunc("/search/suggestions", h.Suggest).Methods(http.MethodGet)

	pages := v1.PathPrefix("/pages").Subrouter()
	pages.HandleFunc("", h.ListPages).Methods(http.MethodGet)
	pages.HandleFunc("", h.CreatePage).Methods(http.MethodPost)
	pages.HandleFunc("/hierarchy", h.PageHierarchy).Methods(http.MethodGet)
	pages.HandleFunc("/id/{id:[0-9]+}", h.GetPage).Methods(http.MethodGet)
	pages.HandleFunc("/{id:[0-9]+}", h.UpdatePage).Methods(http.MethodPut)
	pages.HandleFunc("/{id:[0-9]+}", h.DeletePage).Methods(http.MethodDelete)
	pages.HandleFunc("/{slug}", h.GetPageBySlug).Methods(http.MethodGet)

	events := v1.PathPrefix("/events").Subrouter()
	events.HandleFunc("", h.ListEvents).Methods(http.MethodGet)
	events.HandleFunc("", h.CreateEvent).Methods(http.MethodPost)
	events.HandleFunc("/upcoming", h.UpcomingEvents).Methods(http.MethodGet)
	events.HandleFunc("/categories", h.EventCategories).Methods(http.MethodGet)
	events.HandleFunc("/by-date/{date}", h.EventsByDate).Methods(http.MethodGet)
	events.HandleFunc("/{id:[0-9]+}", h.GetEvent).Methods(http.MethodGet)
	events.HandleFunc("/{id:[0-9]+}", h.UpdateEvent).Methods(http.MethodPut)
	events.HandleFunc("/{id:[0-9]+}", h.DeleteEvent).Methods(http.MethodDelete)

	news := v1.PathPrefix("/news").Subrouter()
	news.HandleFunc("", h.ListNews).Methods(http.MethodGet)
	news.HandleFunc("", h.CreateNews).Methods(http.MethodPost)
	news.HandleFunc("/latest", h.LatestNews).Methods(http.MethodGet)
	news.HandleFunc("/categories", h.NewsCategories).Methods(http.MethodGet)
	news.HandleFunc("/slug/{slug}", h.GetNewsBySlug).Methods(http.MethodGet)
	news.HandleFunc("/{id:[0-9]+}", h.GetNews).Methods(http.MethodGet)
	news.HandleFunc("/{id:[0-9]+}", h.UpdateNews).Methods(http.MethodPut)
	news.HandleFunc("/{id:[0-9]+}", h.DeleteNews).Methods(http.MethodDelete)

	business := v1.PathPrefix("/business").Subrouter()
	business.HandleFunc("", h.ListBusinesses).Methods(http.MethodGet)
	business.HandleFunc("", h.CreateBusiness).Methods(http.MethodPost)
	business.HandleFunc("/search", h.SearchBusinesses).Methods(http.MethodGet)
	business.HandleFunc("/categories", h.BusinessCategories).Methods(http.MethodGet)
	business.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	business.HandleFunc("/categories/{id:[0-9]+}", h.UpdateCategory).Methods(http.MethodPut)
	business.HandleFunc("/categories/{id:[0-9]+}", h.DeleteCategory).Methods(http.MethodDelete)
	business.HandleFunc("/{id:[0-9]+}", h.GetBusiness).Methods(http.MethodGet)
	business.HandleFunc("/{id:[0-9]+}", h.UpdateBusiness).Methods(http.MethodPut)
	business.HandleFunc("/{id:[0-9]+}", h.DeleteBusiness).Methods(http.MethodDelete)
	business.HandleFunc("/{id:[0-9]+}/verify", h.VerifyBusiness).Methods(http.MethodPost)

	locations := v1.PathPrefix("/locations").Subrouter()
	locations.HandleFunc("/districts", h.ListDistricts).Methods(http.MethodGet)
	locations.HandleFunc("/districts", h.CreateDistrict).Methods(http.MethodPost)
	locations.HandleFunc("/districts/{id:[0-9]+}", h.UpdateDistrict).Methods(http.MethodPut)
	locations.HandleFunc("/districts/{id:[0-9]+}", h.DeleteDistrict).Methods(http.MethodDelete)
	locations.HandleFunc("/districts/{slug}", h.GetDistrict).Methods(http.MethodGet)
	locations.HandleFunc("/pois", h.ListPOIs).Methods(http.MethodGet)
	locations.HandleFunc("/pois", h.CreatePOI).Methods(http.MethodPost)
	locations.HandleFunc("/pois/categories", h.POICategories).Methods(http.MethodGet)
	locations.HandleFunc("/pois/{id:[0-9]+}", h.GetPOI).Methods(http.MethodGet)
	locations.HandleFunc("/pois/{id:[0-9]+}", h.UpdatePOI).Methods(http.MethodPut)
	locations.HandleFunc("/pois/{id:[0-9]+}", h.DeletePOI).Methods(http.MethodDelete)
	locations.HandleFunc("/accommodations", h.ListAccommodations).Methods(http.MethodGet)
	locations.HandleFunc("/accommodations", h.CreateAccommodation).Methods(http.MethodPost)
	locations.HandleFunc("/accommodations/types", h.AccommodationTypes).Methods(http.MethodGet)
	locations.HandleFunc("/accommodations/{id:[0-9]+}", h.GetAccommodation).Methods(http.MethodGet)
	locations.HandleFunc("/accommodations/{id:[0-9]+}", h.UpdateAccommodation).Methods(http.MethodPut)
	locations.HandleFunc("/accommodations/{id:[0-9]+}", h.DeleteAccommodation).Methods(http.MethodDelete)

	return router
}
