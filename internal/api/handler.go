package api

import (
	"net/http"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/service"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler handles HTTP requests
type Handler struct {
	pages     service.PageAPI
	events    service.EventAPI
	news      service.NewsAPI
	business  service.BusinessAPI
	locations service.LocationAPI
	search    service.SearchAPI
	i18n      service.I18nAPI
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		pages:     svc.Pages,
		events:    svc.Events,
		news:      svc.News,
		business:  svc.Business,
		locations: svc.Locations,
		search:    svc.Search,
		i18n:      svc.I18n,
		logger:    logger,
	}
}

// lang returns the language chosen by the language middleware.
func (h *Handler) lang(r *http.Request) string {
	if l := i18n.FromContext(r.Context()); l != "" {
		return l
	}
	if h.i18n != nil {
		return h.i18n.Default()
	}
	return ""
}

func (h *Handler) principal(r *http.Request) *auth.Principal {
	return auth.FromContext(r.Context())
}

func (h *Handler) listQuery(r *http.Request) (model.ListQuery, error) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return model.ListQuery{}, err
	}
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		return model.ListQuery{}, err
	}
	return model.ListQuery{
		Page:     page,
		Limit:    limit,
		Language: h.lang(r),
		Status:   r.URL.Query().Get("status"),
	}, nil
}

func (h *Handler) ok(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, body, h.logger)
}

func (h *Handler) data(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, model.DataResponse{Data: data}, h.logger)
}

func (h *Handler) created(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: message, Data: data}, h.logger)
}

func (h *Handler) message(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: message, Data: data}, h.logger)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err, h.logger)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// GetLanguages handles GET /api/v1/i18n/languages
func (h *Handler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	h.data(w, h.i18n.Languages())
}

// GetTranslations handles GET /api/v1/i18n/translations/{lang}
func (h *Handler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.i18n.Translations(mux.Vars(r)["lang"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Search handles GET /api/v1/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	resp, err := h.search.Search(r.Context(), model.SearchRequest{
		Query: q.Get("q"),
		Type:  q.Get("type"),
		Lang:  h.lang(r),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

// Suggest handles GET /api/v1/search/suggestions
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.search.Suggest(r.Context(), model.SuggestRequest{
		Query: r.URL.Query().Get("q"),
		Lang:  h.lang(r),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}
