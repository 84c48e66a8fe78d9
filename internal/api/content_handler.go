package api

import (
	"net/http"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/gorilla/mux"
)

// ListPages handles GET /api/v1/pages
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	parent, err := queryInt64Ptr(r, "parentId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := repository.PageFilter{ParentID: parent, RootOnly: r.URL.Query().Get("root") == "true"}

	resp, err := h.pages.List(r.Context(), filter, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

// PageHierarchy handles GET /api/v1/pages/hierarchy
func (h *Handler) PageHierarchy(w http.ResponseWriter, r *http.Request) {
	tree, err := h.pages.Hierarchy(r.Context(), h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, tree)
}

// GetPageBySlug handles GET /api/v1/pages/{slug}
func (h *Handler) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.BySlug(r.Context(), mux.Vars(r)["slug"], h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, page)
}

// GetPage handles GET /api/v1/pages/id/{id}
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.pages.Get(r.Context(), id, h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, page)
}

func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req model.PageRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.pages.Create(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "Page created successfully", page)
}

func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.PageUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.pages.Update(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Page updated successfully", page)
}

func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.pages.Delete(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Page deleted successfully", nil)
}

func parseDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.Validation("invalid %s parameter", name)
	}
	return &t, nil
}

// ListEvents handles GET /api/v1/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	from, err := parseDate(r, "startDate")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	to, err := parseDate(r, "endDate")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	featured, err := queryBoolPtr(r, "featured")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := repository.EventFilter{Category: queryStringPtr(r, "category"), From: from, To: to, Featured: featured}

	resp, err := h.events.List(r.Context(), filter, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

// UpcomingEvents handles GET /api/v1/events/upcoming
func (h *Handler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	events, err := h.events.Upcoming(r.Context(), h.lang(r), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, events)
}

// EventsByDate handles GET /api/v1/events/by-date/{date}
func (h *Handler) EventsByDate(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ByDate(r.Context(), mux.Vars(r)["date"], h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, events)
}

func (h *Handler) EventCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.events.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, cats)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	event, err := h.events.Get(r.Context(), id, h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, event)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.EventRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	event, err := h.events.Create(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "Event created successfully", event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.EventUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	event, err := h.events.Update(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Event updated successfully", event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.events.Delete(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Event deleted successfully", nil)
}

// ListNews handles GET /api/v1/news
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	featured, err := queryBoolPtr(r, "featured")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := repository.NewsFilter{Category: queryStringPtr(r, "category"), Featured: featured}

	resp, err := h.news.List(r.Context(), filter, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

// LatestNews handles GET /api/v1/news/latest
func (h *Handler) LatestNews(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	news, err := h.news.Latest(r.Context(), h.lang(r), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, news)
}

func (h *Handler) NewsCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.news.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, cats)
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	news, err := h.news.Get(r.Context(), id, h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, news)
}

func (h *Handler) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	news, err := h.news.BySlug(r.Context(), mux.Vars(r)["slug"], h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, news)
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req model.NewsRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	news, err := h.news.Create(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "News created successfully", news)
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.NewsUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	news, err := h.news.Update(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "News updated successfully", news)
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.news.Delete(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "News deleted successfully", nil)
}
