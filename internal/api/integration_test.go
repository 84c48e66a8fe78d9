package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/cache"
	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/database"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/service"
	"github.com/alexivanou/cityportal-api/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dbCounter atomic.Int64

type stack struct {
	handler http.Handler
	tokens  *auth.TokenParser
}

func setupIntegrationStack(t *testing.T) stack {
	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: fmt.Sprintf("api_test_%d", dbCounter.Add(1)),
	}
	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, cfg, "../../migrations"))
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	langs := []string{"de", "en"}
	resolver := i18n.NewResolver(langs, "de")
	collector := metrics.NewCollector("cityportal_test")
	aside := cache.NewAside(cache.NewMemoryProvider(), logger, collector, cache.DefaultBreakerSettings())

	repos := repository.NewRepositories(db, repository.Options{Languages: langs, MissingTranslations: config.MissingInclude})
	svc := service.NewService(service.Deps{
		Repos:     repos,
		Cache:     aside,
		Languages: resolver,
		Metrics:   collector,
		Logger:    logger,
	})
	tokens := auth.NewTokenParser("integration-secret")

	router := NewRouter(RouterDeps{
		Handler:   NewHandler(svc, logger),
		Stats:     stats.NewCollector(db, cfg),
		Languages: resolver,
		Tokens:    tokens,
		Metrics:   collector,
		Logger:    logger,
	})
	return stack{handler: router, tokens: tokens}
}

func (s stack) do(t *testing.T, method, url, body string, principal *auth.Principal) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if principal != nil {
		token, err := s.tokens.Issue(*principal, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

var editor = &auth.Principal{ID: 2, Role: auth.RoleEditor}

func TestAPI_Integration_PageLifecycle(t *testing.T) {
	s := setupIntegrationStack(t)

	rr := s.do(t, http.MethodPost, "/api/v1/pages",
		`{"status":"published","translations":{"de":{"title":"Über uns","description":"Wer wir sind"},"en":{"title":"About us"}}}`, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/v1/pages",
		`{"status":"published","translations":{"de":{"title":"Über uns","description":"Wer wir sind"},"en":{"title":"About us"}}}`, editor)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		Data model.Page `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "uber-uns", created.Data.Slug)

	rr = s.do(t, http.MethodGet, "/api/v1/pages/uber-uns?lang=en", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "en", rr.Header().Get("Content-Language"))
	var page struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, "About us", page.Data["title"])
	assert.Equal(t, false, page.Data["translationMissing"])

	rr = s.do(t, http.MethodGet, "/api/v1/pages", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list model.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Über uns", list.Data[0]["title"])

	id := created.Data.ID
	rr = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/pages/%d", id), `{"translations":{"en":{"title":"About"}}}`, editor)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/v1/pages/uber-uns?lang=en", "", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, "About", page.Data["title"], "slug cache invalidated by update")

	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/pages/%d", id), "", editor)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/v1/pages/uber-uns", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Integration_SearchAndLanguages(t *testing.T) {
	s := setupIntegrationStack(t)

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"slug":"museum-%d","status":"published","translations":{"de":{"title":"Museum %d"}}}`, i, i)
		rr := s.do(t, http.MethodPost, "/api/v1/pages", body, editor)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	rr := s.do(t, http.MethodGet, "/api/v1/search?q=museum", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Query string                      `json:"query"`
		Data  map[string][]map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Data["pages"], 3)
	assert.Empty(t, resp.Data["events"])

	rr = s.do(t, http.MethodGet, "/api/v1/search?q=m", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/v1/search/suggestions?q=Mus", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var suggest model.SuggestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggest))
	assert.Len(t, suggest.Data, 3)

	rr = s.do(t, http.MethodGet, "/api/v1/i18n/languages", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var langs struct {
		Data []i18n.Language `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &langs))
	require.Len(t, langs.Data, 2)
	assert.True(t, langs.Data[0].IsDefault)

	rr = s.do(t, http.MethodGet, "/api/v1/i18n/translations/en", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var ui model.UITranslationsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ui))
	assert.Equal(t, "en", ui.Language)
	assert.Equal(t, "Search", ui.Data["common"]["search"])
	assert.Equal(t, "Imprint", ui.Data["footer"]["impressum"])

	rr = s.do(t, http.MethodGet, "/api/v1/i18n/translations/DE", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ui))
	assert.Equal(t, "de", ui.Language)
	assert.Equal(t, "Suchen", ui.Data["common"]["search"])

	rr = s.do(t, http.MethodGet, "/api/v1/i18n/translations/ja", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Integration_BusinessModeration(t *testing.T) {
	s := setupIntegrationStack(t)
	admin := &auth.Principal{ID: 1, Role: auth.RoleAdmin}
	owner := &auth.Principal{ID: 5, Role: auth.RoleBusiness}

	rr := s.do(t, http.MethodPost, "/api/v1/business/categories", `{"translations":{"de":{"name":"Cafés"}}}`, admin)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var cat struct {
		Data model.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cat))

	body := fmt.Sprintf(`{"categoryId":%d,"address":"Leopoldstr. 1","postalCode":"80802","translations":{"de":{"name":"Café Leo"}}}`, cat.Data.ID)
	rr = s.do(t, http.MethodPost, "/api/v1/business", body, owner)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var b struct {
		Data model.Business `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	assert.Equal(t, model.StatusPending, b.Data.Status)

	rr = s.do(t, http.MethodGet, "/api/v1/business", "", nil)
	var list model.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Data, "pending listings are hidden")

	rr = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/business/%d/verify", b.Data.ID), "", owner)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/business/%d/verify", b.Data.ID), "", admin)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/v1/business", "", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Café Leo", list.Data[0]["name"])
}

func TestAPI_Integration_StatsAndMetrics(t *testing.T) {
	s := setupIntegrationStack(t)

	rr := s.do(t, http.MethodGet, "/api/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var st stats.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
	assert.Len(t, st.Content.Kinds, 8)

	rr = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cityportal_test_http_requests_total")
}
