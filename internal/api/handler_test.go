package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPageService is a mock implementation of service.PageAPI
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) List(ctx context.Context, filter repository.PageFilter, q model.ListQuery) (*model.ListResponse, error) {
	args := m.Called(ctx, filter, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListResponse), args.Error(1)
}

func (m *MockPageService) Hierarchy(ctx context.Context, lang string) ([]model.View, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.View), args.Error(1)
}

func (m *MockPageService) BySlug(ctx context.Context, slug, lang string) (model.View, error) {
	args := m.Called(ctx, slug, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.View), args.Error(1)
}

func (m *MockPageService) Get(ctx context.Context, id int64, lang string) (model.View, error) {
	args := m.Called(ctx, id, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.View), args.Error(1)
}

func (m *MockPageService) Create(ctx context.Context, principal *auth.Principal, req model.PageRequest) (model.Page, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(model.Page), args.Error(1)
}

func (m *MockPageService) Update(ctx context.Context, principal *auth.Principal, id int64, req model.PageUpdate) (model.Page, error) {
	args := m.Called(ctx, principal, id, req)
	return args.Get(0).(model.Page), args.Error(1)
}

func (m *MockPageService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

// MockSearchService is a mock implementation of service.SearchAPI
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResponse), args.Error(1)
}

func (m *MockSearchService) Suggest(ctx context.Context, req model.SuggestRequest) (*model.SuggestResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SuggestResponse), args.Error(1)
}

const testSecret = "test-secret"

func newTestRouter(h *Handler) http.Handler {
	return NewRouter(RouterDeps{
		Handler:   h,
		Languages: i18n.NewResolver([]string{"de", "en"}, "de"),
		Tokens:    auth.NewTokenParser(testSecret),
		Logger:    zap.NewNop(),
	})
}

func bearer(t *testing.T, p auth.Principal) string {
	token, err := auth.NewTokenParser(testSecret).Issue(p, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorBody {
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHandler_ListPages(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		header         string
		mockSetup      func(*MockPageService)
		expectedStatus int
		expectedLang   string
	}{
		{
			name: "language from query wins",
			url:  "/api/v1/pages?lang=en&page=2&limit=5",
			mockSetup: func(ms *MockPageService) {
				ms.On("List", mock.Anything, repository.PageFilter{}, model.ListQuery{Page: 2, Limit: 5, Language: "en"}).
					Return(&model.ListResponse{Data: []model.View{{"id": 1}}, Pagination: model.Pagination{Page: 2, Limit: 5}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLang:   "en",
		},
		{
			name:   "unsupported header falls back to default",
			url:    "/api/v1/pages",
			header: "ja-JP",
			mockSetup: func(ms *MockPageService) {
				ms.On("List", mock.Anything, repository.PageFilter{}, model.ListQuery{Page: 1, Limit: 20, Language: "de"}).
					Return(&model.ListResponse{Data: []model.View{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLang:   "de",
		},
		{
			name:           "invalid page parameter",
			url:            "/api/v1/pages?page=abc",
			expectedStatus: http.StatusBadRequest,
			expectedLang:   "de",
		},
		{
			name: "service error is mapped",
			url:  "/api/v1/pages",
			mockSetup: func(ms *MockPageService) {
				ms.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperror.Upstream("database down"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedLang:   "de",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPages := new(MockPageService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockPages)
			}
			router := newTestRouter(&Handler{pages: mockPages, logger: zap.NewNop()})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedLang, rr.Header().Get("Content-Language"))
			mockPages.AssertExpectations(t)
		})
	}
}

func TestHandler_GetPageBySlug_NotFound(t *testing.T) {
	mockPages := new(MockPageService)
	mockPages.On("BySlug", mock.Anything, "missing", "de").Return(nil, apperror.NotFound("page missing not found"))

	rr := httptest.NewRecorder()
	newTestRouter(&Handler{pages: mockPages, logger: zap.NewNop()}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/pages/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, string(apperror.CodeNotFound), body.Code)
	assert.Equal(t, "page missing not found", body.Message)
}

func TestHandler_CreatePage(t *testing.T) {
	t.Run("principal from bearer token reaches the service", func(t *testing.T) {
		mockPages := new(MockPageService)
		mockPages.On("Create", mock.Anything, &auth.Principal{ID: 9, Role: auth.RoleEditor}, mock.MatchedBy(func(req model.PageRequest) bool {
			return req.Slug == "about" && *req.Translations["en"].Title == "About"
		})).Return(model.Page{ID: 1, Slug: "about"}, nil)

		body := `{"slug":"about","translations":{"en":{"title":"About"}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pages", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, auth.Principal{ID: 9, Role: auth.RoleEditor}))
		rr := httptest.NewRecorder()
		newTestRouter(&Handler{pages: mockPages, logger: zap.NewNop()}).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp struct {
			Message string     `json:"message"`
			Data    model.Page `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "about", resp.Data.Slug)
		mockPages.AssertExpectations(t)
	})

	t.Run("invalid token is rejected before the handler", func(t *testing.T) {
		mockPages := new(MockPageService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pages", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()
		newTestRouter(&Handler{pages: mockPages, logger: zap.NewNop()}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockPages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockPages := new(MockPageService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pages", strings.NewReader(`{"slug":`))
		rr := httptest.NewRecorder()
		newTestRouter(&Handler{pages: mockPages, logger: zap.NewNop()}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, string(apperror.CodeValidation), decodeError(t, rr).Code)
	})
}

func TestHandler_DeletePage_InvalidID(t *testing.T) {
	h := &Handler{pages: new(MockPageService), logger: zap.NewNop()}
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/pages/0", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "0"})
	rr := httptest.NewRecorder()
	h.DeletePage(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Search(t *testing.T) {
	mockSearch := new(MockSearchService)
	mockSearch.On("Search", mock.Anything, model.SearchRequest{Query: "museum", Type: "events", Lang: "en", Page: 1, Limit: 10}).
		Return(&model.SearchResponse{Query: "museum", Data: []model.View{{"title": "Museum night"}}, Pagination: model.Pagination{Page: 1, Limit: 10}}, nil)
	mockSearch.On("Suggest", mock.Anything, model.SuggestRequest{Query: "M", Lang: "de"}).
		Return(&model.SuggestResponse{Data: []string{}}, nil)

	router := newTestRouter(&Handler{search: mockSearch, logger: zap.NewNop()})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=museum&type=events&lang=en&limit=10", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Query string           `json:"query"`
		Data  []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "museum", resp.Query)
	require.Len(t, resp.Data, 1)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/search/suggestions?q=M", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[]}`, rr.Body.String())

	mockSearch.AssertExpectations(t)
}

func TestHandler_HealthCheck(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(&Handler{logger: zap.NewNop()}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}
