package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const languageCookie = "language"

// languageMiddleware resolves the effective language (lang query param,
// Accept-Language, language cookie, default) and stores it in the context.
func languageMiddleware(resolver *i18n.Resolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookie string
			if c, err := r.Cookie(languageCookie); err == nil {
				cookie = c.Value
			}
			lang := resolver.Resolve(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), cookie)
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), lang)))
		})
	}
}

// authMiddleware attaches the principal of a bearer token. Requests without
// a token stay anonymous; an invalid token is rejected.
func authMiddleware(parser *auth.TokenParser, logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" || parser == nil {
				next.ServeHTTP(w, r)
				return
			}
			principal, err := parser.Parse(header)
			if err != nil {
				writeError(w, r, apperror.Unauthorized("invalid token"), logger)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// observeMiddleware records request metrics by route template and logs
// each request at debug level.
func observeMiddleware(m *metrics.Collector, logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			elapsed := time.Since(start)
			m.HTTPRequest(r.Method, route, rec.status, elapsed)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", rec.status),
				zap.Duration("duration", elapsed))
		})
	}
}
