package http

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ScopeHeader names the storage scope a request reads and writes. It plays
// the part of a browser origin: every scope has its own cart, wishlist and
// session.
const ScopeHeader = "X-Storage-Scope"

type ContextKey string

const ScopeCtxKey = ContextKey("storage_scope")

// Scopes become part of storage keys, so the key separator is not allowed.
var scopePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

func ScopeFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ScopeCtxKey).(string); ok {
		return v
	}
	return ""
}

func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, ScopeCtxKey, scope)
}

// RequireScope rejects requests without a usable X-Storage-Scope header.
func RequireScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := r.Header.Get(ScopeHeader)
		if scope == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: ScopeHeader + " header is required"})
			return
		}
		if !scopePattern.MatchString(scope) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: ScopeHeader + " header is malformed"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
	})
}

func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.With(
				"method", r.Method,
				"path", r.URL.Path,
				"status", statusOf(ww),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String(),
				"request_id", middleware.GetReqID(r.Context()),
			).Info("HTTP request handled")
		})
	}
}

// Metrics labels latency with the matched route pattern, not the raw path.
func Metrics(m *metrics.MetricsManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			m.ObserveHTTP(route, r.Method, strconv.Itoa(statusOf(ww)), time.Since(start))
		})
	}
}

func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With", ScopeHeader},
		MaxAge:         300,
	}).Handler
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
