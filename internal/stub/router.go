package stub

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dErrors "janseva/pkg/domain-errors"
	"janseva/pkg/platform/httputil"
)

type contextKey struct{}

var userIDKey contextKey

// userID returns the authenticated user set by the auth middleware. Routes
// behind the middleware always have one.
func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// NewRouter wires the portal API. Everything under /api except register and
// login requires a bearer token.
func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(h.countRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/me", h.handleMe)
			r.Get("/family", h.handleGetFamily)
			r.Post("/family", h.handleCreateFamily)
			r.Post("/upload-document", h.handleUploadDocument)
			r.Post("/check-eligibility", h.handleCheckEligibility)
			r.Get("/eligible-schemes", h.handleEligibleSchemes)
			r.Post("/apply-scheme/{schemeName}", h.handleApplyScheme)
			r.Get("/notifications", h.handleNotifications)
			r.Put("/notifications/{notificationID}/read", h.handleMarkNotificationRead)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// requireAuth verifies the bearer token and stashes the user on the request
// context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
			return
		}
		uid, err := h.tokens.Verify(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, uid)))
	})
}

func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		class := "2xx"
		switch {
		case ww.Status() >= 500:
			class = "5xx"
		case ww.Status() >= 400:
			class = "4xx"
		case ww.Status() >= 300:
			class = "3xx"
		}
		h.metrics.IncrementRequest(route, class)
	})
}
