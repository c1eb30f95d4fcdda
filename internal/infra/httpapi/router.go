// Package httpapi exposes lookups, readiness and metrics over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/domain/phone"
	"exam_results_bot/internal/domain/result"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 60 * time.Second

// ResultLookup is the part of app.LookupService the HTTP surface needs.
type ResultLookup interface {
	Lookup(ctx context.Context, rawPhone string, opts ...app.LookupOption) (*result.LookupSummary, error)
	ProbeSources(ctx context.Context) []app.SourceStatus
}

// NewRouter mounts the API. metrics may be nil to disable /metrics.
func NewRouter(lookups ResultLookup, metrics http.Handler, logger *logrus.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(logger), middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", readyHandler(lookups))
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/results/{phone}", resultsHandler(lookups, logger))
	})
	return r
}

func resultsHandler(lookups ResultLookup, logger *logrus.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts []app.LookupOption
		if stream := r.URL.Query().Get("stream"); stream != "" {
			opts = append(opts, app.WithStream(stream))
		}

		summary, err := lookups.Lookup(r.Context(), chi.URLParam(r, "phone"), opts...)
		switch {
		case err == nil:
			respondJSON(w, http.StatusOK, summary)
		case errors.Is(err, phone.ErrInvalidPhone):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, result.ErrUnknownStream):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			logger.WithError(err).WithField("request_id", middleware.GetReqID(r.Context())).Error("Lookup failed")
			respondError(w, http.StatusInternalServerError, "lookup failed")
		}
	}
}

func readyHandler(lookups ResultLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := lookups.ProbeSources(r.Context())
		status := http.StatusOK
		if !app.AllUp(statuses) {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, map[string]any{"sources": statuses})
	}
}

func requestLogger(logger *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.WithFields(logrus.Fields{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"route":       chi.RouteContext(r.Context()).RoutePattern(),
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			}).Debug("HTTP request served")
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
