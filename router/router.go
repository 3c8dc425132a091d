// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/survey-pulse/cliparse"
	"github.com/danielhkuo/survey-pulse/handlers"
	"github.com/danielhkuo/survey-pulse/metrics"
	"github.com/danielhkuo/survey-pulse/middleware"
	"github.com/danielhkuo/survey-pulse/store"
)

func NewRouter(s store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(s, cfg)

	// wrap applies timeout, metrics and logging, innermost first
	wrap := func(route string, h http.HandlerFunc) http.HandlerFunc {
		if cfg.RequestTimeout > 0 {
			h = middleware.WithTimeout(cfg.RequestTimeout, h)
		}
		return middleware.WithLogging(metrics.Instrument(route, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Survey endpoints accept any method; the handlers answer 405 themselves
	mux.HandleFunc("/save-response", wrap("/save-response", surveyHandler.SaveResponse))
	mux.HandleFunc("/get-stats", wrap("/get-stats", surveyHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-pulse API v1"))
	})

	return mux
}
