// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

	GET  /health        - Liveness check
	GET  /metrics       - Prometheus metrics
	     /save-response - Store a response (POST, OPTIONS)
	     /get-stats     - Aggregate counts (GET, OPTIONS)
	GET  /              - Banner

The survey routes are registered without a method so that the handlers can
answer OPTIONS and return the 405 body themselves.

# Middleware

Survey routes are wrapped, outermost first, in request logging, Prometheus
instrumentation and the per-request timeout from cfg.RequestTimeout.
*/
package router
