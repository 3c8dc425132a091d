// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("/get-stats", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an id, taken from X-Request-ID when the
caller sends one and generated otherwise. The id is echoed in the response
header and available to handlers through RequestID(ctx).

# Timeouts

	middleware.WithTimeout(cfg.RequestTimeout, handler)

The request context is cancelled when the deadline passes, which aborts any
storage call still in flight.

# CORS

The survey endpoints are public and readable from any origin:

	middleware.AllowAnyOrigin(w)           // every non-OPTIONS response
	middleware.Preflight(w, http.MethodPost) // OPTIONS: 200, empty body

Preflight advertises the given methods plus OPTIONS, the Content-Type
header, and a max age of 86400 seconds.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")

ErrorResponse bodies have the shape {"error": "..."}.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
