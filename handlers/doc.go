// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey API.

# Handler Types

SurveyHandler serves both endpoints. It is created with a store and config:

	surveyHandler := handlers.NewSurveyHandler(store, cfg)

The store is any store.Store: SQL-backed in production, in-memory in tests.

# Endpoints

Each handler does its own method dispatch so every reply keeps the API's
JSON shape:

	/save-response  POST    → {"id": 1, "message": "Response saved successfully"}
	/get-stats      GET     → {"totalResponses": ..., "profileStats": [...], "questionStats": {...}}
	either          OPTIONS → 200, empty body, CORS preflight headers
	either          other   → 405 {"error": "Method not allowed"}

# Errors

	malformed JSON body    → 400 {"error": "Invalid JSON"}
	body over the limit    → 413 {"error": "Request body too large"}
	store rejected a write → 422 {"error": "Write rejected"}
	store unavailable      → 500 {"error": "Internal server error"}

Nothing is retried. The client may resubmit.
*/
package handlers
