// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/survey-pulse/cliparse"
	"github.com/danielhkuo/survey-pulse/metrics"
	"github.com/danielhkuo/survey-pulse/middleware"
	"github.com/danielhkuo/survey-pulse/store"
	"github.com/danielhkuo/survey-pulse/survey"
)

const defaultMaxBodyBytes = 64 * 1024

type SurveyHandler struct {
	writer *survey.ResponseWriter
	stats  *survey.StatsAggregator
	cfg    cliparse.Config
}

func NewSurveyHandler(s store.Store, cfg cliparse.Config) *SurveyHandler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &SurveyHandler{
		writer: survey.NewResponseWriter(s),
		stats:  survey.NewStatsAggregator(s),
		cfg:    cfg,
	}
}

// SaveResponse handles /save-response
// POST stores one response; OPTIONS answers the preflight
func (h *SurveyHandler) SaveResponse(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		middleware.Preflight(w, http.MethodPost)
		return
	case http.MethodPost:
	default:
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	middleware.AllowAnyOrigin(w)

	// Parse request
	body := http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	defer body.Close()
	req, err := survey.DecodeSaveRequest(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.writer.Save(r.Context(), req)
	if err != nil {
		storageError(w, r, "save", err)
		return
	}
	metrics.ResponsesSaved.Inc()

	slog.Info("response saved",
		"request_id", middleware.RequestID(r.Context()),
		"id", resp.ID,
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetStats handles /get-stats
// GET returns totals and grouped counts; OPTIONS answers the preflight
func (h *SurveyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		middleware.Preflight(w, http.MethodGet)
		return
	case http.MethodGet:
	default:
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	middleware.AllowAnyOrigin(w)

	report, err := h.stats.ComputeStats(r.Context())
	if err != nil {
		storageError(w, r, "stats", err)
		return
	}

	slog.Debug("stats computed",
		"request_id", middleware.RequestID(r.Context()),
		"total_responses", humanize.Comma(int64(report.TotalResponses)),
		"profiles", len(report.ProfileStats),
	)

	middleware.JSONResponse(w, http.StatusOK, report)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	slog.Warn("rejected request",
		"error", survey.ErrUnsupportedMethod,
		"method", r.Method,
		"path", r.URL.Path,
	)
	middleware.AllowAnyOrigin(w)
	w.Header().Set("Allow", allowed+", "+http.MethodOptions)
	middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// storageError maps store failures to a status code. Details stay in the log.
func storageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	requestID := middleware.RequestID(r.Context())

	if errors.Is(err, store.ErrWriteRejected) {
		metrics.StorageErrors.WithLabelValues(op, "rejected").Inc()
		slog.Warn("storage rejected write", "request_id", requestID, "operation", op, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Write rejected")
		return
	}

	metrics.StorageErrors.WithLabelValues(op, "unavailable").Inc()
	slog.Error("storage failure", "request_id", requestID, "operation", op, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}
