// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/danielhkuo/survey-pulse/models"
	"github.com/danielhkuo/survey-pulse/store"
)

var (
	ErrMalformedRequest  = errors.New("malformed request")
	ErrUnsupportedMethod = errors.New("method not allowed")
)

// DecodeSaveRequest parses a save-response body.
// An empty body or JSON null is treated as {}. Anything that is not a single
// JSON object with string values fails with ErrMalformedRequest.
func DecodeSaveRequest(r io.Reader) (models.SaveResponseRequest, error) {
	var req models.SaveResponseRequest

	body, err := io.ReadAll(r)
	if err != nil {
		return req, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		return models.SaveResponseRequest{}, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if dec.More() {
		return models.SaveResponseRequest{}, fmt.Errorf("%w: trailing data after JSON body", ErrMalformedRequest)
	}

	return req, nil
}

// ResponseWriter persists survey submissions.
type ResponseWriter struct {
	store store.Writer
}

func NewResponseWriter(w store.Writer) *ResponseWriter {
	return &ResponseWriter{store: w}
}

// Save stores one response and returns its id. Storage errors are returned
// as-is so callers can match ErrStorageUnavailable or ErrWriteRejected.
func (w *ResponseWriter) Save(ctx context.Context, req models.SaveResponseRequest) (models.SaveResponseResponse, error) {
	id, err := w.store.Insert(ctx, req.ToSubmission())
	if err != nil {
		return models.SaveResponseResponse{}, err
	}

	return models.SaveResponseResponse{ID: id, Message: models.SavedMessage}, nil
}

// StatsAggregator computes the totals and grouped counts served by the stats endpoint.
type StatsAggregator struct {
	store store.Reader
}

func NewStatsAggregator(r store.Reader) *StatsAggregator {
	return &StatsAggregator{store: r}
}

// ComputeStats runs one total count and six grouped counts.
//
// When the store implements store.Snapshotter all seven reads share one
// snapshot. Otherwise each read sees whatever was committed when it ran, so
// a response saved mid-call can show up in the total but not yet in every
// breakdown.
func (a *StatsAggregator) ComputeStats(ctx context.Context) (models.StatsReport, error) {
	var report models.StatsReport
	var err error

	if snap, ok := a.store.(store.Snapshotter); ok {
		err = snap.Snapshot(ctx, func(r store.Reader) error {
			var buildErr error
			report, buildErr = buildReport(ctx, r)
			return buildErr
		})
	} else {
		report, err = buildReport(ctx, a.store)
	}
	if err != nil {
		if !errors.Is(err, store.ErrStorageUnavailable) {
			err = fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
		}
		return models.StatsReport{}, err
	}

	return report, nil
}

func buildReport(ctx context.Context, r store.Reader) (models.StatsReport, error) {
	total, err := r.CountAll(ctx)
	if err != nil {
		return models.StatsReport{}, err
	}

	profiles, err := r.CountGroupedBy(ctx, models.ColumnProfileType)
	if err != nil {
		return models.StatsReport{}, err
	}

	report := models.StatsReport{
		TotalResponses: total,
		ProfileStats:   make([]models.ProfileCount, 0, len(profiles)),
		QuestionStats:  make(map[string][]models.AnswerCount, models.QuestionCount),
	}
	for _, g := range profiles {
		report.ProfileStats = append(report.ProfileStats, models.ProfileCount{Profile: g.Value, Count: g.Count})
	}

	for n := 1; n <= models.QuestionCount; n++ {
		col, err := models.QuestionColumn(n)
		if err != nil {
			return models.StatsReport{}, err
		}
		groups, err := r.CountGroupedBy(ctx, col)
		if err != nil {
			return models.StatsReport{}, err
		}

		answers := make([]models.AnswerCount, 0, len(groups))
		for _, g := range groups {
			answers = append(answers, models.AnswerCount{Answer: g.Value, Count: g.Count})
		}
		report.QuestionStats[models.QuestionKey(n)] = answers
	}

	return report, nil
}
