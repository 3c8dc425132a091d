// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrument_CountsByStatus(t *testing.T) {
	ok := RequestsTotal.WithLabelValues("/instrument-test", "GET", "200")
	notAllowed := RequestsTotal.WithLabelValues("/instrument-test", "other", "405")
	okBefore := testutil.ToFloat64(ok)
	notAllowedBefore := testutil.ToFloat64(notAllowed)

	handler := Instrument("/instrument-test", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("ok"))
	})

	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/instrument-test", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/instrument-test", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest("DELETE", "/instrument-test", nil))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok), "implicit 200 should be counted")
	assert.Equal(t, notAllowedBefore+1, testutil.ToFloat64(notAllowed))
}

func TestInstrument_UnknownMethodsShareOneSeries(t *testing.T) {
	handler := Instrument("/method-fold", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	before := testutil.CollectAndCount(RequestsTotal)
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/method-fold", nil)
		req.Method = "X" + strconv.Itoa(i)
		handler(httptest.NewRecorder(), req)
	}
	after := testutil.CollectAndCount(RequestsTotal)

	assert.Equal(t, before+1, after, "unknown methods should collapse into a single series")
	assert.Equal(t, 50.0, testutil.ToFloat64(RequestsTotal.WithLabelValues("/method-fold", "other", "405")))
}

func TestMethodLabel(t *testing.T) {
	tests := map[string]string{
		"GET":     "GET",
		"POST":    "POST",
		"OPTIONS": "OPTIONS",
		"HEAD":    "HEAD",
		"DELETE":  "other",
		"get":     "other",
		"BREW":    "other",
	}
	for method, want := range tests {
		assert.Equal(t, want, methodLabel(method), method)
	}
}

func TestInstrument_PreservesResponse(t *testing.T) {
	handler := Instrument("/preserve", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/preserve", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "yes", w.Header().Get("X-Test"))
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestHandler_ExposesMetrics(t *testing.T) {
	ResponsesSaved.Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "survey_responses_saved_total"))
}
