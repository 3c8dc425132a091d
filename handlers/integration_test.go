// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/survey-pulse/models"
	"github.com/danielhkuo/survey-pulse/testutil"
)

// TestFullSurveyWorkflow runs the documented scenario against a real database:
// 1. Stats on an empty table
// 2. Save one response with two answers
// 3. Stats reflect it, unanswered questions counted as ""
// 4. Stats are stable across repeated reads
func TestFullSurveyWorkflow(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewSurveyHandler(s, testutil.GetTestConfig())

	// Step 1: Empty stats
	w := httptest.NewRecorder()
	handler.GetStats(w, httptest.NewRequest("GET", "/get-stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Get stats failed: %d - %s", w.Code, w.Body.String())
	}
	var empty models.StatsReport
	json.NewDecoder(w.Body).Decode(&empty)
	if empty.TotalResponses != 0 {
		t.Fatalf("Step 1 - Expected 0 responses, got %d", empty.TotalResponses)
	}

	// Step 2: Save
	saveReq := models.SaveResponseRequest{
		ProfileType: "buyer",
		Answers:     map[string]string{"1": "yes", "2": "no"},
	}
	w = httptest.NewRecorder()
	handler.SaveResponse(w, testutil.MakeRequest("POST", "/save-response", saveReq, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Save failed: %d - %s", w.Code, w.Body.String())
	}
	var saveResp models.SaveResponseResponse
	json.NewDecoder(w.Body).Decode(&saveResp)
	if saveResp.ID != 1 {
		t.Errorf("Step 2 - Expected id 1, got %d", saveResp.ID)
	}
	if saveResp.Message != "Response saved successfully" {
		t.Errorf("Step 2 - Unexpected message %q", saveResp.Message)
	}

	// Step 3: Stats
	w = httptest.NewRecorder()
	handler.GetStats(w, httptest.NewRequest("GET", "/get-stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Get stats failed: %d - %s", w.Code, w.Body.String())
	}
	first := w.Body.String()

	expected := `{
		"totalResponses": 1,
		"profileStats": [{"profile": "buyer", "count": 1}],
		"questionStats": {
			"q1": [{"answer": "yes", "count": 1}],
			"q2": [{"answer": "no", "count": 1}],
			"q3": [{"answer": "", "count": 1}],
			"q4": [{"answer": "", "count": 1}],
			"q5": [{"answer": "", "count": 1}]
		}
	}`
	var got, want any
	json.Unmarshal([]byte(first), &got)
	json.Unmarshal([]byte(expected), &want)
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(want)
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("Step 3 - Stats mismatch:\n got: %s\nwant: %s", gotJSON, wantJSON)
	}

	// Step 4: Repeat read
	w = httptest.NewRecorder()
	handler.GetStats(w, httptest.NewRequest("GET", "/get-stats", nil))
	if w.Body.String() != first {
		t.Errorf("Step 4 - Repeated read differs:\n%s\n%s", first, w.Body.String())
	}
}

// TestRejectedRequestsLeaveStorageUnchanged checks that 405 and malformed
// bodies never write a row
func TestRejectedRequestsLeaveStorageUnchanged(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewSurveyHandler(s, testutil.GetTestConfig())
	testutil.SaveTestResponse(t, s, "existing", "a")

	requests := []*http.Request{
		httptest.NewRequest("DELETE", "/save-response", nil),
		httptest.NewRequest("PUT", "/save-response", strings.NewReader(`{"profileType":"x"}`)),
		httptest.NewRequest("OPTIONS", "/save-response", nil),
		httptest.NewRequest("POST", "/save-response", strings.NewReader(`{"profileType":`)),
	}
	for _, req := range requests {
		w := httptest.NewRecorder()
		handler.SaveResponse(w, req)
		if w.Code == http.StatusOK && req.Method != http.MethodOptions {
			t.Errorf("%s unexpectedly succeeded", req.Method)
		}
	}

	count, err := s.CountAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected storage to be unchanged (1 row), got %d", count)
	}
}

// TestSaveEmptyEqualsExplicitDefaults compares the stored rows of {} and
// the fully spelled-out empty request
func TestSaveEmptyEqualsExplicitDefaults(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewSurveyHandler(s, testutil.GetTestConfig())

	bodies := []string{`{}`, `{"profileType":"","answers":{}}`}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		handler.SaveResponse(w, httptest.NewRequest("POST", "/save-response", strings.NewReader(body)))
		if w.Code != http.StatusOK {
			t.Fatalf("Save %s failed: %d - %s", body, w.Code, w.Body.String())
		}
	}

	groups, err := s.CountGroupedBy(context.Background(), models.ColumnProfileType)
	if err != nil {
		t.Fatalf("Failed to group: %v", err)
	}
	if len(groups) != 1 || groups[0].Value != "" || groups[0].Count != 2 {
		t.Errorf("Expected both rows under empty profile, got %+v", groups)
	}

	for n := 1; n <= models.QuestionCount; n++ {
		col, _ := models.QuestionColumn(n)
		groups, err := s.CountGroupedBy(context.Background(), col)
		if err != nil {
			t.Fatalf("Failed to group %s: %v", col, err)
		}
		if len(groups) != 1 || groups[0].Value != "" || groups[0].Count != 2 {
			t.Errorf("%s: expected both rows empty, got %+v", col, groups)
		}
	}
}
