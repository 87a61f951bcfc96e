// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentHandlerLabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/habits/{id}/log", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := InstrumentHandler(mux)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("PATCH", "/api/habits/{id}/log", "404"))

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest("PATCH", "/api/habits/"+id+"/log", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("PATCH", "/api/habits/{id}/log", "404"))
	if after-before != 2 {
		t.Errorf("expected 2 requests under one route label, got %v", after-before)
	}
}

func TestRecordLogAppend(t *testing.T) {
	appended := testutil.ToFloat64(logAppends.WithLabelValues(AppendAppended))
	duplicate := testutil.ToFloat64(logAppends.WithLabelValues(AppendDuplicate))

	RecordLogAppend(true)
	RecordLogAppend(false)
	RecordLogAppend(false)

	if got := testutil.ToFloat64(logAppends.WithLabelValues(AppendAppended)) - appended; got != 1 {
		t.Errorf("expected 1 appended, got %v", got)
	}
	if got := testutil.ToFloat64(logAppends.WithLabelValues(AppendDuplicate)) - duplicate; got != 2 {
		t.Errorf("expected 2 duplicate, got %v", got)
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordHabitCreated()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "habitlog_habits_created_total") {
		t.Error("expected habitlog_habits_created_total in metrics output")
	}
}
