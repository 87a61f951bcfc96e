// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/habit-log/db"
	"github.com/danielhkuo/habit-log/models"
	"github.com/danielhkuo/habit-log/store"
	"github.com/danielhkuo/habit-log/testutil"
)

// TestFullHabitWorkflow tests the complete end-to-end workflow:
// 1. Create two habits
// 2. Log one on Sunday and Saturday, the other on Monday
// 3. Log again on the same day
// 4. Verify the week view for each habit
// 5. Roll into the next week and verify it starts empty
// 6. Verify the list keeps full history
func TestFullHabitWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// 2025-01-05 is a Sunday
	sunday := time.Date(2025, time.January, 5, 7, 30, 0, 0, time.UTC)
	clock := testutil.NewClock(sunday)
	handler := NewHabitHandler(store.New(db.NewCollection(conn), store.WithClock(clock.Now)))

	create := func(name string) models.Habit {
		t.Helper()
		body, _ := json.Marshal(models.CreateHabitRequest{Name: name})
		req := httptest.NewRequest("POST", "/api/habits", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.CreateHabit(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Create %q failed: %d - %s", name, w.Code, w.Body.String())
		}
		var habit models.Habit
		json.NewDecoder(w.Body).Decode(&habit)
		return habit
	}

	logToday := func(id string) models.Habit {
		t.Helper()
		req := httptest.NewRequest("PATCH", "/api/habits/"+id+"/log", nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.LogToday(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Log %s failed: %d - %s", id, w.Code, w.Body.String())
		}
		var habit models.Habit
		json.NewDecoder(w.Body).Decode(&habit)
		return habit
	}

	weekLogs := func(id string) []string {
		t.Helper()
		req := httptest.NewRequest("GET", "/api/habits/"+id+"/logs", nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.WeekLogs(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Week logs %s failed: %d - %s", id, w.Code, w.Body.String())
		}
		var logs []models.Date
		json.NewDecoder(w.Body).Decode(&logs)
		out := make([]string, len(logs))
		for i, d := range logs {
			out[i] = d.String()
		}
		return out
	}

	// Step 1
	run := create("Run")
	read := create("Read")
	t.Logf("Step 1 - Created habits %s and %s", run.ID, read.ID)

	// Step 2
	logToday(run.ID)
	clock.AddDays(1)
	logToday(read.ID)
	clock.AddDays(5)
	logToday(run.ID)

	// Step 3
	again := logToday(run.ID)
	if len(again.Log) != 2 {
		t.Fatalf("Step 3 - Expected 2 entries after repeat log, got %v", again.Log)
	}

	// Step 4
	if got := weekLogs(run.ID); len(got) != 2 || got[0] != "2025-01-05" || got[1] != "2025-01-11" {
		t.Errorf("Step 4 - Run week: expected [2025-01-05 2025-01-11], got %v", got)
	}
	if got := weekLogs(read.ID); len(got) != 1 || got[0] != "2025-01-06" {
		t.Errorf("Step 4 - Read week: expected [2025-01-06], got %v", got)
	}

	// Step 5
	clock.AddDays(1)
	if got := weekLogs(run.ID); len(got) != 0 {
		t.Errorf("Step 5 - Expected empty week after Saturday, got %v", got)
	}

	// Step 6
	w := httptest.NewRecorder()
	handler.ListHabits(w, httptest.NewRequest("GET", "/api/habits", nil))
	var habits []models.Habit
	json.NewDecoder(w.Body).Decode(&habits)

	logged := make(map[string]int)
	for _, h := range habits {
		logged[h.ID] = len(h.Log)
	}
	if logged[run.ID] != 2 || logged[read.ID] != 1 {
		t.Errorf("Step 6 - Expected full history in list, got %v", logged)
	}
}
