// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/danielhkuo/habit-log/models"
)

// Week is the inclusive Sunday-to-Saturday range containing a reference
// instant, in that instant's location.
type Week struct {
	Start time.Time // Sunday 00:00:00.000
	End   time.Time // Saturday 23:59:59.999
}

// WeekOf returns the week containing ref.
func WeekOf(ref time.Time) Week {
	y, m, d := ref.Date()
	sunday := d - int(ref.Weekday())
	start := time.Date(y, m, sunday, 0, 0, 0, 0, ref.Location())
	end := time.Date(y, m, sunday+6, 23, 59, 59, int(999*time.Millisecond), ref.Location())
	return Week{Start: start, End: end}
}

// Contains reports whether day, taken at midnight in the week's location,
// lies within the week.
func (w Week) Contains(day models.Date) bool {
	t := day.In(w.Start.Location())
	return !t.Before(w.Start) && !t.After(w.End)
}

// Filter returns the entries of log inside the week, keeping their order.
func (w Week) Filter(log []models.Date) []models.Date {
	inWeek := []models.Date{}
	for _, day := range log {
		if w.Contains(day) {
			inWeek = append(inWeek, day)
		}
	}
	return inWeek
}
