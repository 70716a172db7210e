// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"strings"
	"time"
)

// FixedWindow is a DayWindow that applies the same time of day range to
// every day.
type FixedWindow TimeOfDayRange

// Evaluate implements DayWindow.
func (w FixedWindow) Evaluate(time.Time) TimeOfDayRange {
	return TimeOfDayRange(w)
}

func (w FixedWindow) String() string {
	return TimeOfDayRange(w).String()
}

// Parse ranges in the formats accepted by TimeOfDayRange.Parse.
func (w *FixedWindow) Parse(val string) error {
	var tr TimeOfDayRange
	if err := tr.Parse(val); err != nil {
		return err
	}
	*w = FixedWindow(tr)
	return nil
}

// WeekdayWindows is a DayWindow with a time of day range per weekday.
// Weekdays without an entry allow the entire day.
type WeekdayWindows map[time.Weekday]TimeOfDayRange

// Evaluate implements DayWindow.
func (w WeekdayWindows) Evaluate(day time.Time) TimeOfDayRange {
	if tr, ok := w[day.Weekday()]; ok {
		return tr
	}
	return FullDay()
}

func (w WeekdayWindows) String() string {
	out := make([]string, 0, len(w))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if tr, ok := w[wd]; ok {
			out = append(out, fmt.Sprintf("%s: %s", wd, tr))
		}
	}
	return strings.Join(out, ", ")
}
