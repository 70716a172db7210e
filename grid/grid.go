// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid lays out the days of a month as a grid of whole weeks
// for rendering calendar views. Leading and trailing days that pad the
// first and last weeks belong to the adjacent months and are built via
// the same picker as the month's own days so that any disablement or
// time-of-day windows apply to them also.
package grid

import (
	"time"

	"cloudeng.io/datepicker"
)

// Week represents a single row of a month grid. Number is the ISO 8601
// week number, which is defined by the week's Thursday.
type Week struct {
	Number int
	Days   [7]datepicker.Day
}

// Weekdays returns the weekdays in grid order starting at firstDay,
// for use as column headers.
func Weekdays(firstDay time.Weekday) [7]time.Weekday {
	var days [7]time.Weekday
	for i := range days {
		days[i] = time.Weekday((int(firstDay) + i) % 7)
	}
	return days
}

// Month returns the weeks that cover the specified month, each week
// starting on firstDay. The days are built via p.DayOf in p's time
// location.
func Month(p datepicker.Picker, year int, month time.Month, firstDay time.Weekday) []Week {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lead := (int(first.Weekday()) - int(firstDay) + 7) % 7
	ndays := datepicker.DaysInMonth(year, month)
	thursday := (int(time.Thursday) - int(firstDay) + 7) % 7
	weeks := make([]Week, (lead+ndays+6)/7)
	for w := range weeks {
		for d := 0; d < 7; d++ {
			weeks[w].Days[d] = p.DayOf(first.AddDate(0, 0, w*7+d-lead))
		}
		_, weeks[w].Number = weeks[w].Days[thursday].Start.ISOWeek()
	}
	return weeks
}
