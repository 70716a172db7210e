// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"time"
)

// Day represents the selectable extent of a single calendar day: the
// first and last selectable instants within it and whether the day may
// be picked at all. Start and End fall on the same calendar day in the
// same location and Start is never after End. Days are built by
// Picker.DayOf.
type Day struct {
	Start    time.Time
	End      time.Time
	Disabled bool
}

// IsZero returns true for the zero value Day.
func (d Day) IsZero() bool {
	return d.Start.IsZero() && d.End.IsZero()
}

// Equal returns true if the two days have the same bounds and the same
// disablement.
func (d Day) Equal(o Day) bool {
	return d.Start.Equal(o.Start) && d.End.Equal(o.End) && d.Disabled == o.Disabled
}

// Date returns the calendar date of the day.
func (d Day) Date() CalendarDate {
	return CalendarDateFromTime(d.Start)
}

func (d Day) String() string {
	if d.IsZero() {
		return "none"
	}
	state := ""
	if d.Disabled {
		state = " (disabled)"
	}
	return fmt.Sprintf("%s %s - %s%s", d.Date(), TimeOfDayFromTime(d.Start), TimeOfDayFromTime(d.End), state)
}

func (d Day) location() *time.Location {
	return d.Start.Location()
}

// SameDate returns true if at falls on the day's calendar date in the
// day's time location.
func (d Day) SameDate(at time.Time) bool {
	return CalendarDateFromTime(at.In(d.location())) == d.Date()
}

// Within returns true if the time of day of at, in the day's time
// location, falls within the day's bounds. Only hours and minutes are
// considered; seconds never affect containment. The calendar date of at
// is ignored, use SameDate to compare dates.
func (d Day) Within(at time.Time) bool {
	at = at.In(d.location())
	hour, minute := at.Hour(), at.Minute()
	if hour < d.Start.Hour() || hour > d.End.Hour() {
		return false
	}
	if hour == d.Start.Hour() && minute < d.Start.Minute() {
		return false
	}
	if hour == d.End.Hour() && minute > d.End.Minute() {
		return false
	}
	return true
}

// HourBounds returns the lowest and highest hours that can be selected
// without moving at, in the day's time location, outside the day's
// bounds. A minute before the opening minute excludes the opening hour
// and a minute after the closing minute excludes the closing hour.
func (d Day) HourBounds(at time.Time) (minHour, maxHour int) {
	at = at.In(d.location())
	minHour, maxHour = d.Start.Hour(), d.End.Hour()
	if at.Minute() < d.Start.Minute() {
		minHour++
	}
	if at.Minute() > d.End.Minute() {
		maxHour--
	}
	return
}

// MinuteBounds returns the lowest and highest minutes that can be
// selected without moving at, in the day's time location, outside the
// day's bounds. The opening and closing minutes constrain only the
// opening and closing hours.
func (d Day) MinuteBounds(at time.Time) (minMinute, maxMinute int) {
	at = at.In(d.location())
	minMinute, maxMinute = 0, 59
	if at.Hour() == d.Start.Hour() {
		minMinute = d.Start.Minute()
	}
	if at.Hour() == d.End.Hour() {
		maxMinute = d.End.Minute()
	}
	return
}
