// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datepicker provides the selection logic behind calendar and
// time picker UIs. It builds bounded, possibly disabled, days from
// instants in time and combines day, hour and minute picks with prior
// selection state to produce new selections for both single instant
// pickers and start/end range pickers. All operations are pure functions
// of their inputs; selection state is owned by the caller and threaded
// through each operation. Edits that would produce an invalid selection
// return the prior state unchanged rather than an error.
package datepicker

import "time"

// DayDisabler restricts the days that may be picked. The day argument
// is midnight at the start of the calendar day in the picker's time
// location.
type DayDisabler interface {
	// IsDisabled returns true if the specified day may not be picked.
	IsDisabled(day time.Time) bool
}

// DayWindow restricts the times of day that may be picked within a day.
// The day argument is as for DayDisabler. Implementations may be
// dynamic, that is, return a different range for each day, as for
// daylight hours which shift with the date.
type DayWindow interface {
	// Evaluate returns the selectable time of day range for the
	// specified day.
	Evaluate(day time.Time) TimeOfDayRange
}

// Picker builds the days presented by a picker UI and applies selection
// edits to them. The zero value allows every day in its entirety, in UTC.
// A Picker is stateless and hence a single value may be shared by any
// number of concurrent pickers.
type Picker struct {
	Location *time.Location // the picker's time location, nil implies UTC
	Disabled DayDisabler    // if non-nil, restricts the days that may be picked
	Window   DayWindow      // if non-nil, restricts the times of day that may be picked
}

func (p Picker) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// DayOf returns the Day containing the specified instant in the picker's
// time location. The returned Day's bounds are the window returned by
// the picker's DayWindow applied to that calendar day, with seconds as
// per the window's times. Two Days obtained for the same calendar day
// from the same Picker are always equal.
func (p Picker) DayOf(when time.Time) Day {
	loc := p.location()
	year, month, dom := when.In(loc).Date()
	midnight := time.Date(year, month, dom, 0, 0, 0, 0, loc)
	window := FullDay()
	if p.Window != nil {
		w := p.Window.Evaluate(midnight)
		window = NewTimeOfDayRange(w.From, w.To)
	}
	day := Day{
		Start: time.Date(year, month, dom, window.From.Hour(), window.From.Minute(), window.From.Second(), 0, loc),
		End:   time.Date(year, month, dom, window.To.Hour(), window.To.Minute(), window.To.Second(), 0, loc),
	}
	if day.End.Before(day.Start) {
		day.Start, day.End = day.End, day.Start
	}
	if p.Disabled != nil {
		day.Disabled = p.Disabled.IsDisabled(midnight)
	}
	return day
}
