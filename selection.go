// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"time"
)

// Selection pairs a picked instant with the day it was picked in. The
// zero value represents no selection.
type Selection struct {
	day Day
	at  time.Time
	set bool
}

// NewSelection returns the selection of the specified instant within the
// specified day. It returns false if the day is disabled, the instant's
// time of day falls outside the day's bounds or the instant falls on a
// different calendar date to the day's.
func NewSelection(day Day, at time.Time) (Selection, bool) {
	if day.Disabled || !day.Within(at) || !day.SameDate(at) {
		return Selection{}, false
	}
	return Selection{day: day, at: at, set: true}, true
}

// IsSet returns true if a selection has been made.
func (s Selection) IsSet() bool {
	return s.set
}

// Day returns the day the selection was made in.
func (s Selection) Day() Day {
	return s.day
}

// When returns the selected instant.
func (s Selection) When() time.Time {
	return s.at
}

// Equal returns true if the two selections are both unset, or refer to
// the same instant within equal days.
func (s Selection) Equal(o Selection) bool {
	if s.set != o.set {
		return false
	}
	if !s.set {
		return true
	}
	return s.day.Equal(o.day) && s.at.Equal(o.at)
}

func (s Selection) String() string {
	if !s.set {
		return "none"
	}
	return s.at.Format("2006-01-02 15:04:05 MST")
}

// selectionOr returns the selection of at within day if it is valid and
// fallback otherwise.
func selectionOr(fallback Selection, day Day, at time.Time) Selection {
	if s, ok := NewSelection(day, at); ok {
		return s
	}
	return fallback
}

// opening returns the selection of the day's first selectable instant.
func opening(day Day) Selection {
	s, _ := NewSelection(day, day.Start)
	return s
}

// closing returns the selection of the day's last selectable instant.
func closing(day Day) Selection {
	s, _ := NewSelection(day, day.End)
	return s
}

// transfer returns the selection of at's time of day within day, if that
// time of day is selectable there.
func transfer(day Day, at time.Time) (Selection, bool) {
	if !day.Within(at) {
		return Selection{}, false
	}
	loc := day.location()
	return NewSelection(day, day.Date().Time(TimeOfDayFromTime(at.In(loc)), loc))
}

// RangeSelection pairs the start and end selections of a duration
// picker. Either or both may be unset; a set start is always before a
// set end. The zero value represents no selection.
type RangeSelection struct {
	start, end Selection
}

// NewRangeSelection returns the range selection with the specified start
// and end halves. It returns false if both halves are set and the start
// instant is not before the end instant.
func NewRangeSelection(start, end Selection) (RangeSelection, bool) {
	r := RangeSelection{start: start, end: end}
	if start.set && end.set && !start.at.Before(end.at) {
		return RangeSelection{}, false
	}
	return r, true
}

// Start returns the start half of the selection.
func (r RangeSelection) Start() Selection {
	return r.start
}

// End returns the end half of the selection.
func (r RangeSelection) End() Selection {
	return r.end
}

// Complete returns true if both halves of the selection are set.
func (r RangeSelection) Complete() bool {
	return r.start.set && r.end.set
}

// Equal returns true if the two range selections have equal halves.
func (r RangeSelection) Equal(o RangeSelection) bool {
	return r.start.Equal(o.start) && r.end.Equal(o.end)
}

func (r RangeSelection) String() string {
	return fmt.Sprintf("%s .. %s", r.start, r.end)
}

// rangeOr returns the range selection with the specified halves if they
// satisfy the ordering invariant and fallback otherwise.
func rangeOr(fallback RangeSelection, start, end Selection) RangeSelection {
	if r, ok := NewRangeSelection(start, end); ok {
		return r
	}
	return fallback
}
