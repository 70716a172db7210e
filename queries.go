// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

// DayPickedOrBetween reports whether day is an endpoint of the range
// selection and whether it lies strictly between the endpoints. An unset
// half is substituted with hovered so that a hovered prospective range
// highlights as if it were selected; when no substitute is available the
// between test is false. A day equal to an endpoint is never between.
func DayPickedOrBetween(day, hovered Day, sel RangeSelection) (picked, between bool) {
	if sel.start.set && day.Equal(sel.start.day) {
		picked = true
	}
	if sel.end.set && day.Equal(sel.end.day) {
		picked = true
	}
	lo, hi := sel.start.day, sel.end.day
	if !sel.start.set {
		lo = hovered
	}
	if !sel.end.set {
		hi = hovered
	}
	if lo.IsZero() || hi.IsZero() {
		return picked, false
	}
	if hi.Start.Before(lo.Start) {
		lo, hi = hi, lo
	}
	between = day.Start.After(lo.Start) && day.Start.Before(hi.Start)
	return
}

// IsDayPicked returns true if day is an endpoint of the range selection.
func IsDayPicked(day Day, sel RangeSelection) bool {
	picked, _ := DayPickedOrBetween(day, Day{}, sel)
	return picked
}

// IsDayBetween returns true if day lies strictly between the range
// selection's endpoints, with hovered substituted for an unset half.
func IsDayBetween(day, hovered Day, sel RangeSelection) bool {
	_, between := DayPickedOrBetween(day, hovered, sel)
	return between
}

// TimeBounds describes the hours and minutes a time control should
// offer, inclusive at both ends.
type TimeBounds struct {
	MinHour   int
	MaxHour   int
	MinMinute int
	MaxMinute int
}

// Hours returns the selectable hours in ascending order.
func (tb TimeBounds) Hours() []int {
	if tb.MaxHour < tb.MinHour {
		return nil
	}
	hours := make([]int, 0, tb.MaxHour-tb.MinHour+1)
	for h := tb.MinHour; h <= tb.MaxHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Minutes returns the selectable minutes in ascending order.
func (tb TimeBounds) Minutes() []int {
	if tb.MaxMinute < tb.MinMinute {
		return nil
	}
	minutes := make([]int, 0, tb.MaxMinute-tb.MinMinute+1)
	for m := tb.MinMinute; m <= tb.MaxMinute; m++ {
		minutes = append(minutes, m)
	}
	return minutes
}

// SelectableTimes returns the bounds on the hours and minutes that may
// be selected given the current selection, or given base's opening
// instant when nothing is selected.
func (p Picker) SelectableTimes(base Day, sel Selection) TimeBounds {
	day, at := anchor(base, sel)
	minHour, maxHour := day.HourBounds(at)
	minMinute, maxMinute := day.MinuteBounds(at)
	return TimeBounds{MinHour: minHour, MaxHour: maxHour, MinMinute: minMinute, MaxMinute: maxMinute}
}

// SelectableRangeTimes returns the bounds on the hours and minutes that
// may be selected for each half of a range selection. An unset half is
// evaluated against the other half's day when set, else against base, as
// for the range selection hour and minute edits.
func (p Picker) SelectableRangeTimes(base Day, sel RangeSelection) (start, end TimeBounds) {
	start = p.SelectableTimes(rangeAnchor(base, sel.end), sel.start)
	end = p.SelectableTimes(rangeAnchor(base, sel.start), sel.end)
	return
}
