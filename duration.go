// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

// SelectRangeDay returns the range selection resulting from picking day
// with the specified prior selection. Picking a disabled day leaves
// prior unchanged.
//
// When both halves are set, picking an endpoint's day deselects that
// endpoint, with the end deselected when both endpoints share the picked
// day, and picking any other day starts a new range at its opening
// instant. When only the start is set, picking a day on or before it
// moves the start there, carrying the start's time of day when it
// remains selectable, and the old start day's closing instant becomes
// the end; picking a later day completes the range at that day's closing
// instant. When only the end is set the behaviour is the mirror image.
// An edit that does not leave the start before the end reverts to prior.
func (p Picker) SelectRangeDay(prior RangeSelection, picked Day) RangeSelection {
	if picked.Disabled {
		return prior
	}
	start, end := prior.start, prior.end
	switch {
	case start.set && end.set:
		return p.reselectRangeDay(prior, picked)
	case start.set:
		if !picked.Start.After(start.day.Start) {
			newStart := opening(picked)
			if s, ok := transfer(picked, start.at); ok {
				newStart = s
			}
			return rangeOr(prior, newStart, closing(start.day))
		}
		return rangeOr(prior, start, closing(picked))
	case end.set:
		if !picked.Start.Before(end.day.Start) {
			newEnd := closing(picked)
			if s, ok := transfer(picked, end.at); ok {
				newEnd = s
			}
			return rangeOr(prior, opening(end.day), newEnd)
		}
		return rangeOr(prior, opening(picked), end)
	default:
		return rangeOr(prior, opening(picked), Selection{})
	}
}

func (p Picker) reselectRangeDay(prior RangeSelection, picked Day) RangeSelection {
	start, end := prior.start, prior.end
	switch {
	case picked.Equal(start.day) && picked.Equal(end.day):
		return rangeOr(prior, start, Selection{})
	case picked.Equal(start.day):
		return rangeOr(prior, Selection{}, end)
	case picked.Equal(end.day):
		return rangeOr(prior, start, Selection{})
	}
	return rangeOr(prior, opening(picked), Selection{})
}

// rangeAnchor returns the day an hour or minute edit of an unset half
// applies to: the other half's day when set, else the supplied base day.
func rangeAnchor(base Day, other Selection) Day {
	if other.IsSet() {
		return other.Day()
	}
	return base
}

// SelectStartHour returns the range selection with the hour of its start
// half edited as for Picker.SelectHour. A first start selection is made
// within the end half's day when set, else within base. An edit that
// does not leave the start before a set end leaves prior unchanged.
func (p Picker) SelectStartHour(base Day, prior RangeSelection, hour int) RangeSelection {
	start := p.SelectHour(rangeAnchor(base, prior.end), prior.start, hour)
	return rangeOr(prior, start, prior.end)
}

// SelectEndHour returns the range selection with the hour of its end
// half edited as for Picker.SelectHour. A first end selection is made
// within the start half's day when set, else within base. An edit that
// does not leave a set start before the end leaves prior unchanged.
func (p Picker) SelectEndHour(base Day, prior RangeSelection, hour int) RangeSelection {
	end := p.SelectHour(rangeAnchor(base, prior.start), prior.end, hour)
	return rangeOr(prior, prior.start, end)
}

// SelectStartMinute returns the range selection with the minute of its
// start half edited as for Picker.SelectMinute.
func (p Picker) SelectStartMinute(base Day, prior RangeSelection, minute int) RangeSelection {
	start := p.SelectMinute(rangeAnchor(base, prior.end), prior.start, minute)
	return rangeOr(prior, start, prior.end)
}

// SelectEndMinute returns the range selection with the minute of its end
// half edited as for Picker.SelectMinute.
func (p Picker) SelectEndMinute(base Day, prior RangeSelection, minute int) RangeSelection {
	end := p.SelectMinute(rangeAnchor(base, prior.start), prior.end, minute)
	return rangeOr(prior, prior.start, end)
}

// Preview returns the provisional range selection for hovering over day:
// prior itself once complete, else the range selection that picking day
// would produce. Nothing is committed by a preview.
func (p Picker) Preview(prior RangeSelection, hovered Day) RangeSelection {
	if prior.Complete() {
		return prior
	}
	return p.SelectRangeDay(prior, hovered)
}
