// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import "time"

// anchor returns the day and instant that an hour or minute edit applies
// to: the current selection when set, else the base day at its opening
// instant.
func anchor(base Day, prior Selection) (Day, time.Time) {
	if prior.IsSet() {
		return prior.Day(), prior.When().In(prior.Day().location())
	}
	return base, base.Start
}

// SelectDay returns the selection resulting from picking day with the
// specified prior selection. Picking a disabled day leaves prior
// unchanged. A prior time of day that remains selectable within the
// picked day is carried over to it, otherwise the picked day's opening
// instant is selected.
func (p Picker) SelectDay(prior Selection, picked Day) Selection {
	if picked.Disabled {
		return prior
	}
	if prior.IsSet() {
		if s, ok := transfer(picked, prior.When()); ok {
			return s
		}
	}
	return opening(picked)
}

// SelectHour returns the selection resulting from choosing hour. The
// edit applies to the current selection when set, else to base at its
// opening instant. The minute snaps up to the lowest minute selectable
// within the chosen hour when it falls below it; a first selection
// always snaps. An hour outside 0 to 23 or outside the day's bounds
// leaves prior unchanged.
func (p Picker) SelectHour(base Day, prior Selection, hour int) Selection {
	if hour < 0 || hour > 23 {
		return prior
	}
	day, at := anchor(base, prior)
	loc := day.location()
	year, month, dom := at.Date()
	candidate := time.Date(year, month, dom, hour, at.Minute(), at.Second(), 0, loc)
	if minMinute, _ := day.MinuteBounds(candidate); !prior.IsSet() || at.Minute() < minMinute {
		candidate = time.Date(year, month, dom, hour, minMinute, at.Second(), 0, loc)
	}
	return selectionOr(prior, day, candidate)
}

// SelectMinute returns the selection resulting from choosing minute. The
// edit applies to the current selection when set, else to base at its
// opening instant. A minute outside 0 to 59 or outside the day's bounds
// for the current hour leaves prior unchanged.
func (p Picker) SelectMinute(base Day, prior Selection, minute int) Selection {
	if minute < 0 || minute > 59 {
		return prior
	}
	day, at := anchor(base, prior)
	loc := day.location()
	year, month, dom := at.Date()
	candidate := time.Date(year, month, dom, at.Hour(), minute, at.Second(), 0, loc)
	return selectionOr(prior, day, candidate)
}
