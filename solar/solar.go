// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar provides a day window that tracks daylight, for pickers
// that should only offer times between sunrise and sunset.
package solar

import (
	"time"

	"cloudeng.io/datepicker"
	"github.com/nathan-osman/go-sunrise"
)

// Daylight implements datepicker.DayWindow using the times of sunrise
// and sunset at the specified coordinates, evaluated per day in the
// day's time location.
type Daylight struct {
	Latitude  float64
	Longitude float64
}

// Evaluate implements datepicker.DayWindow. Days on which the sun never
// rises or never sets allow the entire day.
func (d Daylight) Evaluate(day time.Time) datepicker.TimeOfDayRange {
	rise, set := sunrise.SunriseSunset(
		d.Latitude, d.Longitude,
		day.Year(), day.Month(), day.Day())
	if rise.IsZero() || set.IsZero() || !set.After(rise) {
		return datepicker.FullDay()
	}
	loc := day.Location()
	return datepicker.NewTimeOfDayRange(
		datepicker.TimeOfDayFromTime(rise.In(loc)),
		datepicker.TimeOfDayFromTime(set.In(loc)))
}
