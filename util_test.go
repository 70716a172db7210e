// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker_test

import (
	"time"

	"cloudeng.io/datepicker"
)

func newDate(m, d int) datepicker.Date {
	return datepicker.NewDate(time.Month(m), d)
}

func newCalendarDate(y, m, d int) datepicker.CalendarDate {
	return datepicker.NewCalendarDate(y, time.Month(m), d)
}

func newDateList(d ...datepicker.Date) datepicker.DateList {
	r := make(datepicker.DateList, len(d))
	copy(r, d)
	return r
}

func newCalendarDateList(d ...datepicker.CalendarDate) datepicker.CalendarDateList {
	r := make(datepicker.CalendarDateList, len(d))
	copy(r, d)
	return r
}

func newTimeOfDayRange(fh, fm, th, tm int) datepicker.TimeOfDayRange {
	return datepicker.NewTimeOfDayRange(
		datepicker.NewTimeOfDay(fh, fm, 0),
		datepicker.NewTimeOfDay(th, tm, 0))
}

func newFixedWindow(fh, fm, th, tm int) datepicker.FixedWindow {
	return datepicker.FixedWindow(newTimeOfDayRange(fh, fm, th, tm))
}

// businessHours returns a picker whose days span 09:30 to 17:30 in UTC.
func businessHours() datepicker.Picker {
	return datepicker.Picker{
		Window: datepicker.FixedWindow(newTimeOfDayRange(9, 30, 17, 30)),
	}
}

func utc(y, m, d, hour, minute int) time.Time {
	return time.Date(y, time.Month(m), d, hour, minute, 0, 0, time.UTC)
}
