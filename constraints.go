// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"strings"
	"time"
)

// Constraints represents constraints on the days that may be picked,
// such as weekends only, custom dates to exclude or earliest and latest
// pickable dates. Custom dates are excluded regardless of the weekday
// and weekend fields. Constraints implements DayDisabler.
type Constraints struct {
	Weekdays       bool             // If true, include weekdays
	Weekends       bool             // If true, include weekends
	Custom         DateList         // If non-empty, exclude these dates in every year
	CustomCalendar CalendarDateList // If non-empty, exclude these calendar dates
	NotBefore      CalendarDate     // If non-zero, exclude days before this date
	NotAfter       CalendarDate     // If non-zero, exclude days after this date
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 || len(dc.CustomCalendar) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(strings.Join([]string{dc.Custom.String(), dc.CustomCalendar.String()}, " "))
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	if dc.NotBefore != 0 {
		fmt.Fprintf(&out, ", not before %s", dc.NotBefore)
	}
	if dc.NotAfter != 0 {
		fmt.Fprintf(&out, ", not after %s", dc.NotAfter)
	}
	return out.String()
}

// Include returns true if the given day satisfies the constraints.
// An empty Constraints will return true, ie. include all days.
func (dc Constraints) Include(when time.Time) bool {
	date := CalendarDateFromTime(when)
	if dc.NotBefore != 0 && date < dc.NotBefore {
		return false
	}
	if dc.NotAfter != 0 && date > dc.NotAfter {
		return false
	}
	if len(dc.Custom) > 0 && dc.Custom.Contains(date.Date()) {
		return false
	}
	if len(dc.CustomCalendar) > 0 && dc.CustomCalendar.Contains(date) {
		return false
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return when.Weekday() >= time.Monday && when.Weekday() <= time.Friday
	case dc.Weekends:
		return when.Weekday() == time.Sunday || when.Weekday() == time.Saturday
	}
	return true
}

// IsDisabled implements DayDisabler.
func (dc Constraints) IsDisabled(day time.Time) bool {
	return !dc.Include(day)
}

func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0 && len(dc.CustomCalendar) == 0 && dc.NotBefore == 0 && dc.NotAfter == 0
}

// DisabledDays returns a DayDisabler that disables exactly the
// specified dates.
func DisabledDays(dates ...CalendarDate) DayDisabler {
	return Constraints{CustomCalendar: dates}
}
