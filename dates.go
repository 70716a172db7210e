// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Date represents a month and day, such as an annually recurring holiday.
// The month is stored in the high byte and the day in the low byte to
// allow for sorting and comparison.
type Date uint16

// NewDate returns a Date for the specified month and day.
func NewDate(month time.Month, day int) Date {
	return Date(month)<<8 | Date(day&0xff)
}

func (d Date) Month() time.Month {
	return time.Month(d >> 8)
}

func (d Date) Day() int {
	return int(d & 0xff)
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d", d.Month(), d.Day())
}

const expectedDateFormats = "'01/02' or 'Jan-02'"

// Parse dates in formats '01/02' or 'Jan-02'. Feb 29 is accepted since
// a Date carries no year.
func (d *Date) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	var month time.Month
	var err error
	var parts []string
	switch {
	case strings.Contains(val, "/"):
		parts = strings.Split(val, "/")
		if len(parts) != 2 {
			return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
		}
		month, err = ParseNumericMonth(parts[0])
	case strings.Contains(val, "-"):
		parts = strings.Split(val, "-")
		if len(parts) != 2 {
			return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
		}
		month, err = ParseMonth(parts[0])
	default:
		return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[1])
	}
	if day < 1 || day > daysInMonthLeap[month-1] {
		return fmt.Errorf("invalid day for %v: %d", month, day)
	}
	*d = NewDate(month, day)
	return nil
}

type DateList []Date

// Parse a comma separated list of dates in the formats accepted by
// Date.Parse.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	for _, part := range parts {
		var date Date
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		d = append(d, date)
	}
	*dl = d
	return nil
}

func (dl DateList) String() string {
	out := make([]string, 0, len(dl))
	for _, d := range dl {
		out = append(out, d.String())
	}
	return strings.Join(out, ", ")
}

func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// CalendarDate represents a date with a year, month and day. The year is
// stored in the high 16 bits, the month in the next byte and the day in
// the low byte to allow for sorting and comparison. The zero value
// represents no date.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate(year)<<16 | CalendarDate(month)<<8 | CalendarDate(day&0xff)
}

// CalendarDateFromTime returns the CalendarDate for the specified time in
// its location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), t.Month(), t.Day())
}

func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

func (cd CalendarDate) Month() time.Month {
	return time.Month(cd >> 8 & 0xff)
}

func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// Date returns the Date for the CalendarDate.
func (cd CalendarDate) Date() Date {
	return NewDate(cd.Month(), cd.Day())
}

// Time returns the time.Time for the CalendarDate at the specified time
// of day in the specified location.
func (cd CalendarDate) Time(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(cd.Year(), cd.Month(), cd.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

const expectedCalendarDateFormats = "'2006-01-02' or '01/02/2006'"

// Parse dates in formats '2006-01-02' or '01/02/2006'.
func (cd *CalendarDate) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedCalendarDateFormats)
	}
	var month time.Month
	var yerr, merr error
	var year, day int
	var dayPart string
	if strings.Contains(val, "/") {
		parts := strings.Split(val, "/")
		if len(parts) != 3 {
			return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
		}
		month, merr = ParseNumericMonth(parts[0])
		year, yerr = strconv.Atoi(parts[2])
		dayPart = parts[1]
	} else {
		parts := strings.Split(val, "-")
		if len(parts) != 3 {
			return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
		}
		year, yerr = strconv.Atoi(parts[0])
		month, merr = ParseNumericMonth(parts[1])
		dayPart = parts[2]
	}
	if merr != nil {
		return fmt.Errorf("invalid month in %q: %v", val, merr)
	}
	if yerr != nil || year < 1 || year > 9999 {
		return fmt.Errorf("invalid year in %q", val)
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return fmt.Errorf("invalid day: %s", dayPart)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day for %v %v: %d", month, year, day)
	}
	*cd = NewCalendarDate(year, month, day)
	return nil
}

type CalendarDateList []CalendarDate

// Parse a comma separated list of dates in the formats accepted by
// CalendarDate.Parse.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var date CalendarDate
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		d = append(d, date)
	}
	*cdl = d
	return nil
}

func (cdl CalendarDateList) String() string {
	out := make([]string, 0, len(cdl))
	for _, d := range cdl {
		out = append(out, d.String())
	}
	return strings.Join(out, ", ")
}

func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	return slices.Contains(cdl, d)
}
