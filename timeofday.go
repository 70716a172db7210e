// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TimeOfDay represents a time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", h)
	}
	if ampmState == 0 {
		return hour, nil
	}
	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour: %s with am/pm", h)
	}
	if hour == 12 {
		hour = 0
	}
	if ampmState == 2 {
		hour += 12
	}
	return hour, nil
}

func (t *TimeOfDay) parseHourMinuteSec(h, m, s string, ampmState int) error {
	if !isDigits(h) || !isDigits(m) || !isDigits(s) {
		return fmt.Errorf("invalid time of day: %s:%s:%s", h, m, s)
	}
	hour, err := parseHour(h, ampmState)
	if err != nil {
		return err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return fmt.Errorf("invalid second: %s", s)
	}
	*t = NewTimeOfDay(hour, minute, sec)
	return nil
}

// Parse val in formats '08[:12[:10]][am|pm]'
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		tl = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		tl = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(tl, ":")
	switch len(parts) {
	case 1:
		return t.parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		return t.parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		return t.parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	}
	return fmt.Errorf("invalid format, expected '08:12[:10]'")
}

// TimeOfDayRange represents a range of times of day, inclusive of both ends.
type TimeOfDayRange struct {
	From TimeOfDay
	To   TimeOfDay
}

// NewTimeOfDayRange returns a TimeOfDayRange spanning from to to. If from
// is later than to they are swapped.
func NewTimeOfDayRange(from, to TimeOfDay) TimeOfDayRange {
	if to < from {
		from, to = to, from
	}
	return TimeOfDayRange{From: from, To: to}
}

// FullDay returns the TimeOfDayRange spanning an entire day, from 00:00
// to 23:59.
func FullDay() TimeOfDayRange {
	return TimeOfDayRange{From: NewTimeOfDay(0, 0, 0), To: NewTimeOfDay(23, 59, 0)}
}

func (tr TimeOfDayRange) String() string {
	return fmt.Sprintf("%s - %s", tr.From, tr.To)
}

// Parse ranges in formats '<from>,<to>' where from and to are in the
// formats accepted by TimeOfDay.Parse, eg. '09:30,5:30pm'.
func (tr *TimeOfDayRange) Parse(val string) error {
	parts := strings.Split(val, ",")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, expected '<from>,<to>': %q", val)
	}
	var from, to TimeOfDay
	if err := from.Parse(strings.TrimSpace(parts[0])); err != nil {
		return err
	}
	if err := to.Parse(strings.TrimSpace(parts[1])); err != nil {
		return err
	}
	*tr = NewTimeOfDayRange(from, to)
	return nil
}
