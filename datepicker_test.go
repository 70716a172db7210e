// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker_test

import (
	"testing"
	"time"

	"cloudeng.io/datepicker"
)

func TestDayOf(t *testing.T) {
	var p datepicker.Picker
	day := p.DayOf(utc(2024, 1, 2, 13, 45))
	if got, want := day.Start, utc(2024, 1, 2, 0, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, utc(2024, 1, 2, 23, 59); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if day.Disabled {
		t.Errorf("zero picker disabled a day")
	}
	if got, want := day.Date(), newCalendarDate(2024, 1, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	bh := businessHours()
	day = bh.DayOf(utc(2024, 1, 2, 13, 45))
	if got, want := day.Start, utc(2024, 1, 2, 9, 30); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, utc(2024, 1, 2, 17, 30); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := day, bh.DayOf(day.Start); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day, bh.DayOf(utc(2024, 1, 2, 0, 0)); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if day.Equal(bh.DayOf(utc(2024, 1, 3, 0, 0))) {
		t.Errorf("days for different dates compared equal")
	}
}

func TestDayOfLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	p := datepicker.Picker{
		Location: ny,
		Window:   datepicker.FixedWindow(newTimeOfDayRange(9, 30, 17, 30)),
	}
	// 2024-01-03 01:30 UTC is 2024-01-02 20:30 in New York.
	day := p.DayOf(time.Date(2024, 1, 3, 1, 30, 0, 0, time.UTC))
	if got, want := day.Date(), newCalendarDate(2024, 1, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.Start, time.Date(2024, 1, 2, 9, 30, 0, 0, ny); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, time.Date(2024, 1, 2, 17, 30, 0, 0, ny); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayOfDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	p := datepicker.Picker{
		Location: ny,
		Window:   datepicker.FixedWindow(newTimeOfDayRange(2, 30, 3, 30)),
	}
	// 2021-03-14 02:30 does not exist in New York.
	day := p.DayOf(time.Date(2021, 3, 14, 12, 0, 0, 0, ny))
	if day.End.Before(day.Start) {
		t.Errorf("day ends before it starts: %v", day)
	}
	if !day.SameDate(day.Start) || !day.SameDate(day.End) {
		t.Errorf("day bounds crossed a date boundary: %v", day)
	}
}

type reversedWindow struct{}

func (reversedWindow) Evaluate(time.Time) datepicker.TimeOfDayRange {
	return datepicker.TimeOfDayRange{
		From: datepicker.NewTimeOfDay(17, 30, 0),
		To:   datepicker.NewTimeOfDay(9, 30, 0),
	}
}

func TestDayOfReversedWindow(t *testing.T) {
	p := datepicker.Picker{Window: reversedWindow{}}
	day := p.DayOf(utc(2024, 1, 2, 12, 0))
	if got, want := day.Start, utc(2024, 1, 2, 9, 30); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, utc(2024, 1, 2, 17, 30); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayOfWeekdayWindows(t *testing.T) {
	p := datepicker.Picker{
		Window: datepicker.WeekdayWindows{
			time.Saturday: newTimeOfDayRange(10, 0, 12, 0),
		},
	}
	// 2024-01-06 is a Saturday.
	day := p.DayOf(utc(2024, 1, 6, 0, 0))
	if got, want := day.Start, utc(2024, 1, 6, 10, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, utc(2024, 1, 6, 12, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	day = p.DayOf(utc(2024, 1, 7, 0, 0))
	if got, want := day.Start, utc(2024, 1, 7, 0, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, utc(2024, 1, 7, 23, 59); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayOfDisabled(t *testing.T) {
	p := businessHours()
	p.Disabled = datepicker.Constraints{Weekdays: true}
	// 2024-01-06 is a Saturday, 2024-01-08 a Monday.
	if !p.DayOf(utc(2024, 1, 6, 12, 0)).Disabled {
		t.Errorf("expected a weekend day to be disabled")
	}
	if p.DayOf(utc(2024, 1, 8, 12, 0)).Disabled {
		t.Errorf("expected a weekday to be enabled")
	}

	p.Disabled = datepicker.DisabledDays(newCalendarDate(2024, 1, 8))
	if !p.DayOf(utc(2024, 1, 8, 12, 0)).Disabled {
		t.Errorf("expected the specified day to be disabled")
	}
	if p.DayOf(utc(2024, 1, 9, 12, 0)).Disabled {
		t.Errorf("expected other days to be enabled")
	}
}

func TestDayString(t *testing.T) {
	var zero datepicker.Day
	if got, want := zero.String(), "none"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !zero.IsZero() {
		t.Errorf("zero day reported as non zero")
	}
	day := businessHours().DayOf(utc(2024, 1, 2, 0, 0))
	if got, want := day.String(), "2024-01-02 09:30:00 - 17:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	day.Disabled = true
	if got, want := day.String(), "2024-01-02 09:30:00 - 17:30:00 (disabled)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
