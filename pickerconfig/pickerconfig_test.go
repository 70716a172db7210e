// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pickerconfig_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/datepicker/pickerconfig"
)

const pickerSpec = `
time_location: America/New_York
weekdays: true
exclude: [12/25, 07/04]
exclude_dates: [2024-01-15]
not_before: 2024-01-01
not_after: 2024-12-31
window:
  start: 09:30
  end: 17:30
`

func TestParseConfig(t *testing.T) {
	cfg, err := pickerconfig.ParseConfig([]byte(pickerSpec))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := cfg.TimeLocation, "America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Weekdays, true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(cfg.Exclude), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Exclude[0].String(), "12/25"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.ExcludeDates[0].String(), "2024-01-15"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.NotBefore.String(), "2024-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if cfg.Window == nil {
		t.Fatalf("no window")
	}
	if got, want := cfg.Window.Start.String(), "09:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Window.End.String(), "17:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	p, err := cfg.Picker()
	if err != nil {
		t.Fatal(err)
	}
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Location.String(), loc.String(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	day := p.DayOf(time.Date(2024, 1, 8, 12, 0, 0, 0, loc))
	if got, want := day.Start, time.Date(2024, 1, 8, 9, 30, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, time.Date(2024, 1, 8, 17, 30, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if day.Disabled {
		t.Errorf("monday disabled")
	}

	for _, tc := range []struct {
		when     time.Time
		disabled bool
	}{
		{time.Date(2024, 1, 6, 12, 0, 0, 0, loc), true},   // saturday
		{time.Date(2024, 1, 15, 12, 0, 0, 0, loc), true},  // excluded calendar date
		{time.Date(2024, 12, 25, 12, 0, 0, 0, loc), true}, // excluded date
		{time.Date(2024, 7, 4, 12, 0, 0, 0, loc), true},   // excluded date
		{time.Date(2023, 12, 31, 12, 0, 0, 0, loc), true}, // before not_before
		{time.Date(2025, 1, 1, 12, 0, 0, 0, loc), true},   // after not_after
		{time.Date(2024, 1, 9, 12, 0, 0, 0, loc), false},
	} {
		if got, want := p.DayOf(tc.when).Disabled, tc.disabled; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}
}

func TestPickerDefaults(t *testing.T) {
	cfg, err := pickerconfig.ParseConfig([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Picker()
	if err != nil {
		t.Fatal(err)
	}
	day := p.DayOf(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC))
	if got, want := day.Start, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := day.End, time.Date(2024, 1, 6, 23, 59, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if day.Disabled {
		t.Errorf("day disabled by empty config")
	}
}

const weekdayWindowsSpec = `
weekday_windows:
  monday:
    start: 08:00
    end: 16:00
  Tue:
    start: 10:00
    end: 18:00
`

func TestPickerWeekdayWindows(t *testing.T) {
	cfg, err := pickerconfig.ParseConfig([]byte(weekdayWindowsSpec))
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Picker()
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		day        int // january 2024
		start, end int // hours
	}{
		{8, 8, 16},  // monday
		{9, 10, 18}, // tuesday
		{10, 0, 23}, // wednesday, full day
	} {
		day := p.DayOf(time.Date(2024, 1, tc.day, 12, 0, 0, 0, time.UTC))
		if got, want := day.Start.Hour(), tc.start; got != want {
			t.Errorf("%v: got %v, want %v", tc.day, got, want)
		}
		if got, want := day.End.Hour(), tc.end; got != want {
			t.Errorf("%v: got %v, want %v", tc.day, got, want)
		}
	}
}

const solarSpec = `
time_location: America/Los_Angeles
solar:
  latitude: 37.3229978
  longitude: -122.0321823
`

func TestPickerSolar(t *testing.T) {
	cfg, err := pickerconfig.ParseConfig([]byte(solarSpec))
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Picker()
	if err != nil {
		t.Fatal(err)
	}
	day := p.DayOf(time.Date(2024, 1, 1, 12, 0, 0, 0, p.Location))
	if got, want := day.Start.Hour(), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if daylight := day.End.Sub(day.Start); daylight < 9*time.Hour || daylight > 10*time.Hour {
		t.Errorf("implausible midwinter daylight: %v", daylight)
	}
}

func TestParseConfigFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "picker.yaml")
	if err := os.WriteFile(filename, []byte(pickerSpec), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := pickerconfig.ParseConfigFile(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.TimeLocation, "America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := pickerconfig.ParseConfigFile(ctx, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected an error")
	}
}

func TestConfigErrors(t *testing.T) {
	for i, tc := range []struct {
		spec string
		err  string
	}{
		{"time_location: Nowhere/Special", "unknown time zone"},
		{`window:
  start: 09:00
  end: 17:00
solar:
  latitude: 1
  longitude: 1
`, "only one of window"},
		{`window:
  start: 00:00
  end: 00:00
`, "both unset"},
		{`weekday_windows:
  noday:
    start: 09:00
    end: 17:00
`, "invalid weekday"},
		{`not_before: 2024-06-01
not_after: 2024-01-01
`, "is after"},
	} {
		cfg, err := pickerconfig.ParseConfig([]byte(tc.spec))
		if err != nil {
			t.Fatalf("%v: failed: %v", i, err)
		}
		_, err = cfg.Picker()
		if err == nil {
			t.Errorf("%v: expected an error", i)
			continue
		}
		if got, want := err.Error(), tc.err; !strings.Contains(got, want) {
			t.Errorf("%v: got %v, does not contain %v", i, got, want)
		}
	}

	if _, err := pickerconfig.ParseConfig([]byte("not_before: junk")); err == nil {
		t.Errorf("expected an error")
	}
}
