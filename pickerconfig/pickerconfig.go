// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pickerconfig provides support for configuring date/time pickers
// via yaml. It defines yaml-aware wrappers for the datepicker value types
// and a Config struct from which a datepicker.Picker can be built.
package pickerconfig

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/solar"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// TimeOfDay is a datepicker.TimeOfDay that marshals to and from its
// string representation, e.g. 08:12:13 or 8:12pm.
type TimeOfDay datepicker.TimeOfDay

func (t *TimeOfDay) MarshalYAML() (any, error) {
	return datepicker.TimeOfDay(*t).String(), nil
}

func (t *TimeOfDay) UnmarshalYAML(value *yaml.Node) error {
	var tod datepicker.TimeOfDay
	if err := tod.Parse(value.Value); err != nil {
		return err
	}
	*t = TimeOfDay(tod)
	return nil
}

func (t TimeOfDay) String() string {
	return datepicker.TimeOfDay(t).String()
}

// Date is a datepicker.Date that marshals to and from its string
// representation, e.g. 01/02 or Jan-02.
type Date datepicker.Date

func (d *Date) MarshalYAML() (any, error) {
	return datepicker.Date(*d).String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var date datepicker.Date
	if err := date.Parse(value.Value); err != nil {
		return err
	}
	*d = Date(date)
	return nil
}

func (d Date) String() string {
	return datepicker.Date(d).String()
}

// CalendarDate is a datepicker.CalendarDate that marshals to and from
// its string representation, e.g. 2006-01-02 or 01/02/2006.
type CalendarDate datepicker.CalendarDate

func (d *CalendarDate) MarshalYAML() (any, error) {
	return datepicker.CalendarDate(*d).String(), nil
}

func (d *CalendarDate) UnmarshalYAML(value *yaml.Node) error {
	var date datepicker.CalendarDate
	if err := date.Parse(value.Value); err != nil {
		return err
	}
	*d = CalendarDate(date)
	return nil
}

func (d CalendarDate) String() string {
	return datepicker.CalendarDate(d).String()
}

// Window specifies a fixed open/close time applied to every day.
type Window struct {
	Start TimeOfDay `yaml:"start" cmd:"the time of day at which the window opens"`
	End   TimeOfDay `yaml:"end" cmd:"the time of day at which the window closes"`
}

// Solar specifies a window that tracks sunrise and sunset at the
// given coordinates.
type Solar struct {
	Latitude  float64 `yaml:"latitude" cmd:"latitude in degrees north of the equator"`
	Longitude float64 `yaml:"longitude" cmd:"longitude in degrees east of the meridian"`
}

// Config represents the yaml configuration for a date/time picker. At most
// one of Window, WeekdayWindows or Solar may be specified; when none is the
// picker's days span the full day.
type Config struct {
	TimeLocation   string            `yaml:"time_location" cmd:"the time zone location in time.LoadLocation format, e.g. America/New_York, defaults to UTC"`
	Weekdays       bool              `yaml:"weekdays" cmd:"if true, restrict the picker to weekdays"`
	Weekends       bool              `yaml:"weekends" cmd:"if true, restrict the picker to weekends"`
	Exclude        []Date            `yaml:"exclude,flow" cmd:"dates to exclude in every year, e.g. 01/02 or Jan-02"`
	ExcludeDates   []CalendarDate    `yaml:"exclude_dates,flow" cmd:"specific dates to exclude, e.g. 2006-01-02"`
	NotBefore      CalendarDate      `yaml:"not_before" cmd:"the earliest selectable date"`
	NotAfter       CalendarDate      `yaml:"not_after" cmd:"the latest selectable date"`
	Window         *Window           `yaml:"window" cmd:"the fixed open/close times applied to every day"`
	WeekdayWindows map[string]Window `yaml:"weekday_windows" cmd:"per-weekday open/close times, keyed by weekday name"`
	Solar          *Solar            `yaml:"solar" cmd:"sunrise/sunset window coordinates"`
}

// ParseConfig parses the yaml configuration in spec.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfigFile parses the yaml configuration in the specified file,
// which may be local or a URI handled by a registered URL handler.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (w Window) timeOfDayRange() datepicker.TimeOfDayRange {
	return datepicker.NewTimeOfDayRange(
		datepicker.TimeOfDay(w.Start), datepicker.TimeOfDay(w.End))
}

func (c Config) window(errs *errors.M) datepicker.DayWindow {
	specified := 0
	for _, set := range []bool{c.Window != nil, len(c.WeekdayWindows) > 0, c.Solar != nil} {
		if set {
			specified++
		}
	}
	if specified > 1 {
		errs.Append(fmt.Errorf("only one of window, weekday_windows or solar may be specified"))
		return nil
	}
	switch {
	case c.Window != nil:
		if c.Window.Start == 0 && c.Window.End == 0 {
			errs.Append(fmt.Errorf("window: start and end are both unset"))
			return nil
		}
		return datepicker.FixedWindow(c.Window.timeOfDayRange())
	case len(c.WeekdayWindows) > 0:
		windows := datepicker.WeekdayWindows{}
		for name, w := range c.WeekdayWindows {
			day, err := datepicker.ParseWeekday(name)
			if err != nil {
				errs.Append(err)
				continue
			}
			windows[day] = w.timeOfDayRange()
		}
		return windows
	case c.Solar != nil:
		return solar.Daylight{Latitude: c.Solar.Latitude, Longitude: c.Solar.Longitude}
	}
	return nil
}

func (c Config) constraints(errs *errors.M) datepicker.Constraints {
	cnstr := datepicker.Constraints{
		Weekdays:  c.Weekdays,
		Weekends:  c.Weekends,
		NotBefore: datepicker.CalendarDate(c.NotBefore),
		NotAfter:  datepicker.CalendarDate(c.NotAfter),
	}
	for _, d := range c.Exclude {
		cnstr.Custom = append(cnstr.Custom, datepicker.Date(d))
	}
	for _, d := range c.ExcludeDates {
		cnstr.CustomCalendar = append(cnstr.CustomCalendar, datepicker.CalendarDate(d))
	}
	if cnstr.NotBefore != 0 && cnstr.NotAfter != 0 && cnstr.NotAfter < cnstr.NotBefore {
		errs.Append(fmt.Errorf("not_before %v is after not_after %v", cnstr.NotBefore, cnstr.NotAfter))
	}
	return cnstr
}

// Picker creates a datepicker.Picker from the configuration. All of the
// configuration errors encountered are returned, not just the first.
func (c Config) Picker() (datepicker.Picker, error) {
	errs := &errors.M{}
	p := datepicker.Picker{}
	if len(c.TimeLocation) > 0 {
		loc, err := time.LoadLocation(c.TimeLocation)
		if err != nil {
			errs.Append(err)
		} else {
			p.Location = loc
		}
	}
	p.Window = c.window(errs)
	if cnstr := c.constraints(errs); !cnstr.Empty() {
		p.Disabled = cnstr
	}
	if err := errs.Err(); err != nil {
		return datepicker.Picker{}, err
	}
	return p, nil
}
