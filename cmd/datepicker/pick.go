// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datepicker"
	"cloudeng.io/logging/ctxlog"
)

type pickFlags struct {
	commonFlags
	Range bool   `subcmd:"range,false,pick a time range rather than a single time"`
	Base  string `subcmd:"base,,'the day in 2006-01-02 format that hour and minute picks apply to before any day is picked, defaults to today'"`
}

func pick(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*pickFlags)
	ctx = fv.withLogger(ctx)
	p, err := fv.picker(ctx)
	if err != nil {
		return err
	}
	base, err := fv.baseDay(p)
	if err != nil {
		return err
	}
	if fv.Range {
		return pickRange(ctx, p, base, args)
	}
	return pickSingle(ctx, p, base, args)
}

func (fv pickFlags) baseDay(p datepicker.Picker) (datepicker.Day, error) {
	when := time.Now()
	if len(fv.Base) > 0 {
		var date datepicker.CalendarDate
		if err := date.Parse(fv.Base); err != nil {
			return datepicker.Day{}, err
		}
		when = date.Time(datepicker.NewTimeOfDay(0, 0, 0), location(p))
	}
	return p.DayOf(when), nil
}

func splitStep(step string) (op, arg string, err error) {
	op, arg, ok := strings.Cut(step, ":")
	if !ok || len(op) == 0 || len(arg) == 0 {
		return "", "", fmt.Errorf("step %q is not in <op>:<value> form", step)
	}
	return op, arg, nil
}

func stepDay(p datepicker.Picker, arg string) (datepicker.Day, error) {
	var date datepicker.CalendarDate
	if err := date.Parse(arg); err != nil {
		return datepicker.Day{}, err
	}
	return p.DayOf(date.Time(datepicker.NewTimeOfDay(0, 0, 0), location(p))), nil
}

func report(step string, changed bool, state fmt.Stringer) {
	if changed {
		fmt.Printf("%-22s -> %v\n", step, state)
		return
	}
	fmt.Printf("%-22s -> %v (no change)\n", step, state)
}

func pickSingle(ctx context.Context, p datepicker.Picker, base datepicker.Day, steps []string) error {
	logger := ctxlog.Logger(ctx)
	var sel datepicker.Selection
	for _, step := range steps {
		op, arg, err := splitStep(step)
		if err != nil {
			return err
		}
		prior := sel
		switch op {
		case "day":
			day, err := stepDay(p, arg)
			if err != nil {
				return err
			}
			sel = p.SelectDay(prior, day)
		case "hour":
			hour, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			sel = p.SelectHour(base, prior, hour)
		case "minute":
			minute, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			sel = p.SelectMinute(base, prior, minute)
		default:
			return fmt.Errorf("unrecognised step: %v", step)
		}
		logger.Debug("applied step", "step", step, "selection", sel.String())
		report(step, !sel.Equal(prior), sel)
	}
	tb := p.SelectableTimes(base, sel)
	fmt.Printf("selectable hours %v..%v, minutes %v..%v\n", tb.MinHour, tb.MaxHour, tb.MinMinute, tb.MaxMinute)
	return nil
}

func pickRange(ctx context.Context, p datepicker.Picker, base datepicker.Day, steps []string) error {
	logger := ctxlog.Logger(ctx)
	var sel datepicker.RangeSelection
	for _, step := range steps {
		op, arg, err := splitStep(step)
		if err != nil {
			return err
		}
		prior := sel
		switch op {
		case "day":
			day, err := stepDay(p, arg)
			if err != nil {
				return err
			}
			sel = p.SelectRangeDay(prior, day)
		case "preview":
			day, err := stepDay(p, arg)
			if err != nil {
				return err
			}
			fmt.Printf("%-22s -> %v (preview)\n", step, p.Preview(sel, day))
			continue
		case "start-hour", "end-hour", "start-minute", "end-minute":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			switch op {
			case "start-hour":
				sel = p.SelectStartHour(base, prior, n)
			case "end-hour":
				sel = p.SelectEndHour(base, prior, n)
			case "start-minute":
				sel = p.SelectStartMinute(base, prior, n)
			case "end-minute":
				sel = p.SelectEndMinute(base, prior, n)
			}
		default:
			return fmt.Errorf("unrecognised step: %v", step)
		}
		logger.Debug("applied step", "step", step, "selection", sel.String())
		report(step, !sel.Equal(prior), sel)
	}
	start, end := p.SelectableRangeTimes(base, sel)
	fmt.Printf("start: selectable hours %v..%v, minutes %v..%v\n", start.MinHour, start.MaxHour, start.MinMinute, start.MaxMinute)
	fmt.Printf("end: selectable hours %v..%v, minutes %v..%v\n", end.MinHour, end.MaxHour, end.MinMinute, end.MaxMinute)
	return nil
}
