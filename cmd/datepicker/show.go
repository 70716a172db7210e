// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/logging/ctxlog"
)

type showFlags struct {
	commonFlags
	Month    string `subcmd:"month,,'the month to display in 2006-01 format, defaults to the current month'"`
	FirstDay string `subcmd:"first-day,sunday,the weekday on which the displayed weeks start"`
	Windows  bool   `subcmd:"windows,false,list the selectable window of every day below the grid"`
}

func show(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*showFlags)
	ctx = fv.withLogger(ctx)
	p, err := fv.picker(ctx)
	if err != nil {
		return err
	}
	loc := location(p)
	year, month, _ := time.Now().In(loc).Date()
	if len(fv.Month) > 0 {
		when, err := time.ParseInLocation("2006-01", fv.Month, loc)
		if err != nil {
			return err
		}
		year, month = when.Year(), when.Month()
	}
	firstDay, err := datepicker.ParseWeekday(fv.FirstDay)
	if err != nil {
		return err
	}
	weeks := grid.Month(p, year, month, firstDay)
	ctxlog.Logger(ctx).Debug("laid out month", "year", year, "month", month.String(), "weeks", len(weeks))

	out := &strings.Builder{}
	fmt.Fprintf(out, "%v %v (%v)\n", month, year, loc)
	out.WriteString("  W")
	for _, wd := range grid.Weekdays(firstDay) {
		fmt.Fprintf(out, " %4.3s", wd)
	}
	out.WriteByte('\n')
	for _, week := range weeks {
		fmt.Fprintf(out, "%3d", week.Number)
		for _, day := range week.Days {
			marker := ' '
			if day.Disabled {
				marker = '*'
			}
			fmt.Fprintf(out, " %3d%c", day.Start.Day(), marker)
		}
		out.WriteByte('\n')
	}
	if fv.Windows {
		out.WriteByte('\n')
		for _, week := range weeks {
			for _, day := range week.Days {
				if day.Start.Month() != month {
					continue
				}
				fmt.Fprintln(out, day)
			}
		}
	}
	fmt.Print(out.String())
	return nil
}
