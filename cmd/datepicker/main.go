// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/pickerconfig"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

type commonFlags struct {
	Config  string `subcmd:"config,,yaml file containing the picker configuration"`
	Verbose bool   `subcmd:"verbose,false,log progress to stderr as json"`
}

func init() {
	showFlagSet := subcmd.NewFlagSet()
	showFlagSet.MustRegisterFlagStruct(&showFlags{}, nil, nil)
	pickFlagSet := subcmd.NewFlagSet()
	pickFlagSet.MustRegisterFlagStruct(&pickFlags{}, nil, nil)

	showCmd := subcmd.NewCommand("show", showFlagSet, show, subcmd.WithoutArguments())
	showCmd.Document("display a month as a grid of weeks with disabled days marked")

	pickCmd := subcmd.NewCommand("pick", pickFlagSet, pick)
	pickCmd.Document("replay a sequence of picks and print the selection after each step", "<step>+")

	cmdSet = subcmd.NewCommandSet(showCmd, pickCmd)
	cmdSet.Document(`interact with a date/time picker from the command line.

Steps for the pick command take the form <op>:<value>, eg. day:2024-01-08,
hour:9 or minute:30. With --range the hour and minute ops address either
end of the range, as in start-hour:9 or end-minute:45, and preview:<date>
shows the range that picking that day would produce without committing it.
Picks that the configuration disallows leave the selection unchanged.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func (cf commonFlags) withLogger(ctx context.Context) context.Context {
	if !cf.Verbose {
		return ctx
	}
	return ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
}

func (cf commonFlags) picker(ctx context.Context) (datepicker.Picker, error) {
	if len(cf.Config) == 0 {
		return datepicker.Picker{}, nil
	}
	cfg, err := pickerconfig.ParseConfigFile(ctx, cf.Config)
	if err != nil {
		return datepicker.Picker{}, err
	}
	ctxlog.Logger(ctx).Debug("loaded picker configuration", "config", cf.Config)
	return cfg.Picker()
}

func location(p datepicker.Picker) *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
