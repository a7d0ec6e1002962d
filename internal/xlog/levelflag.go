// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package xlog

import (
	"fmt"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/pflag"
)

// LevelFlag is a pflag.Value for a dlog.LogLevel, for a "--verbosity"
// command-line flag.
type LevelFlag struct {
	Level dlog.LogLevel
}

var _ pflag.Value = (*LevelFlag)(nil)

func (f *LevelFlag) Type() string { return "loglevel" }

func (f *LevelFlag) Set(s string) error {
	switch strings.ToLower(s) {
	case "error":
		f.Level = dlog.LogLevelError
	case "warn", "warning":
		f.Level = dlog.LogLevelWarn
	case "info":
		f.Level = dlog.LogLevelInfo
	case "debug":
		f.Level = dlog.LogLevelDebug
	case "trace":
		f.Level = dlog.LogLevelTrace
	default:
		return fmt.Errorf("invalid log level: %q", s)
	}
	return nil
}

func (f *LevelFlag) String() string {
	switch f.Level {
	case dlog.LogLevelError:
		return "error"
	case dlog.LogLevelWarn:
		return "warn"
	case dlog.LogLevelInfo:
		return "info"
	case dlog.LogLevelDebug:
		return "debug"
	case dlog.LogLevelTrace:
		return "trace"
	default:
		return "info"
	}
}
