// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package xlog is a minimal dlog.Logger so pkg/forest's callers can log
// structural-maintenance counters at trace level without pkg/forest
// itself depending on cobra, pflag, or any particular log sink.
package xlog

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/datawire/dlib/dlog"
)

// logger is a small io.Writer-backed implementation of dlog.Logger. It
// does not implement dlog.OptimizedLogger; dlog falls back to Log for
// every call, which is fine at the call volumes this package sees.
type logger struct {
	parent *logger
	out    io.Writer
	mu     *sync.Mutex
	lvl    dlog.LogLevel

	fieldKey string
	fieldVal any
}

var _ dlog.Logger = (*logger)(nil)

// New returns a dlog.Logger that writes lvl-and-above lines to out.
func New(out io.Writer, lvl dlog.LogLevel) dlog.Logger {
	return &logger{out: out, mu: &sync.Mutex{}, lvl: lvl}
}

// Helper implements dlog.Logger.
func (l *logger) Helper() {}

// WithField implements dlog.Logger.
func (l *logger) WithField(key string, value any) dlog.Logger {
	return &logger{parent: l, out: l.out, mu: l.mu, lvl: l.lvl, fieldKey: key, fieldVal: value}
}

// Log implements dlog.Logger.
func (l *logger) Log(lvl dlog.LogLevel, msg string) {
	if lvl > l.lvl {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %-5s %s%s\n", time.Now().Format("15:04:05.000"), levelName(lvl), msg, l.fields())
}

func (l *logger) fields() string {
	if l.parent == nil {
		return ""
	}
	return fmt.Sprintf(" %s=%v", l.fieldKey, l.fieldVal) + l.parent.fields()
}

func levelName(lvl dlog.LogLevel) string {
	switch lvl {
	case dlog.LogLevelError:
		return "ERR"
	case dlog.LogLevelWarn:
		return "WARN"
	case dlog.LogLevelInfo:
		return "INFO"
	case dlog.LogLevelDebug:
		return "DEBUG"
	case dlog.LogLevelTrace:
		return "TRACE"
	default:
		return "?"
	}
}

// TraceCounters logs a snapshot of named step counters (e.g. a Stats
// value's fields) under op at trace level, skipping zero counters so a
// quiet operation produces no line.
func TraceCounters(l dlog.Logger, op string, counters map[string]uint64) {
	names := make([]string, 0, len(counters))
	for name, v := range counters {
		if v != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)
	lg := l.WithField("op", op)
	for _, name := range names {
		lg = lg.WithField(name, counters[name])
	}
	lg.Log(dlog.LogLevelTrace, "step counters")
}
