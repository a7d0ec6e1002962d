// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package xlog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/require"

	"github.com/jonturner53/grafalgo-go/internal/xlog"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var out strings.Builder
	ctx := dlog.WithLogger(context.Background(), xlog.New(&out, dlog.LogLevelInfo))
	dlog.Trace(ctx, "should not appear")
	require.Equal(t, "", out.String())
	dlog.Info(ctx, "should appear")
	require.Contains(t, out.String(), "should appear")
}

func TestLoggerWithFieldChaining(t *testing.T) {
	var out strings.Builder
	l := xlog.New(&out, dlog.LogLevelTrace)
	l.WithField("op", "rerankUp").WithField("rotations", 3).Log(dlog.LogLevelTrace, "done")
	got := out.String()
	require.Contains(t, got, "done")
	require.Contains(t, got, "op=rerankUp")
	require.Contains(t, got, "rotations=3")
}

func TestTraceCountersSkipsAllZero(t *testing.T) {
	var out strings.Builder
	l := xlog.New(&out, dlog.LogLevelTrace)
	xlog.TraceCounters(l, "meld", map[string]uint64{"steps": 0, "rotations": 0})
	require.Equal(t, "", out.String())

	xlog.TraceCounters(l, "meld", map[string]uint64{"steps": 4, "rotations": 0})
	require.Contains(t, out.String(), "op=meld")
	require.Contains(t, out.String(), "steps=4")
	require.NotContains(t, out.String(), "rotations=")
}

func TestLevelFlagSetAndString(t *testing.T) {
	var f xlog.LevelFlag
	require.NoError(t, f.Set("trace"))
	require.Equal(t, dlog.LogLevelTrace, f.Level)
	require.Equal(t, "trace", f.String())
	require.Error(t, f.Set("bogus"))
}
