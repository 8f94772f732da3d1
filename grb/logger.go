// SPDX-License-Identifier: MIT
// Package grb: slog-based tracing for kernel calls.

package grb

import (
	"context"
	"io"
	"log/slog"
)

// discardLogger is the default: tracing costs one Enabled check per call.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(1000), // unreachable level
}))

// NewTextLogger creates a human-readable logger suitable for WithLogger.
func NewTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a JSON logger suitable for WithLogger.
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// logCall traces one kernel invocation at Debug level.
func logCall(l *slog.Logger, signature, kernel string, size, unvals, anvals int, m resolvedMask, accum bool, outp OutputControl) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(signature,
		"kernel", kernel,
		"size", size,
		"u_nvals", unvals,
		"a_nvals", anvals,
		"mask", m.String(),
		"accum", accum,
		"outp", outp.String(),
	)
}
