// Copyright (c) 2026 slpixe. All rights reserved.

/*
Package logging constructs the application's structured logger.

All output is JSON via [log/slog]. When a log file is configured, entries are
mirrored to a size-rotated file (lumberjack) in addition to stdout, so that
container logs and on-disk logs stay identical.
*/
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/slpixe/py-book/internal/platform/config"
	"github.com/slpixe/py-book/internal/platform/constants"
)

// New builds the application logger from configuration.
//
// # Outputs
//
// Stdout always receives JSON log lines. If cfg.LogFile is set, the same
// lines are also written to that file with size-based rotation. The returned
// closer flushes and closes the rotated file; it is a no-op closer when only
// stdout is in use.
func New(cfg *config.Config) (*slog.Logger, io.Closer) {
	var (
		output io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)

	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 10,
			Compress:   true,
		}
		output = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})

	// Add global context to all log entries.
	logger := slog.New(handler).With(slog.String("app", constants.AppName))

	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
