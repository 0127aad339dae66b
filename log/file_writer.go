package log

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileHandlerOptions configures a rotating log file.
type FileHandlerOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	JSON       bool
	Level      Level
}

// NewFileHandler returns a handler that writes to a size- and age-rotated
// file, JSON-encoded or logfmt-encoded depending on opts.JSON.
func NewFileHandler(opts FileHandlerOptions) slog.Handler {
	var w io.Writer = &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	if opts.JSON {
		return JSONHandlerWithLevel(w, slog.Level(opts.Level))
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(opts.Level), ReplaceAttr: replaceTime})
}
