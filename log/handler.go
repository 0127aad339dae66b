package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var levelColor = map[slog.Level]int{
	slog.Level(LevelTrace): 36, // cyan
	slog.Level(LevelDebug): 34, // blue
	slog.Level(LevelInfo):  32, // green
	slog.Level(LevelWarn):  33, // yellow
	slog.Level(LevelError): 31, // red
	slog.Level(LevelCrit):  35, // magenta
}

// terminalHandler renders log records as a fixed-width level, a
// millisecond timestamp, the message, then key=value attribute pairs, in
// color when color is true.
type terminalHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	color bool
	attrs []slog.Attr
}

// NewTerminalHandler returns a handler at the default Info level, with
// color if useColor is true. It does not check whether out is a terminal.
func NewTerminalHandler(out io.Writer, useColor bool) slog.Handler {
	return NewTerminalHandlerWithLevel(out, LevelInfo, useColor)
}

// NewTerminalHandlerWithLevel is NewTerminalHandler with an explicit
// minimum level.
func NewTerminalHandlerWithLevel(out io.Writer, level Level, useColor bool) slog.Handler {
	return &terminalHandler{
		mu:    new(sync.Mutex),
		out:   out,
		level: slog.Level(level),
		color: useColor,
	}
}

// Colorable wraps out in go-colorable's ANSI-aware writer when out is a
// real terminal, otherwise returns out unchanged.
func Colorable(out *os.File) io.Writer {
	if isatty.IsTerminal(out.Fd()) {
		return colorable.NewColorable(out)
	}
	return out
}

func (h *terminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *terminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	lvl := Level(r.Level).String()
	if h.color {
		if code, ok := levelColor[r.Level]; ok {
			lvl = fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, lvl)
		}
	}
	fmt.Fprintf(h.out, "%-5s [%s] %s", lvl, r.Time.Format("01-02|15:04:05.000"), r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(h.out, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.out, " %s=%v", a.Key, a.Value)
		return true
	})
	fmt.Fprintln(h.out)
	return nil
}

func (h *terminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &cp
}

func (h *terminalHandler) WithGroup(name string) slog.Handler {
	return h
}

// JSONHandler returns a handler that emits one JSON object per record at
// the default Info level.
func JSONHandler(out io.Writer) slog.Handler {
	return JSONHandlerWithLevel(out, slog.LevelInfo)
}

// JSONHandlerWithLevel is JSONHandler with an explicit minimum level.
func JSONHandlerWithLevel(out io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level, ReplaceAttr: replaceTime})
}

// LogfmtHandler returns a handler that emits logfmt-style key=value lines
// at the default Info level.
func LogfmtHandler(out io.Writer) slog.Handler {
	return slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo, ReplaceAttr: replaceTime})
}

func replaceTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
	}
	return a
}
