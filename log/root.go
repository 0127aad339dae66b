package log

import (
	"os"
	"sync"
)

var (
	rootMu     sync.RWMutex
	rootLogger = NewLogger(NewTerminalHandler(os.Stderr, false))
)

// Root returns the current default logger.
func Root() Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return rootLogger
}

// SetDefault installs l as the default logger used by the package-level
// Trace/Debug/Info/Warn/Error/Crit functions.
func SetDefault(l Logger) {
	rootMu.Lock()
	defer rootMu.Unlock()
	rootLogger = l
}

func Trace(msg string, ctx ...any) { Root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { Root().Error(msg, ctx...) }
func Crit(msg string, ctx ...any)  { Root().Crit(msg, ctx...) }
