package statuslog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// swapped in tests
var osExit = os.Exit

// Logger is the leveled emit facade handed out by a Registry. All loggers
// from the same registry share its sink, level resolution, and once-message
// sets, so a Logger may be held and used from any goroutine.
type Logger struct {
	name     string
	registry *Registry

	mu          sync.Mutex
	explicit    slog.Level
	explicitSet bool
}

// Name returns the registry name this logger was created under.
func (l *Logger) Name() string {
	return l.name
}

// Enabled reports whether a record at level would currently be emitted.
func (l *Logger) Enabled(level slog.Level) bool {
	l.mu.Lock()
	explicit, set := l.explicit, l.explicitSet
	l.mu.Unlock()
	return level >= l.registry.resolver.Resolve(explicit, set)
}

// SetLevel pins an explicit level on this logger. The global knob no longer
// applies to it until ClearLevel is called.
func (l *Logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	l.explicit = level
	l.explicitSet = true
	l.mu.Unlock()
}

// ClearLevel removes the explicit level and returns the logger to resolver
// policy.
func (l *Logger) ClearLevel() {
	l.mu.Lock()
	l.explicitSet = false
	l.mu.Unlock()
}

func (l *Logger) emit(level slog.Level, tag Tag, progress *Progress, message string, extra ...slog.Attr) {
	if !l.Enabled(level) {
		return
	}
	record := slog.NewRecord(time.Now(), level, message, 0)
	attrs := make([]slog.Attr, 0, 3+len(extra))
	attrs = append(attrs, slog.String(KeyLogger, l.name))
	if tag != "" {
		attrs = append(attrs, slog.String(KeyTag, string(tag)))
	}
	if progress != nil {
		attrs = append(attrs, slog.Any(KeyProgress, progress))
	}
	attrs = append(attrs, extra...)
	record.AddAttrs(attrs...)
	_ = l.registry.sink.Handle(context.Background(), record)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(slog.LevelDebug, TagDebug, nil, fmt.Sprintf(format, args...))
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	l.emit(slog.LevelInfo, TagInfo, nil, fmt.Sprintf(format, args...))
}

// Warning logs a warning message.
func (l *Logger) Warning(format string, args ...any) {
	l.emit(slog.LevelWarn, TagWarning, nil, fmt.Sprintf(format, args...))
}

// Critical logs a critical message.
func (l *Logger) Critical(format string, args ...any) {
	l.emit(LevelCritical, TagCritical, nil, fmt.Sprintf(format, args...))
}

// Success logs that something went right.
func (l *Logger) Success(format string, args ...any) {
	l.emit(slog.LevelInfo, TagSuccess, nil, fmt.Sprintf(format, args...))
}

// Failure logs that something went wrong without treating it as fatal.
func (l *Logger) Failure(format string, args ...any) {
	l.emit(slog.LevelInfo, TagFailure, nil, fmt.Sprintf(format, args...))
}

// Indented logs a message without a line prefix, aligned under tagged lines.
func (l *Logger) Indented(format string, args ...any) {
	l.emit(slog.LevelInfo, TagIndented, nil, fmt.Sprintf(format, args...))
}

// InfoOnce logs an info message at most once per process lifetime, keyed by
// the fully rendered string across all loggers of the registry.
func (l *Logger) InfoOnce(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if !l.registry.onceInfos.insert(message) {
		return
	}
	l.emit(slog.LevelInfo, TagInfoOnce, nil, message)
}

// WarningOnce logs a warning at most once per process lifetime, keyed by the
// fully rendered string across all loggers of the registry.
func (l *Logger) WarningOnce(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if !l.registry.onceWarnings.insert(message) {
		return
	}
	l.emit(slog.LevelWarn, TagWarningOnce, nil, message)
}

// Errorf logs an error-level record and returns an *Error carrying the
// rendered message. Callers must treat the condition as fatal to the current
// operation; the call never succeeds silently.
func (l *Logger) Errorf(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	l.emit(slog.LevelError, TagError, nil, message)
	return &Error{Message: message}
}

// Exception logs err with surrounding context and hands it back unchanged so
// the caller can keep propagating it. The error is attached as a structured
// attr for non-console sinks and appended to the console text.
func (l *Logger) Exception(err error, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	if err != nil {
		l.emit(slog.LevelError, TagException, nil, message+": "+err.Error(), slog.Any(KeyError, err))
		return err
	}
	l.emit(slog.LevelError, TagException, nil, message)
	return nil
}

// Bug reports an internal invariant violation. It emits a critical record and
// panics; it never returns.
func (l *Logger) Bug(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	l.emit(LevelCritical, TagCritical, nil, message)
	panic("bug: " + message)
}

// Fatal emits a critical record and terminates the process.
func (l *Logger) Fatal(format string, args ...any) {
	l.emit(LevelCritical, TagCritical, nil, fmt.Sprintf(format, args...))
	osExit(1)
}

// Log emits an untagged record at an arbitrary level. The console renders it
// through the default path, with no prefix.
func (l *Logger) Log(level slog.Level, format string, args ...any) {
	l.emit(level, "", nil, fmt.Sprintf(format, args...))
}
