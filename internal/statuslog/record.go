package statuslog

import (
	"log/slog"
	"strings"
)

// LevelCritical extends the slog scale above Error so the console vocabulary
// stays five levels deep: debug < info < warning < error < critical.
const LevelCritical = slog.LevelError + 4

// Attr keys used to thread console metadata through the sink. Handlers that
// do not recognize them must still render the record sensibly.
const (
	// KeyLogger carries the emitting logger's registry name.
	KeyLogger = "logger"
	// KeyTag carries the message-type tag as a plain string.
	KeyTag = "msgtype"
	// KeyProgress carries the *Progress back-reference on job records. It is
	// stripped before records reach non-console sinks.
	KeyProgress = "status_progress"
	// KeyError carries the error attached by Logger.Exception.
	KeyError = "error"
)

// ParseLevel maps a configuration string onto the slog scale. Unknown values
// fall back to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical", "fatal":
		return LevelCritical
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= LevelCritical:
		return "CRITICAL"
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
