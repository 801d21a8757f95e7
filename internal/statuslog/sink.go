package statuslog

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
)

// NewJSONSink returns a handler that writes the full record stream as JSON
// lines, suitable for session log files. The msgtype tag survives as a plain
// string field; the progress back-reference is console-only and is stripped.
func NewJSONSink(w io.Writer, level slog.Leveler) slog.Handler {
	opts := slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Key = "level"
				if level, ok := attr.Value.Any().(slog.Level); ok {
					attr.Value = slog.StringValue(strings.ToLower(levelLabel(level)))
				}
			case slog.MessageKey:
				attr.Key = "msg"
			case KeyProgress:
				return slog.Attr{}
			}
			return attr
		},
	}
	return slog.NewJSONHandler(w, &opts)
}

// WithSessionID wraps base so every record carries a session_id attr, tying
// file sinks back to the interactive session that produced them.
func WithSessionID(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &sessionHandler{base: base, sessionID: sessionID}
}

// FieldSessionID is the structured logging key for session identifiers.
const FieldSessionID = "session_id"

type sessionHandler struct {
	base      slog.Handler
	sessionID string
}

func (h *sessionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *sessionHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String(FieldSessionID, h.sessionID))
	return h.base.Handle(ctx, record)
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionHandler{base: h.base.WithAttrs(attrs), sessionID: h.sessionID}
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	return &sessionHandler{base: h.base.WithGroup(name), sessionID: h.sessionID}
}
