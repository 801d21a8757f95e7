package statuslog

import (
	"context"
	"log/slog"

	"glint/internal/term"
)

// ConsoleHandler dispatches records to the interactive console. Plain records
// and records on animation-incapable consoles go through the formatter to the
// default print path; records carrying a Progress back-reference drive an
// in-place animated line instead.
//
// The handler filters at exactly the global level, independent of the
// resolver floor applied at the loggers, so flipping the knob to WARNING
// silences INFO lines on the console while file sinks keep receiving them.
type ConsoleHandler struct {
	console  *term.Console
	resolver *LevelResolver
	fmtr     *Formatter
	attrs    []slog.Attr
}

// NewConsoleHandler builds the dispatcher for console.
func NewConsoleHandler(console *term.Console, resolver *LevelResolver) *ConsoleHandler {
	return &ConsoleHandler{
		console:  console,
		resolver: resolver,
		fmtr:     NewFormatter(console.Colorize()),
	}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.resolver.Global()
}

func (h *ConsoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.resolver.Global() {
		return nil
	}

	var tag Tag
	var progress *Progress
	record.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case KeyTag:
			tag = Tag(attr.Value.String())
		case KeyProgress:
			if p, ok := attr.Value.Any().(*Progress); ok {
				progress = p
			}
		}
		return true
	})

	if progress == nil || !h.console.SupportsAnimation() {
		return h.console.Print(h.fmtr.Format(record.Message, tag))
	}

	// Animated update. The spinner owns the prefix cell, so format the text
	// cell without one.
	message := h.fmtr.Format(record.Message, TagAnimated)
	sp := progress.ensureSpinner(h.console)
	sp.setText(message)

	if tag != TagStatus {
		// Terminal update: wait for the animator to observe the stop signal
		// before writing the static glyph, so a late tick cannot overwrite it.
		sp.stop()
		sp.setPrefix(h.fmtr.Prefix(tag))
	}
	return nil
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *ConsoleHandler) WithGroup(string) slog.Handler {
	// The console renders message text only; grouped attrs surface through
	// the structured sinks.
	return h
}
