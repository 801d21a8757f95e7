package statuslog

import (
	"log/slog"
	"sync"

	"glint/internal/term"
)

// Options describes registry construction parameters.
type Options struct {
	// Console receives interactive output. When nil, records flow only to
	// the Extra handlers.
	Console *term.Console
	// Global is the shared level knob consulted by the resolver and the
	// console dispatcher. A nil value defaults to INFO.
	Global *slog.LevelVar
	// Extra handlers receive every record that passes a logger's effective
	// level, for example a JSON session-file sink. Console-only metadata is
	// delivered as ordinary attrs.
	Extra []slog.Handler
}

// Registry hands out named loggers and owns the process-wide state they
// share: the level resolver, the once-message sets, and the sink.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger

	resolver *LevelResolver
	sink     slog.Handler

	onceInfos    onceSet
	onceWarnings onceSet
}

// New constructs a registry wired to the console dispatcher and any extra
// sinks.
func New(opts Options) *Registry {
	resolver := NewLevelResolver(opts.Global)
	handlers := make([]slog.Handler, 0, len(opts.Extra)+1)
	if opts.Console != nil {
		handlers = append(handlers, NewConsoleHandler(opts.Console, resolver))
	}
	handlers = append(handlers, opts.Extra...)
	return &Registry{
		loggers:  make(map[string]*Logger),
		resolver: resolver,
		sink:     TeeHandler(handlers...),
	}
}

// Logger returns the logger registered under name, creating it on first use.
// Repeated lookups by the same name return the same instance.
func (r *Registry) Logger(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger, ok := r.loggers[name]; ok {
		return logger
	}
	logger := &Logger{name: name, registry: r}
	r.loggers[name] = logger
	return logger
}

// SetGlobalLevel updates the shared level knob.
func (r *Registry) SetGlobalLevel(level slog.Level) {
	r.resolver.SetGlobal(level)
}

// GlobalLevel reports the shared level knob.
func (r *Registry) GlobalLevel() slog.Level {
	return r.resolver.Global()
}

// onceSet is a process-wide set of already rendered messages. Deduplication
// keys on the rendered string, so identical text from unrelated call sites
// collides on purpose.
type onceSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// insert reports whether value was newly added.
func (s *onceSet) insert(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[value]; ok {
		return false
	}
	s.seen[value] = struct{}{}
	return true
}
