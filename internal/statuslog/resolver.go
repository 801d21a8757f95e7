package statuslog

import "log/slog"

// LevelResolver computes the effective level for loggers that carry no
// explicit override. Formatting every record at DEBUG granularity is costly,
// so the resolved level is floored at INFO unless the global knob explicitly
// asks for DEBUG.
type LevelResolver struct {
	global *slog.LevelVar
}

// NewLevelResolver wraps the shared global level knob. A nil knob defaults
// to INFO.
func NewLevelResolver(global *slog.LevelVar) *LevelResolver {
	if global == nil {
		global = new(slog.LevelVar)
		global.Set(slog.LevelInfo)
	}
	return &LevelResolver{global: global}
}

// Resolve returns the level a logger filters at. An explicit level always
// wins; otherwise the result is min(global, INFO).
func (r *LevelResolver) Resolve(explicit slog.Level, explicitSet bool) slog.Level {
	if explicitSet {
		return explicit
	}
	if global := r.global.Level(); global < slog.LevelInfo {
		return global
	}
	return slog.LevelInfo
}

// Global reports the currently configured global level.
func (r *LevelResolver) Global() slog.Level {
	return r.global.Level()
}

// SetGlobal updates the global knob for every logger without an explicit
// override and for the console dispatcher.
func (r *LevelResolver) SetGlobal(level slog.Level) {
	r.global.Set(level)
}
