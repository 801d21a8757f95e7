// Package statuslog shapes what an interactive command-line session sees
// while long-running jobs execute.
//
// It hands out named loggers with tagged emit operations (info, warning,
// success, failure, one-time variants) and per-job Progress loggers whose
// status lines are throttled and, on animation-capable consoles, redrawn in
// place with a spinner. Records flow through a console dispatcher implemented
// as a slog.Handler, so additional sinks (for example the JSON session file)
// receive the same stream with the console-only metadata stripped.
//
// Obtain loggers through a Registry so every caller shares the same level
// resolution, once-message deduplication, and sink wiring.
package statuslog
