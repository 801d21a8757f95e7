package statuslog

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// statusInterval is the minimum spacing between accepted status updates.
// Updates landing inside the window are dropped, never queued.
const statusInterval = 100 * time.Millisecond

// Progress tracks one running job. Logger.Progress creates it and emits the
// initial status record; the job stays updatable through Status until Success
// or Failure flips it into its terminal state, after which every operation is
// a no-op.
//
// On animation-capable consoles the dispatcher attaches a spinner to the
// job's console line; reaching the terminal state stops the spinner and
// writes the final static glyph.
type Progress struct {
	logger *Logger
	level  slog.Level
	base   string

	mu      sync.Mutex
	status  string
	stopped bool
	last    time.Time
	now     func() time.Time

	spinner *spinner
}

// ProgressOption adjusts how Logger.Progress builds the job logger.
type ProgressOption func(*Progress)

// WithStatus sets the first status text emitted alongside the base message.
func WithStatus(format string, args ...any) ProgressOption {
	return func(p *Progress) {
		p.status = fmt.Sprintf(format, args...)
	}
}

// WithLevel overrides the level progress records are emitted at. The default
// is INFO.
func WithLevel(level slog.Level) ProgressOption {
	return func(p *Progress) {
		p.level = level
	}
}

// Progress creates a job logger bound to l and emits its initial status
// record.
func (l *Logger) Progress(message string, opts ...ProgressOption) *Progress {
	p := &Progress{
		logger: l,
		level:  slog.LevelInfo,
		base:   message,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.emit(TagStatus, p.status)
	// Creating a job and immediately updating its status is the common
	// pattern, so the initial emission does not consume the throttle window.
	p.mu.Lock()
	p.last = time.Time{}
	p.mu.Unlock()
	return p
}

// Run executes fn under a progress logger and resolves it on every exit
// path: Success when fn returns nil, Failure when it returns an error or
// panics. A panic is re-raised after the failure record is emitted, which
// guarantees spinner teardown even on unwinding stacks.
func (l *Logger) Run(message string, fn func(*Progress) error) (err error) {
	p := l.Progress(message)
	defer func() {
		if r := recover(); r != nil {
			p.Failure("")
			panic(r)
		}
		if err != nil {
			p.Failure("")
		} else {
			p.Success("")
		}
	}()
	err = fn(p)
	return err
}

// Status records a new status for the running job. Calls landing inside the
// throttle window are silently dropped; calls after the terminal state are
// no-ops.
func (p *Progress) Status(format string, args ...any) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	now := p.now()
	if now.Sub(p.last) <= statusInterval {
		p.mu.Unlock()
		return
	}
	p.last = now
	status := fmt.Sprintf(format, args...)
	p.status = status
	p.mu.Unlock()
	p.emit(TagStatus, status)
}

// Success marks the job done and stops any animation. An empty format
// renders as "Done". The first terminal call always emits, regardless of
// throttling; later calls are no-ops.
func (p *Progress) Success(format string, args ...any) {
	p.finish(TagSuccess, "Done", format, args...)
}

// Failure marks the job failed and stops any animation. An empty format
// renders as "Failed".
func (p *Progress) Failure(format string, args ...any) {
	p.finish(TagFailure, "Failed", format, args...)
}

// Stopped reports whether the job has reached its terminal state.
func (p *Progress) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

func (p *Progress) finish(tag Tag, fallback, format string, args ...any) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	status := fallback
	if format != "" {
		status = fmt.Sprintf(format, args...)
	}
	p.status = status
	p.mu.Unlock()
	p.emit(tag, status)
}

// emit composes "<base>: <status>" (bare status when base is empty) and
// forwards it through the owning logger with a back-reference to p. Callers
// must not hold p.mu: the dispatcher takes it when attaching the spinner.
func (p *Progress) emit(tag Tag, status string) {
	message := p.base
	if message != "" && status != "" {
		message += ": "
	}
	message += status
	p.logger.emit(p.level, tag, p, message)
}
