package statuslog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func (h *captureHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.records))
	for _, record := range h.records {
		out = append(out, record.Message)
	}
	return out
}

func (h *captureHandler) tags() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.records))
	for _, record := range h.records {
		tag := ""
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == KeyTag {
				tag = attr.Value.String()
			}
			return true
		})
		out = append(out, tag)
	}
	return out
}

func newCaptureRegistry() (*Registry, *captureHandler) {
	capture := &captureHandler{}
	registry := New(Options{Extra: []slog.Handler{capture}})
	return registry, capture
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProgressInitialEmission(t *testing.T) {
	registry, capture := newCaptureRegistry()
	registry.Logger("job").Progress("Trying", WithStatus("connecting"))

	msgs := capture.messages()
	if !equalStrings(msgs, []string{"Trying: connecting"}) {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	tags := capture.tags()
	if !equalStrings(tags, []string{string(TagStatus)}) {
		t.Fatalf("unexpected tags: %v", tags)
	}
}

func TestProgressEmptyBaseUsesBareStatus(t *testing.T) {
	registry, capture := newCaptureRegistry()
	registry.Logger("job").Progress("", WithStatus("connecting"))

	msgs := capture.messages()
	if !equalStrings(msgs, []string{"connecting"}) {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestProgressStatusThrottle(t *testing.T) {
	registry, capture := newCaptureRegistry()
	p := registry.Logger("job").Progress("Working")

	current := time.Now()
	p.now = func() time.Time { return current }

	p.Status("step %d", 1)
	current = current.Add(50 * time.Millisecond)
	p.Status("step %d", 2)
	current = current.Add(60 * time.Millisecond)
	p.Status("step %d", 3)

	want := []string{"Working", "Working: step 1", "Working: step 3"}
	if msgs := capture.messages(); !equalStrings(msgs, want) {
		t.Fatalf("messages = %v, want %v", msgs, want)
	}
}

func TestProgressImmediateStatusAfterCreation(t *testing.T) {
	registry, capture := newCaptureRegistry()
	p := registry.Logger("job").Progress("Working")
	// The initial emission must not consume the throttle window.
	p.Status("right away")

	want := []string{"Working", "Working: right away"}
	if msgs := capture.messages(); !equalStrings(msgs, want) {
		t.Fatalf("messages = %v, want %v", msgs, want)
	}
}

func TestProgressTerminalIdempotence(t *testing.T) {
	registry, capture := newCaptureRegistry()
	p := registry.Logger("job").Progress("Working")

	p.Success("")
	if !p.Stopped() {
		t.Fatal("expected progress to be stopped")
	}

	p.Status("late update")
	p.Success("again")
	p.Failure("too late")

	want := []string{"Working", "Working: Done"}
	if msgs := capture.messages(); !equalStrings(msgs, want) {
		t.Fatalf("messages = %v, want %v", msgs, want)
	}
	if p.status != "Done" {
		t.Fatalf("stored status = %q, want Done", p.status)
	}
}

func TestProgressFailureAlwaysEmits(t *testing.T) {
	registry, capture := newCaptureRegistry()
	p := registry.Logger("job").Progress("Working")

	current := time.Now()
	p.now = func() time.Time { return current }
	p.Status("step 1")
	// Inside the throttle window, but terminal updates always emit.
	p.Failure("gave up")

	want := []string{"Working", "Working: step 1", "Working: gave up"}
	if msgs := capture.messages(); !equalStrings(msgs, want) {
		t.Fatalf("messages = %v, want %v", msgs, want)
	}
	tags := capture.tags()
	if tags[len(tags)-1] != string(TagFailure) {
		t.Fatalf("final tag = %q, want failure", tags[len(tags)-1])
	}
}

func TestProgressLevel(t *testing.T) {
	registry, capture := newCaptureRegistry()
	registry.Logger("job").Progress("Working", WithLevel(slog.LevelDebug))

	// DEBUG records are dropped unless the global knob asks for them.
	if msgs := capture.messages(); len(msgs) != 0 {
		t.Fatalf("expected no messages, got %v", msgs)
	}

	registry.SetGlobalLevel(slog.LevelDebug)
	registry.Logger("job").Progress("Verbose", WithLevel(slog.LevelDebug))
	if msgs := capture.messages(); !equalStrings(msgs, []string{"Verbose"}) {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestRunResolvesSuccess(t *testing.T) {
	registry, capture := newCaptureRegistry()
	err := registry.Logger("job").Run("Scanning", func(p *Progress) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	tags := capture.tags()
	want := []string{string(TagStatus), string(TagSuccess)}
	if !equalStrings(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	msgs := capture.messages()
	if msgs[len(msgs)-1] != "Scanning: Done" {
		t.Fatalf("final message = %q", msgs[len(msgs)-1])
	}
}

func TestRunResolvesFailureOnError(t *testing.T) {
	registry, capture := newCaptureRegistry()
	wantErr := errors.New("boom")
	err := registry.Logger("job").Run("Scanning", func(p *Progress) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run returned %v, want %v", err, wantErr)
	}

	tags := capture.tags()
	want := []string{string(TagStatus), string(TagFailure)}
	if !equalStrings(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
}

func TestRunResolvesFailureOnPanic(t *testing.T) {
	registry, capture := newCaptureRegistry()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = registry.Logger("job").Run("Scanning", func(p *Progress) error {
			panic("unwind")
		})
	}()

	tags := capture.tags()
	want := []string{string(TagStatus), string(TagFailure)}
	if !equalStrings(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	msgs := capture.messages()
	if msgs[len(msgs)-1] != "Scanning: Failed" {
		t.Fatalf("final message = %q", msgs[len(msgs)-1])
	}
}

func TestBugPanicsAfterEmitting(t *testing.T) {
	registry, capture := newCaptureRegistry()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected Bug to panic")
			}
		}()
		registry.Logger("job").Bug("impossible state %d", 7)
	}()

	if msgs := capture.messages(); !equalStrings(msgs, []string{"impossible state 7"}) {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestFatalEmitsThenExits(t *testing.T) {
	registry, capture := newCaptureRegistry()

	exitCode := -1
	restore := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = restore }()

	registry.Logger("job").Fatal("cannot continue")

	if exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode)
	}
	if msgs := capture.messages(); !equalStrings(msgs, []string{"cannot continue"}) {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}
