package statuslog

import (
	"math/rand/v2"
	"sync"
	"time"

	"glint/internal/term"
)

// spinnerInterval is the redraw cadence of the animated glyph. It is
// independent of the status throttle; the animator only reflects the latest
// written text cell.
const spinnerInterval = 100 * time.Millisecond

// Frame sequences for animated lines. One is picked at random per job.
var spinnerFrames = [][]string{
	{"|", "/", "-", "\\"},
	{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	{"◐", "◓", "◑", "◒"},
	{"▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃"},
	{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
	{"◢", "◣", "◤", "◥"},
	{"..", ".o", "oO", "Oo", "o."},
}

// spinner animates the prefix cell of one console status line. Exactly one
// exists per actively animated Progress; it lives until the job reaches its
// terminal state.
type spinner struct {
	line     *term.StatusLine
	frames   []string
	colorize bool

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// ensureSpinner returns the job's spinner, allocating the console line and
// starting the animator on first use.
func (p *Progress) ensureSpinner(console *term.Console) *spinner {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner == nil {
		p.spinner = newSpinner(console)
	}
	return p.spinner
}

func newSpinner(console *term.Console) *spinner {
	s := &spinner{
		line:     console.NewStatusLine(),
		frames:   spinnerFrames[rand.IntN(len(spinnerFrames))],
		colorize: console.Colorize(),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.doneCh)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	frame := 0
	for {
		glyph := s.frames[frame]
		if s.colorize {
			glyph = spinnerColors.Sprint(glyph)
		}
		s.line.SetPrefix("[" + glyph + "] ")
		frame = (frame + 1) % len(s.frames)
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
		}
	}
}

// stop signals the animator and blocks until it has exited.
func (s *spinner) stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	<-s.doneCh
}

func (s *spinner) setText(text string) {
	s.line.SetText(text)
}

func (s *spinner) setPrefix(prefix string) {
	s.line.SetPrefix(prefix)
}
