package term

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Options overrides console capability detection. The zero value autodetects
// everything from the writer.
type Options struct {
	ForceAnimation   bool
	DisableAnimation bool
	ForceColor       bool
	DisableColor     bool
	// Width caps rendered status rows; 0 autodetects from the terminal, and
	// rows are left untruncated when no width is known.
	Width int
}

// Console is an interactive output surface. It is safe for concurrent use;
// the animator goroutines and the emitting goroutine serialize on one lock,
// and each status row is exclusively owned by the job that allocated it.
type Console struct {
	mu   sync.Mutex
	w    io.Writer
	rows []*StatusLine

	animated bool
	color    bool
	width    int
}

// New builds a console over w. Animation and color default to on only when w
// is a terminal.
func New(w io.Writer, opts Options) *Console {
	tty := writerIsTerminal(w)
	animated := tty
	if opts.ForceAnimation {
		animated = true
	}
	if opts.DisableAnimation {
		animated = false
	}
	color := tty
	if opts.ForceColor {
		color = true
	}
	if opts.DisableColor {
		color = false
	}
	width := opts.Width
	if width <= 0 && tty {
		width = terminalWidth(w)
	}
	if color {
		// go-pretty gates Sprint on a package-level switch that autodetects
		// from os.Stdout, which is wrong for forced color and custom writers.
		text.EnableColors()
	}
	return &Console{w: w, animated: animated, color: color, width: width}
}

func writerIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SupportsAnimation reports whether in-place line updates are possible.
func (c *Console) SupportsAnimation() bool {
	return c.animated
}

// Colorize reports whether output should carry ANSI colors.
func (c *Console) Colorize() bool {
	return c.color
}

// Width reports the detected or configured row width, 0 when unknown.
func (c *Console) Width() int {
	return c.width
}

// Print writes a finished message above the status region. Multi-line
// messages are written as-is; the region is redrawn beneath them.
func (c *Console) Print(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.rows) == 0 {
		_, err := io.WriteString(c.w, message+"\n")
		return err
	}
	var b strings.Builder
	b.WriteString(cursorUp(len(c.rows)))
	b.WriteString("\r\x1b[0J")
	b.WriteString(message)
	b.WriteByte('\n')
	for _, row := range c.rows {
		b.WriteString(row.render(c.width))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(c.w, b.String())
	return err
}

// NewStatusLine appends an in-place updatable row below any existing ones
// and returns its handle. The row belongs to the caller until the console is
// discarded; rows are never reclaimed.
func (c *Console) NewStatusLine() *StatusLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	row := &StatusLine{console: c, index: len(c.rows)}
	c.rows = append(c.rows, row)
	_, _ = io.WriteString(c.w, row.render(c.width)+"\n")
	return row
}

// StatusLine is one console row split into a prefix cell and a text cell.
// Updating either cell redraws the row in place.
type StatusLine struct {
	console *Console
	index   int
	prefix  string
	text    string
}

// SetPrefix replaces the prefix cell and redraws the row.
func (l *StatusLine) SetPrefix(prefix string) {
	l.console.updateRow(l, func() { l.prefix = prefix })
}

// SetText replaces the text cell and redraws the row.
func (l *StatusLine) SetText(text string) {
	l.console.updateRow(l, func() { l.text = text })
}

func (l *StatusLine) render(width int) string {
	line := l.prefix + strings.ReplaceAll(l.text, "\n", " ")
	if width > 0 {
		// ANSI-aware trim keeps escape sequences intact while bounding the
		// visible width, so a redraw never wraps and corrupts the region.
		line = text.Trim(line, width-1)
	}
	return line
}

func (c *Console) updateRow(row *StatusLine, mutate func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate()
	up := len(c.rows) - row.index
	var b strings.Builder
	b.WriteString(cursorUp(up))
	b.WriteString("\r\x1b[2K")
	b.WriteString(row.render(c.width))
	b.WriteByte('\n')
	if down := up - 1; down > 0 {
		b.WriteString("\x1b[")
		b.WriteString(strconv.Itoa(down))
		b.WriteString("B")
	}
	_, _ = io.WriteString(c.w, b.String())
}

func cursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "A"
}
