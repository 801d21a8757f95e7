package statuslog

import "strings"

const (
	// indent aligns continuation lines under the first character of the
	// message body, matching the width of a "[x] " prefix.
	indent   = "    "
	nlindent = "\n" + indent
)

// Formatter renders record messages for the interactive console: a tag glyph
// prefix on the first line, continuation lines indented beneath it.
type Formatter struct {
	colorize bool
}

// NewFormatter returns a formatter. Glyphs are colored only when colorize is
// set; the surrounding brackets never are.
func NewFormatter(colorize bool) *Formatter {
	return &Formatter{colorize: colorize}
}

// Prefix returns the rendered line prefix for tag.
func (f *Formatter) Prefix(tag Tag) string {
	switch tag {
	case "":
		return ""
	case TagIndented:
		return indent
	case TagAnimated:
		return ""
	}
	p, ok := tagPrefixes[tag]
	if !ok {
		return "[?] "
	}
	symbol := p.symbol
	if f.colorize {
		symbol = p.colors.Sprint(symbol)
	}
	return "[" + symbol + "] "
}

// Format prepends the tag prefix and re-indents multi-line messages.
// Untagged messages pass through unchanged.
func (f *Formatter) Format(message string, tag Tag) string {
	if tag == "" {
		return message
	}
	return strings.ReplaceAll(f.Prefix(tag)+message, "\n", nlindent)
}
