package statuslog

import "github.com/jedib0t/go-pretty/v6/text"

// Tag identifies the kind of message a record carries. The console formatter
// selects a line prefix from it; sinks that do not understand tags still
// receive a well-formed record and render it through their default path.
type Tag string

const (
	TagStatus      Tag = "status"
	TagSuccess     Tag = "success"
	TagFailure     Tag = "failure"
	TagDebug       Tag = "debug"
	TagInfo        Tag = "info"
	TagWarning     Tag = "warning"
	TagError       Tag = "error"
	TagException   Tag = "exception"
	TagCritical    Tag = "critical"
	TagInfoOnce    Tag = "info_once"
	TagWarningOnce Tag = "warning_once"

	// TagIndented renders with a plain four-space indent and no glyph.
	TagIndented Tag = "indented"

	// TagAnimated suppresses the prefix entirely; the dispatcher owns the
	// glyph cell on animated lines.
	TagAnimated Tag = "animated"
)

type tagPrefix struct {
	symbol string
	colors text.Colors
}

// The uncolored symbols are part of the output contract; colors apply only
// when the console reports color support.
var tagPrefixes = map[Tag]tagPrefix{
	TagStatus:      {"x", text.Colors{text.FgMagenta}},
	TagSuccess:     {"+", text.Colors{text.Bold, text.FgGreen}},
	TagFailure:     {"-", text.Colors{text.Bold, text.FgRed}},
	TagDebug:       {"DEBUG", text.Colors{text.Bold, text.FgRed}},
	TagInfo:        {"*", text.Colors{text.Bold, text.FgBlue}},
	TagWarning:     {"!", text.Colors{text.Bold, text.FgYellow}},
	TagError:       {"ERROR", text.Colors{text.BgRed, text.FgWhite}},
	TagException:   {"ERROR", text.Colors{text.BgRed, text.FgWhite}},
	TagCritical:    {"CRITICAL", text.Colors{text.BgRed, text.FgWhite}},
	TagInfoOnce:    {"*", text.Colors{text.Bold, text.FgBlue}},
	TagWarningOnce: {"!", text.Colors{text.Bold, text.FgYellow}},
}

// spinnerColors styles the cycling glyph on animated lines.
var spinnerColors = text.Colors{text.Bold, text.FgBlue}

// Tags lists the fixed message-type vocabulary in display order.
func Tags() []Tag {
	return []Tag{
		TagStatus, TagSuccess, TagFailure, TagDebug, TagInfo, TagWarning,
		TagError, TagException, TagCritical, TagInfoOnce, TagWarningOnce,
		TagIndented,
	}
}

// Symbol returns the uncolored glyph for tag, empty when the tag has none.
func Symbol(tag Tag) string {
	if p, ok := tagPrefixes[tag]; ok {
		return p.symbol
	}
	return ""
}
