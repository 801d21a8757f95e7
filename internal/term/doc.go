// Package term owns the interactive output surface used by the status
// reporter.
//
// A Console detects whether its writer is an animation- and color-capable
// terminal and maintains a region of in-place updatable status rows at the
// bottom of the screen. Finished lines scroll above the region; each status
// row is split into a prefix cell (spinner glyph or final tag symbol) and a
// text cell that are redrawn independently with ANSI cursor movement.
package term
