// Package logfile manages per-session JSON log files and their retention.
//
// Each interactive run opens one uniquely named session file that the JSON
// sink streams into, and prunes expired sessions on shutdown. Pruning takes a
// directory-level lock so concurrent runs sharing a log directory never race
// over deletions.
package logfile
