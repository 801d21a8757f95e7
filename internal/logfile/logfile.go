package logfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// filePattern matches session file names produced by Open.
const filePattern = "glint-*.log"

// Session is one process's JSON log file.
type Session struct {
	// ID is the session identifier stamped onto every record.
	ID string
	// Path is the absolute location of the session file.
	Path string

	file *os.File
}

// Open creates a uniquely named session log file under dir, creating the
// directory when needed.
func Open(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	id := uuid.NewString()
	name := fmt.Sprintf("glint-%s-%s.log", time.Now().UTC().Format("20060102-150405"), id[:8])
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_EXCL, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open session log %s: %w", path, err)
	}
	return &Session{ID: id, Path: path, file: file}, nil
}

// Writer exposes the underlying file for sink wiring.
func (s *Session) Writer() io.Writer {
	return s.file
}

// Close flushes and closes the session file.
func (s *Session) Close() error {
	return s.file.Close()
}
