package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// Prune removes session files under dir that are older than retentionDays,
// always keeping the keepLast most recent regardless of age. Paths listed in
// exclude (typically the live session) are never removed. A retentionDays of
// 0 or less disables pruning.
//
// Pruning is serialized across processes with a lock file in dir; when
// another process holds the lock, Prune returns without doing anything.
func Prune(dir string, retentionDays, keepLast int, exclude ...string) ([]string, error) {
	if retentionDays <= 0 || strings.TrimSpace(dir) == "" {
		return nil, nil
	}

	lock := flock.New(filepath.Join(dir, ".retention.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire retention lock: %w", err)
	}
	if !locked {
		return nil, nil
	}
	defer func() {
		_ = lock.Unlock()
	}()

	exclusions := make(map[string]struct{}, len(exclude))
	for _, path := range exclude {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			if abs, err := filepath.Abs(trimmed); err == nil {
				exclusions[abs] = struct{}{}
			}
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(filePattern, entry.Name())
		if err != nil || !matched {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if _, skip := exclusions[path]; skip {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: path, modTime: info.ModTime()})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	if keepLast > 0 && len(candidates) > keepLast {
		candidates = candidates[keepLast:]
	} else if keepLast > 0 {
		return nil, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	var removed []string
	for _, c := range candidates {
		if !c.modTime.Before(cutoff) {
			continue
		}
		if err := os.Remove(c.path); err != nil {
			continue
		}
		removed = append(removed, c.path)
	}
	return removed, nil
}
