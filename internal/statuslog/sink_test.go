package statuslog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"glint/internal/statuslog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("bad JSON line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestJSONSinkFieldNames(t *testing.T) {
	buf := &bytes.Buffer{}
	registry := statuslog.New(statuslog.Options{
		Extra: []slog.Handler{statuslog.NewJSONSink(buf, slog.LevelDebug)},
	})

	registry.Logger("glint.scan").Info("probing %s", "host")

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("entries = %v", entries)
	}
	entry := entries[0]
	if entry["msg"] != "probing host" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Fatalf("level = %v", entry["level"])
	}
	if entry["logger"] != "glint.scan" {
		t.Fatalf("logger = %v", entry["logger"])
	}
	if entry["msgtype"] != string(statuslog.TagInfo) {
		t.Fatalf("msgtype = %v", entry["msgtype"])
	}
	ts, ok := entry["ts"].(string)
	if !ok {
		t.Fatalf("ts = %v", entry["ts"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("ts %q does not parse as RFC3339: %v", ts, err)
	}
}

func TestJSONSinkCriticalLabel(t *testing.T) {
	buf := &bytes.Buffer{}
	registry := statuslog.New(statuslog.Options{
		Extra: []slog.Handler{statuslog.NewJSONSink(buf, slog.LevelDebug)},
	})

	registry.Logger("glint").Critical("meltdown")

	entries := decodeLines(t, buf)
	if entries[0]["level"] != "critical" {
		t.Fatalf("level = %v", entries[0]["level"])
	}
}

func TestJSONSinkStripsProgressBackReference(t *testing.T) {
	buf := &bytes.Buffer{}
	registry := statuslog.New(statuslog.Options{
		Extra: []slog.Handler{statuslog.NewJSONSink(buf, slog.LevelDebug)},
	})

	registry.Logger("glint").Progress("Job", statuslog.WithStatus("running"))

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("entries = %v", entries)
	}
	if _, ok := entries[0][statuslog.KeyProgress]; ok {
		t.Fatal("progress back-reference leaked into the JSON sink")
	}
	if entries[0]["msgtype"] != string(statuslog.TagStatus) {
		t.Fatalf("msgtype = %v", entries[0]["msgtype"])
	}
}

func TestJSONSinkHonorsItsOwnLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	registry := statuslog.New(statuslog.Options{
		Global: func() *slog.LevelVar { v := new(slog.LevelVar); v.Set(slog.LevelDebug); return v }(),
		Extra:  []slog.Handler{statuslog.NewJSONSink(buf, slog.LevelWarn)},
	})

	log := registry.Logger("glint")
	log.Debug("chatter")
	log.Warning("worth keeping")

	entries := decodeLines(t, buf)
	if len(entries) != 1 || entries[0]["msg"] != "worth keeping" {
		t.Fatalf("entries = %v", entries)
	}
}

func TestWithSessionIDStampsEveryRecord(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := statuslog.WithSessionID(statuslog.NewJSONSink(buf, slog.LevelDebug), "abc123")
	registry := statuslog.New(statuslog.Options{Extra: []slog.Handler{sink}})

	log := registry.Logger("glint")
	log.Info("one")
	log.Warning("two")

	for _, entry := range decodeLines(t, buf) {
		if entry[statuslog.FieldSessionID] != "abc123" {
			t.Fatalf("session_id = %v", entry[statuslog.FieldSessionID])
		}
	}
}

func TestWithSessionIDNilBase(t *testing.T) {
	sink := statuslog.WithSessionID(nil, "abc123")
	if _, ok := sink.(statuslog.NoopHandler); !ok {
		t.Fatalf("handler type = %T, want NoopHandler", sink)
	}
}
