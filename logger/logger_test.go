package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { level.Set(slog.LevelInfo) })

	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		err := SetLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("SetLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && level.Level() != tt.want {
			t.Errorf("SetLevel(%q) level = %v, want %v", tt.name, level.Level(), tt.want)
		}
	}
}

func TestLoggerWritesJSONAtLevel(t *testing.T) {
	t.Cleanup(func() { level.Set(slog.LevelInfo) })
	if err := SetLevel("info"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	log := NewWithWriter(&buf)
	log.Debug("hidden")
	log.Info("candle lit", "elapsed", "0s")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not a single JSON line: %q: %v", buf.String(), err)
	}
	if entry["msg"] != "candle lit" || entry["elapsed"] != "0s" {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["source"]; !ok {
		t.Error("entry has no source location")
	}
}
