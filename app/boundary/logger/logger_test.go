package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	l := New(true, dir)

	l.Log("system", "starting")
	l.Log("debug", "Unknown key event: KEY_UNMAPPED_999")
	l.Flush()
	l.Log("system", "stopping")
	l.Flush()

	file, err := os.Open(l.Path())
	if err != nil {
		t.Fatalf("Failed to open log: %v", err)
	}
	defer file.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("Invalid log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[1].Type != "debug" || entries[2].Message != "stopping" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestLoggerDisabled(t *testing.T) {
	dir := t.TempDir()
	l := New(false, dir)

	l.Log("system", "ignored")
	l.Flush()

	if _, err := os.Stat(l.Path()); !os.IsNotExist(err) {
		t.Errorf("Expected no log file when debug mode is off, got %v", err)
	}
}

func TestLoggerFlushesWhenBufferIsFull(t *testing.T) {
	dir := t.TempDir()
	l := New(true, dir)
	l.maxBuffer = 2

	l.Log("event", "one")
	l.Log("event", "two")

	if _, err := os.Stat(l.Path()); err != nil {
		t.Errorf("Expected automatic flush, got %v", err)
	}
}
