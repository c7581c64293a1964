package reader

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/keycaster/app/entity/core"
)

func TestStandardLineReader_ReadLine(t *testing.T) {
	r := NewStandardLineReader(strings.NewReader("first\r\n\nsecond\nlast"))

	want := []string{"first", "", "second", "last"}
	for _, w := range want {
		line, err := r.ReadLine()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(line) != w {
			t.Errorf("ReadLine() = %q, want %q", line, w)
		}
	}

	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestStandardLineReader_Close(t *testing.T) {
	src := &closeRecorder{Reader: strings.NewReader("")}
	r := NewStandardLineReader(src)
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !src.closed {
		t.Error("underlying reader was not closed")
	}

	// Closer でない入力は何もしない
	if err := NewStandardLineReader(strings.NewReader("")).Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStartWatcher_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := core.NewMockLogger(ctrl)
	if _, err := StartWatcher(context.Background(), "   ", logger); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestStartWatcher_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := core.NewMockLogger(ctrl)
	if _, err := StartWatcher(context.Background(), "keycaster-no-such-watcher", logger); err == nil {
		t.Error("expected start error")
	}
}

func TestWatcherReader_ReadsStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := core.NewMockLogger(ctrl)
	logger.EXPECT().Log("system", gomock.Any()).Times(2)

	w, err := StartWatcher(context.Background(), "echo hello", logger)
	if err != nil {
		t.Skipf("echo not available: %v", err)
	}

	line, err := w.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(line) != "hello" {
		t.Errorf("ReadLine() = %q, want %q", line, "hello")
	}
	if _, err := w.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	// 2回目の Close は何もしない
	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
