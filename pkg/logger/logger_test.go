package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	log := New(false)
	log.Info("info message")
	log.Debug("debug message")

	w.Close()
	os.Stderr = oldStderr
	io.Copy(&buf, r)

	if !bytes.Contains(buf.Bytes(), []byte("info message")) {
		t.Errorf("expected info message to be logged")
	}
	if bytes.Contains(buf.Bytes(), []byte("debug message")) {
		t.Errorf("expected debug message not to be logged")
	}
}

func TestNewWithWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)
	log.Debug("spawning", "dir", "/tmp/finanza")

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("spawning")) {
		t.Errorf("expected debug message to be logged, got %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("dir=/tmp/finanza")) {
		t.Errorf("expected structured attribute in output, got %q", out)
	}
}

func TestNew_Level(t *testing.T) {
	log := New(true)
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}

	log = New(false)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be disabled")
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)
	ctx := WithContext(context.Background(), log)

	FromContext(ctx).Info("from context")
	if !bytes.Contains(buf.Bytes(), []byte("from context")) {
		t.Errorf("expected logger from context to write to buffer")
	}

	// A bare context still yields a usable logger.
	FromContext(context.Background()).Info("dropped")
}
