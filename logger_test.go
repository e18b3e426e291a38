package uvmap

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs installs a debug-level text logger for the duration of t.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("cells", 4)}).(nopHandler); !ok {
		t.Error("WithAttrs() should stay a nopHandler")
	}
	if _, ok := h.WithGroup("uvmap").(nopHandler); !ok {
		t.Error("WithGroup() should stay a nopHandler")
	}
}

func TestLoggerSilentByDefault(t *testing.T) {
	buf := captureLogs(t)
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
	if _, err := Generate(3, Geometry{Width: 4, Height: 4, CellWidth: 2, CellHeight: 2}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestGenerateLogsAtDebug(t *testing.T) {
	buf := captureLogs(t)

	if _, err := Generate(1, Geometry{Width: 8, Height: 8, CellWidth: 4, CellHeight: 4}); err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"level=DEBUG", "generated map", "width=8", "cells=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestGenerateReverseLogsAtDebug(t *testing.T) {
	buf := captureLogs(t)

	if _, err := GenerateReverse(1, Geometry{Width: 8, Height: 4, CellWidth: 4, CellHeight: 4}, Region{}); err != nil {
		t.Fatalf("GenerateReverse() = %v", err)
	}
	if !strings.Contains(buf.String(), "generated reverse map") {
		t.Errorf("expected reverse generation record, got: %s", buf.String())
	}
}

func TestSetLoggerDuringGeneration(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	g := Geometry{Width: 32, Height: 32, CellWidth: 8, CellHeight: 8}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := Generate(uint32(i), g, WithWorkers(2)); err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("uvmap: generated map", "width", 1920, "height", 1080)
	}
}
