package sr3d

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}

	c := newTestCanvas(t, 4, 4)
	if err := c.SaveBMP(filepath.Join(t.TempDir(), "log.bmp")); err != nil {
		t.Fatalf("SaveBMP() error = %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "bmp written") || !strings.Contains(out, "bytes=102") {
		t.Errorf("expected a bmp written record with bytes=102, got: %s", out)
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestWithLogger_OverridesPackageLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var pkgBuf, renderBuf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&pkgBuf, nil)))
	own := slog.New(slog.NewTextHandler(&renderBuf, nil))

	if _, err := Render(&recorder{}, squareMesh(), WithLogger(own)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(renderBuf.String(), "render complete") {
		t.Errorf("per-render logger got: %q", renderBuf.String())
	}
	if pkgBuf.Len() != 0 {
		t.Errorf("package logger should be bypassed, got: %q", pkgBuf.String())
	}

	// A nil per-render logger falls back to the package logger.
	if _, err := Render(&recorder{}, squareMesh(), WithLogger(nil)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(pkgBuf.String(), "render complete") {
		t.Errorf("package logger got: %q", pkgBuf.String())
	}
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if l := Logger(); l == nil {
				t.Error("Logger() returned nil during concurrent access")
			} else {
				l.Debug("face culled", "face", 1)
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

// BenchmarkLogger_DisabledFaceRecord measures the per-face debug call made
// for every culled face when logging is off.
func BenchmarkLogger_DisabledFaceRecord(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("face culled", "face", 7)
	}
}
