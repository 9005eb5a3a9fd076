package sr3d

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger is called.
var discard = slog.New(slog.DiscardHandler)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(discard)
}

// SetLogger installs the logger shared by sr3d and internal/obj.
// Passing nil silences logging again, which is also the default.
// Render calls made with WithLogger use their own logger instead.
//
// SetLogger is safe for concurrent use.
//
// Records by level:
//   - [slog.LevelDebug]: "face culled" per skipped face, "bmp written"
//   - [slog.LevelInfo]: "render complete" with face and triangle counts
//   - [slog.LevelWarn]: "obj: statement ignored" for unsupported OBJ lines
//
// Example:
//
//	sr3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	pkgLogger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
