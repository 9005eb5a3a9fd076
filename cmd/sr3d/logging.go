package main

import (
	"io"
	"log/slog"

	"github.com/gogpu/sr3d"
)

// setupLogging routes both the command's and the library's logs to w.
func setupLogging(w io.Writer, level slog.Level) {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	sr3d.SetLogger(l)
}
