package main

import (
	"log/slog"
	"os"
	"path/filepath"
)

// openLog sends structured logs to path. The terminal belongs to the
// finder, so when the file can't be opened logs are dropped.
func openLog(path string) (*slog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	var closed bool
	return slog.New(handler), func() {
		if !closed {
			closed = true
			f.Close()
		}
	}
}
