package logging

import (
	"io"
	"log/slog"
)

// Init installs the default slog logger writing text records to w.
// Verbose enables debug output.
func Init(verbose bool, w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
