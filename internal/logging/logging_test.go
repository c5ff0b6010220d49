package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestInitVerbose(t *testing.T) {
	var buf bytes.Buffer
	Init(true, &buf)

	slog.Debug("parsed", "rows", 3)
	if !strings.Contains(buf.String(), "rows=3") {
		t.Errorf("debug record missing: %q", buf.String())
	}
}

func TestInitQuiet(t *testing.T) {
	var buf bytes.Buffer
	Init(false, &buf)

	slog.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written when not verbose: %q", buf.String())
	}
}
