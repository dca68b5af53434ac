package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	orig, origLogger, origLevel := output, log.Logger, zerolog.GlobalLevel()
	output = buf
	t.Cleanup(func() {
		output = orig
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})
	return buf
}

func TestInitJSON(t *testing.T) {
	buf := captureOutput(t)

	Init("warn", "json")
	log.Info().Msg("dropped")
	log.Warn().Str("symbol", "AAPL").Msg("kept")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "kept" || line["symbol"] != "AAPL" || line["level"] != "warn" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestInitUnknownLevelDefaultsToInfo(t *testing.T) {
	captureOutput(t)

	Init("verbose", "json")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}
}

func TestInitConsole(t *testing.T) {
	buf := captureOutput(t)

	Init("debug", "console")
	log.Debug().Msg("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}
