package logger

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestResolveFormatExplicit(t *testing.T) {
	if got := resolveFormat("json", nil); got != FormatJSON {
		t.Errorf("resolveFormat(json) = %v, want FormatJSON", got)
	}
	if got := resolveFormat("text", nil); got != FormatText {
		t.Errorf("resolveFormat(text) = %v, want FormatText", got)
	}
}

func TestResolveFormatAutoFallsBackToJSONForNonTTY(t *testing.T) {
	// nil *os.File and non-terminal files (e.g. a pipe) aren't TTYs.
	if got := resolveFormat("auto", nil); got != FormatJSON {
		t.Errorf("resolveFormat(auto, nil) = %v, want FormatJSON", got)
	}
}

func TestSetupReturnsUsableLogger(t *testing.T) {
	log := Setup("debug", "json", nil)
	if log == nil {
		t.Fatal("Setup returned nil logger")
	}
	log.Debug("test message", "key", "value")
}
