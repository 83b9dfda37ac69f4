package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	f := Default()
	if !f.EnhancedForLoop || !f.WeekdayField {
		t.Fatalf("defaults must enable both features: %+v", f)
	}
}

func TestDecodeKeepsDefaultsForMissingKeys(t *testing.T) {
	f, err := Decode([]byte("[features]\nweekday = false\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.WeekdayField {
		t.Fatalf("weekday should be disabled")
	}
	if !f.EnhancedForLoop {
		t.Fatalf("enhanced-for-loop should keep its default")
	}
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f != Default() {
		t.Fatalf("empty document must give defaults, got %+v", f)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode([]byte("[features]\nweekdays = true\n"))
	if err == nil || !strings.Contains(err.Error(), "features.weekdays") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode([]byte("[features\n")); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feel.toml")
	if err := os.WriteFile(path, []byte("[features]\nenhanced-for-loop = false\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.EnhancedForLoop || !f.WeekdayField {
		t.Fatalf("unexpected features %+v", f)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
