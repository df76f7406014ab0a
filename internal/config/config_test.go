package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/govalues/numeral"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Base: 10, Lang: "en", LogLevel: "info", Seed: 0}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NUMSYS_BASE", "16")
	t.Setenv("NUMSYS_LANG", "ru")
	t.Setenv("NUMSYS_LOG_LEVEL", "debug")
	t.Setenv("NUMSYS_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Base: 16, Lang: "ru", LogLevel: "debug", Seed: 42}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
	level, err := cfg.Level()
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	if level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed base", func(t *testing.T) {
		t.Setenv("NUMSYS_BASE", "sixteen")
		_, err := Load()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env prefix, got %v", err)
		}
	})

	t.Run("base out of range", func(t *testing.T) {
		t.Setenv("NUMSYS_BASE", "37")
		_, err := Load()
		if !errors.Is(err, numeral.ErrInvalidBase) {
			t.Fatalf("expected invalid base, got %v", err)
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("NUMSYS_LOG_LEVEL", "loud")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("negative seed", func(t *testing.T) {
		t.Setenv("NUMSYS_SEED", "-1")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})
}
