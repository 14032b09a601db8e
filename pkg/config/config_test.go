package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() failed validation: %v", err)
	}
}

func TestValidate_RejectsUnknownWordLevel(t *testing.T) {
	c := Default()
	c.WordLevel = "syllable"
	if err := c.Validate(); err == nil {
		t.Error("expected an error for an unknown word_level")
	}
}

func TestValidate_RejectsNonPositiveMaxLength(t *testing.T) {
	c := Default()
	c.MaxTextLength = 0
	if err := c.Validate(); err == nil {
		t.Error("expected an error for a non-positive max_text_length")
	}
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() of a missing file = %+v, want Default()", cfg)
	}
}

func TestLoad_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "word_level: word\nmax_text_length: 100\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WordLevel != WordLevelWord {
		t.Errorf("WordLevel = %q, want %q", cfg.WordLevel, WordLevelWord)
	}
	if cfg.MaxTextLength != 100 {
		t.Errorf("MaxTextLength = %d, want 100", cfg.MaxTextLength)
	}
	if cfg.Language != LanguageZH {
		t.Errorf("Language = %q, want default %q to survive the overlay", cfg.Language, LanguageZH)
	}
}
