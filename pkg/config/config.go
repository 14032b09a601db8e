// Package config holds the recognized engine options and their defaults,
// mirroring lre.Config from the reference implementation (word_level,
// max_text_len, language, force_concept_size_one) with the public
// max_text_length spelling the interface documents.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ovixiao/lre/pkg/errs"
)

// WordLevel selects whether non-Latin tokens are split into characters.
type WordLevel string

const (
	WordLevelChar WordLevel = "char"
	WordLevelWord WordLevel = "word"
)

// Language selects the tokenizer and text-join rendering. Only Chinese
// is supported, matching the reference's nlp_zh-only dispatch.
type Language string

const LanguageZH Language = "zh"

// Config is the record of recognized options; see spec.md §6.1.
type Config struct {
	MaxTextLength       int       `yaml:"max_text_length"`
	WordLevel           WordLevel `yaml:"word_level"`
	Language            Language  `yaml:"language"`
	ForceConceptSizeOne bool      `yaml:"force_concept_size_one"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		MaxTextLength:       5000,
		WordLevel:           WordLevelChar,
		Language:            LanguageZH,
		ForceConceptSizeOne: true,
	}
}

// Validate rejects unknown word_level/language values and nonsensical
// lengths.
func (c Config) Validate() error {
	switch c.WordLevel {
	case WordLevelChar, WordLevelWord:
	default:
		return fmt.Errorf("%w: unknown word_level %q", errs.Config, c.WordLevel)
	}
	switch c.Language {
	case LanguageZH:
	default:
		return fmt.Errorf("%w: unsupported language %q", errs.Config, c.Language)
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("%w: max_text_length must be positive, got %d", errs.Config, c.MaxTextLength)
	}
	return nil
}

// Load reads a YAML config file, overlaying it on Default(). A path that
// does not exist is not an error: Default() is returned unchanged, since
// the rule directory can be matched against a default configuration
// without any accompanying config file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: reading config %s: %v", errs.IO, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing config %s: %v", errs.Config, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
