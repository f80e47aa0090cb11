package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if DAYGRID_CONFIG is set
//  3. env (prefix DAYGRID_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("DAYGRID_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DAYGRID_OUTPUT_DIR, DAYGRID_TIMEZONE_OFFSET, ...
	// Map env keys like DAYGRID_OUTPUT_DIR -> output_dir (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("DAYGRID_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "daygrid_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants the pipeline relies on.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	if _, err := c.FixedTimezoneOffset(); err != nil {
		return err
	}
	return nil
}

// TimezoneIsAuto reports whether the relocation rule is selected.
func (c *Config) TimezoneIsAuto() bool {
	return strings.EqualFold(strings.TrimSpace(c.TimezoneOffset), TimezoneAuto)
}

// FixedTimezoneOffset parses the fixed hour offset; the result is
// meaningful only when TimezoneIsAuto is false.
func (c *Config) FixedTimezoneOffset() (int, error) {
	if c.TimezoneIsAuto() {
		return 0, nil
	}
	hours, err := strconv.Atoi(strings.TrimSpace(c.TimezoneOffset))
	if err != nil {
		return 0, fmt.Errorf("%w: timezone_offset must be %q or whole hours: %q",
			ErrInvalidConfig, TimezoneAuto, c.TimezoneOffset)
	}
	return hours, nil
}
