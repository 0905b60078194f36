// Package config loads project configuration for pyimports from a TOML
// file (by convention pyimports.toml). All sections are optional; a
// missing file yields the defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pyimports/pkg/errors"
	"github.com/matzehuels/pyimports/pkg/imports"
)

// DefaultFileName is the conventional config file name looked up in the
// working directory when no explicit path is given.
const DefaultFileName = "pyimports.toml"

// Config mirrors the TOML file layout.
type Config struct {
	Registry RegistrySection `toml:"registry"`
	Local    LocalSection    `toml:"local"`
	Format   FormatSection   `toml:"format"`
}

// RegistrySection customizes the package classification tables.
type RegistrySection struct {
	ExtraStdlib       []string `toml:"extra_stdlib"`
	RemovedStdlib     []string `toml:"removed_stdlib"`
	ExtraThirdParty   []string `toml:"extra_third_party"`
	RemovedThirdParty []string `toml:"removed_third_party"`
}

// LocalSection names the project's own package and prefixes so its
// imports sort into the local group.
type LocalSection struct {
	PackageName string   `toml:"package_name"`
	Prefixes    []string `toml:"prefixes"`
}

// FormatSection selects a formatting profile and per-field overrides.
// Pointer fields distinguish "not set" from an explicit zero value.
type FormatSection struct {
	Profile            string `toml:"profile"`
	LineLength         *int   `toml:"line_length"`
	IndentSize         *int   `toml:"indent_size"`
	TrailingComma      *bool  `toml:"trailing_comma"`
	ForceSingleLine    *bool  `toml:"force_single_line"`
	ForceMultiline     *bool  `toml:"force_multiline"`
	MultilineThreshold *int   `toml:"multiline_threshold"`
}

// Default returns an empty configuration, equivalent to no config file.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config: %s", path)
	}
	return Parse(data)
}

// LoadOrDefault reads path if it exists and returns the defaults when
// it does not. Any other error is reported.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes and validates raw TOML config bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid TOML syntax")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that TOML decoding cannot.
func (c *Config) Validate() error {
	if _, ok := imports.OptionsForProfile(c.Format.Profile); !ok {
		return errors.New(errors.ErrCodeInvalidProfile, "unknown format profile: %q", c.Format.Profile)
	}
	if c.Format.LineLength != nil && *c.Format.LineLength <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "line_length must be positive, got %d", *c.Format.LineLength)
	}
	if c.Format.IndentSize != nil && *c.Format.IndentSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "indent_size must be positive, got %d", *c.Format.IndentSize)
	}
	if c.Format.MultilineThreshold != nil && *c.Format.MultilineThreshold <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "multiline_threshold must be positive, got %d", *c.Format.MultilineThreshold)
	}
	if c.Format.ForceSingleLine != nil && c.Format.ForceMultiline != nil &&
		*c.Format.ForceSingleLine && *c.Format.ForceMultiline {
		return errors.New(errors.ErrCodeInvalidConfig, "force_single_line and force_multiline are mutually exclusive")
	}
	return nil
}

// Options resolves the configured profile plus overrides into concrete
// formatting options. Validate must have passed.
func (c *Config) Options() imports.Options {
	opts, _ := imports.OptionsForProfile(c.Format.Profile)
	if c.Format.LineLength != nil {
		opts.LineLength = *c.Format.LineLength
	}
	if c.Format.IndentSize != nil {
		opts.IndentSize = *c.Format.IndentSize
	}
	if c.Format.TrailingComma != nil {
		opts.TrailingComma = *c.Format.TrailingComma
	}
	if c.Format.ForceSingleLine != nil {
		opts.ForceSingleLine = *c.Format.ForceSingleLine
	}
	if c.Format.ForceMultiline != nil {
		opts.ForceMultiline = *c.Format.ForceMultiline
	}
	if c.Format.MultilineThreshold != nil {
		opts.MultilineThreshold = *c.Format.MultilineThreshold
	}
	return opts
}

// NewHelper builds a ready-to-use Helper from the configuration:
// registry overrides applied, local package and prefixes registered,
// formatting options set.
func (c *Config) NewHelper() *imports.Helper {
	var h *imports.Helper
	if c.Local.PackageName != "" {
		h = imports.NewWithPackageName(c.Local.PackageName)
	} else {
		h = imports.New()
	}
	reg := h.Registry()
	reg.AddStdlibBulk(c.Registry.ExtraStdlib...)
	reg.AddThirdPartyBulk(c.Registry.ExtraThirdParty...)
	for _, name := range c.Registry.RemovedStdlib {
		reg.RemoveStdlib(name)
	}
	for _, name := range c.Registry.RemovedThirdParty {
		reg.RemoveThirdParty(name)
	}
	h.ClearCache()
	h.AddLocalPrefixes(c.Local.Prefixes...)
	h.SetOptions(c.Options())
	return h
}
