// Package config reads the optional .resume.toml file that supplies CLI
// defaults. Flags override every value.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/goliatone/go-resume/pkg/visibility"
)

// FileName is looked up in the working directory when no path is given.
const FileName = ".resume.toml"

// Item policy names accepted by the items key.
const (
	ItemsVisibleUnlessFalse = "visible-unless-false"
	ItemsRequireTrue        = "require-true"
)

// Config holds the render defaults.
type Config struct {
	Template string `toml:"template"`
	Format   string `toml:"format"`
	Theme    string `toml:"theme"`
	Variant  string `toml:"variant"`
	Width    int    `toml:"width"`
	Items    string `toml:"items"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Template: "modern",
		Format:   "html",
		Items:    ItemsVisibleUnlessFalse,
	}
}

// Load reads path over the defaults. An empty path looks for FileName and
// tolerates its absence; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML over the defaults. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be deferred to the registries.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if _, err := c.ItemPolicy(); err != nil {
		return err
	}
	return nil
}

// ItemPolicy maps the items key onto a visibility policy. Empty selects the
// default policy.
func (c Config) ItemPolicy() (visibility.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(c.Items)) {
	case "", ItemsVisibleUnlessFalse:
		return visibility.VisibleUnlessFalse, nil
	case ItemsRequireTrue:
		return visibility.RequireTrue, nil
	default:
		return nil, fmt.Errorf("unknown items policy %q", c.Items)
	}
}
