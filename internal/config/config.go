// Package config loads and validates the codedoc configuration file.
// Loading runs in three phases: decode, environment overrides, defaults,
// then validation.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
)

// Config is the top-level codedoc configuration.
type Config struct {
	// Records is the parser output file: a JSON array of raw records.
	Records string `yaml:"records"`
	// Source is the root used to resolve example file references.
	Source string `yaml:"source"`
	// GitURL optionally names a remote repository to clone and scan
	// instead of a local source tree.
	GitURL string `yaml:"git_url"`

	Output    OutputConfig    `yaml:"output"`
	Site      SiteConfig      `yaml:"site"`
	Highlight HighlightConfig `yaml:"highlight"`
	Cache     CacheConfig     `yaml:"cache"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
	BaseURL string   `yaml:"base_url"`
}

type SiteConfig struct {
	Title string `yaml:"title"`
	Index *bool  `yaml:"index"`
}

type HighlightConfig struct {
	Style string `yaml:"style"`
}

type CacheConfig struct {
	// Path of the sqlite cache database; empty disables incremental mode.
	Path string `yaml:"path"`
}

type PreviewConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// IndexEnabled reports whether the synthetic index unit is wanted;
// enabled unless explicitly turned off.
func (s SiteConfig) IndexEnabled() bool {
	return s.Index == nil || *s.Index
}

// Load reads, decodes, overrides, defaults and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cderrors.ConfigNotFound(path)
		}
		return nil, cderrors.Wrap(err, cderrors.CategoryConfig, cderrors.SeverityFatal, "reading configuration failed")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, cderrors.Wrap(err, cderrors.CategoryConfig, cderrors.SeverityFatal, "parsing configuration failed")
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
