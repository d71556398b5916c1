package config

import (
	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
)

var knownFormats = map[string]struct{}{
	"markdown": {},
	"html":     {},
}

var knownLogLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Validate checks the fully-defaulted configuration.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return cderrors.ConfigRequired("output.dir")
	}
	for _, f := range c.Output.Formats {
		if _, ok := knownFormats[f]; !ok {
			return cderrors.ValidationFailed("output.formats", "unknown format "+f)
		}
	}
	if _, ok := knownLogLevels[c.Logging.Level]; !ok {
		return cderrors.ValidationFailed("logging.level", "unknown level "+c.Logging.Level)
	}
	return nil
}
