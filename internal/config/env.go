package config

import (
	"os"

	"github.com/joho/godotenv"
)

// applyEnvOverrides loads .env/.env.local (without clobbering the process
// environment) and applies CODEDOC_* overrides on top of the decoded file.
func applyEnvOverrides(cfg *Config) {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			break
		}
	}

	override := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override("CODEDOC_RECORDS", &cfg.Records)
	override("CODEDOC_SOURCE", &cfg.Source)
	override("CODEDOC_GIT_URL", &cfg.GitURL)
	override("CODEDOC_OUTPUT_DIR", &cfg.Output.Dir)
	override("CODEDOC_BASE_URL", &cfg.Output.BaseURL)
	override("CODEDOC_TITLE", &cfg.Site.Title)
	override("CODEDOC_CACHE_PATH", &cfg.Cache.Path)
	override("CODEDOC_PREVIEW_ADDR", &cfg.Preview.Addr)
	override("CODEDOC_LOG_LEVEL", &cfg.Logging.Level)
}
