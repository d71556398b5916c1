package config

// applyDefaults fills unset fields after environment overrides ran.
func applyDefaults(cfg *Config) {
	if cfg.Records == "" {
		cfg.Records = "records.json"
	}
	if cfg.Source == "" {
		cfg.Source = "."
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./docs"
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"markdown", "html"}
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = "API Reference"
	}
	if cfg.Highlight.Style == "" {
		cfg.Highlight.Style = "github"
	}
	if cfg.Preview.Addr == "" {
		cfg.Preview.Addr = ":8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
