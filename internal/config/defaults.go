package config

import (
	"time"

	"git.home.luguber.info/inful/navconfig/internal/site"
)

const (
	defaultManifest = "package.json"
	defaultDebounce = 500 * time.Millisecond
)

func applyDefaults(cfg *Config) {
	if cfg.Package.Manifest == "" && cfg.Package.Version == "" {
		cfg.Package.Manifest = defaultManifest
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputJSON
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = cfg.Output.Format.DefaultFile()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = defaultDebounce.String()
	}
	if cfg.Site.EditLink.Text == "" {
		cfg.Site.EditLink.Text = site.DefaultEditLinkText
	}
}
