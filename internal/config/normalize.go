package config

import (
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
)

// normalize case-folds enumerations and rejects values that cannot be coerced.
func normalize(cfg *Config) error {
	if cfg.Logging.Level != "" {
		cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	}
	if cfg.Logging.Format != "" {
		cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
	}
	if cfg.Output.Format != "" {
		f, err := ParseOutputFormat(string(cfg.Output.Format))
		if err != nil {
			return ferrors.ConfigError("invalid output format").WithCause(err).Build()
		}
		cfg.Output.Format = f
	}
	if cfg.Watch.Debounce != "" {
		if d, err := time.ParseDuration(cfg.Watch.Debounce); err != nil || d <= 0 {
			return ferrors.ConfigError("invalid watch debounce").
				WithContext("debounce", cfg.Watch.Debounce).Build()
		}
	}

	icons := cfg.Icons[:0]
	for _, icon := range cfg.Icons {
		if icon = strings.TrimSpace(icon); icon != "" {
			icons = append(icons, icon)
		}
	}
	cfg.Icons = icons
	cfg.Package.Version = strings.TrimSpace(cfg.Package.Version)
	return nil
}
