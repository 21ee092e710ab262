package config

import (
	"errors"
	"io/fs"
	"os"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

// ExampleEditPattern is used by Init when no repository remote is known.
const ExampleEditPattern = "https://github.com/your-org/your-repo/edit/main/docs/pages/:path"

// Example returns a starter configuration.
func Example(editPattern string) *Config {
	if editPattern == "" {
		editPattern = ExampleEditPattern
	}
	return &Config{
		Version: SchemaVersion,
		Site: site.Definition{
			Title:  "My Project",
			Banner: "My Project is open-source software. See [Privacy & Terms](/privacy-terms) for details.",
			EditLink: site.EditLink{
				Pattern: editPattern,
				Text:    site.DefaultEditLinkText,
			},
			Sidebar: []site.SidebarItem{
				{Text: "Getting Started", Link: "/getting-started"},
				{Text: "Concept", Link: "/concept"},
				{Text: "Reference", Items: []site.SidebarItem{
					{Text: "Core", Collapsed: site.Bool(false), Items: []site.SidebarItem{
						{Text: "Overview", Link: "/reference/core/overview"},
					}},
				}},
				{Text: "Privacy & Terms", Link: "/privacy-terms"},
			},
			TopNav: []site.TopNavDef{
				{Text: "Quick Start", Link: "/getting-started#quick-start"},
				{Text: site.VersionToken, Items: []site.TopNavItem{
					{Text: "Changelog", Link: "https://github.com/your-org/your-repo/blob/main/CHANGELOG.md"},
				}},
			},
			Socials: []site.SocialEntry{
				{Icon: "github", Link: "https://github.com/your-org/your-repo"},
			},
		},
		Package: PackageConfig{Manifest: defaultManifest},
		Output:  OutputConfig{Format: OutputJSON, Path: OutputJSON.DefaultFile()},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Init writes cfg to path. An existing file is only replaced when force is
// set.
func Init(path string, force bool, cfg *Config) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryConfig, "configuration file already exists (use --force to overwrite)").
			UserAction().WithContext("path", path).Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.FileSystemError("failed to stat config file").WithCause(err).Build()
	}

	data, err := cfg.Marshal()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal configuration").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.FileSystemError("failed to write config file").
			WithCause(err).WithContext("path", path).Build()
	}
	return nil
}
