package config

import (
	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/foundation/normalization"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

// Preset names a built-in definition that init can write.
type Preset string

const (
	PresetStarter Preset = "starter"
	PresetIsol    Preset = "isol"
)

var presetNormalizer = normalization.NewNormalizer("preset", map[string]Preset{
	"starter": PresetStarter,
	"isol":    PresetIsol,
}, PresetStarter)

// ParsePreset normalizes raw or reports the known presets.
func ParsePreset(raw string) (Preset, error) {
	p, err := presetNormalizer.NormalizeWithError(raw)
	if err != nil {
		return "", ferrors.ConfigError("unknown preset").WithCause(err).Build()
	}
	return p, nil
}

// UsesEditPattern reports whether the preset takes a caller supplied edit
// link pattern. Fixed site presets carry their own.
func (p Preset) UsesEditPattern() bool { return p == PresetStarter }

// Config returns the preset's definition. editPattern is only used by
// presets for which UsesEditPattern is true.
func (p Preset) Config(editPattern string) *Config {
	if p == PresetIsol {
		return Isol()
	}
	return Example(editPattern)
}

// IsolEditPattern is the edit link of the isol documentation site.
const IsolEditPattern = "https://github.com/thefactlab-org/isol/edit/main/docs/docs/pages/:path"

// Isol returns the navigation of the isol documentation site, declared in
// the same order as the site's own configuration. Only the version label is
// left for the package manifest to fill in.
func Isol() *Config {
	return &Config{
		Version: SchemaVersion,
		Site: site.Definition{
			Title:  "isol",
			Banner: "isol is open-source software. Use at your own risk and responsibility. See [Privacy & Terms](/privacy-terms) for details.",
			EditLink: site.EditLink{
				Pattern: IsolEditPattern,
				Text:    "Suggest changes to this page",
			},
			Sidebar: []site.SidebarItem{
				{Text: "Getting Started", Link: "/getting-started"},
				{Text: "Concept", Link: "/concept"},
				{Text: "Contracts", Items: []site.SidebarItem{
					{Text: "Base", Collapsed: site.Bool(false), Items: []site.SidebarItem{
						{Text: "BasexERC20", Link: "/contracts/base/BasexERC20"},
					}},
					{Text: "Kit", Collapsed: site.Bool(false), Items: []site.SidebarItem{
						{Text: "KitxERC20", Link: "/contracts/kit/KitxERC20"},
						{Text: "ERC20xTransferWithAuthorize", Link: "/contracts/kit/ERC20xTransferWithAuthorize"},
						{Text: "ERC20WrappedxWithAuthorize", Link: "/contracts/kit/ERC20WrappedxWithAuthorize"},
					}},
					{Text: "Modular", Collapsed: site.Bool(false), Items: []site.SidebarItem{
						{Text: "ERC20xTransferWithAuthorize", Link: "/contracts/modular/ERC20xTransferWithAuthorize"},
					}},
				}},
				{Text: "Privacy & Terms", Link: "/privacy-terms"},
			},
			TopNav: []site.TopNavDef{
				{Text: "Quick Start", Link: "/getting-started#quick-start"},
				{Text: "Concept", Link: "/concept"},
				{Text: site.VersionToken, Items: []site.TopNavItem{
					{Text: "Changelog", Link: "https://github.com/thefactlab-org/isol/blob/main/CHANGELOG.md"},
					{Text: "Contributing", Link: "https://github.com/thefactlab-org/isol/pulls"},
				}},
			},
			Socials: []site.SocialEntry{
				{Icon: "x", Link: "https://x.com/thefactlab_org"},
				{Icon: "github", Link: "https://github.com/thefactlab-org/isol"},
			},
		},
		Package: PackageConfig{Manifest: defaultManifest},
		Output:  OutputConfig{Format: OutputJSON, Path: OutputJSON.DefaultFile()},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}
