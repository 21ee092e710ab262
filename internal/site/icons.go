package site

import "git.home.luguber.info/inful/navconfig/internal/foundation/normalization"

// DefaultIcons returns the social icon identifiers accepted when no
// allow-list is configured.
func DefaultIcons() []string {
	return []string{"discord", "github", "telegram", "warpcast", "x"}
}

func iconSet(icons []string) *normalization.Normalizer[string] {
	return normalization.Exact("social icon", icons...)
}
