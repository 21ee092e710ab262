package config

import "git.home.luguber.info/inful/navconfig/internal/foundation/normalization"

// OutputFormat selects how the navigation document is written.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputHugo OutputFormat = "hugo"
)

var outputFormatNormalizer = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"json": OutputJSON,
	"yaml": OutputYAML,
	"yml":  OutputYAML,
	"hugo": OutputHugo,
}, OutputJSON)

// ParseOutputFormat normalizes raw or reports the valid formats.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.NormalizeWithError(raw)
}

// DefaultFile is the file name written for the format when no path is configured.
func (f OutputFormat) DefaultFile() string {
	switch f {
	case OutputYAML:
		return "navigation.yaml"
	case OutputHugo:
		return "hugo.navigation.yaml"
	default:
		return "navigation.json"
	}
}

// OutputConfig controls where the built document is written.
type OutputConfig struct {
	Format OutputFormat `yaml:"format,omitempty"`
	Path   string       `yaml:"path,omitempty"`
}
