package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/navconfig/internal/config"
	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/metrics"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

type fakeRecorder struct {
	metrics.NoopRecorder
	outcomes []metrics.OutcomeLabel
	issues   int
	exports  []string
}

func (f *fakeRecorder) IncBuildOutcome(o metrics.OutcomeLabel) { f.outcomes = append(f.outcomes, o) }
func (f *fakeRecorder) AddValidationIssues(n int)              { f.issues += n }
func (f *fakeRecorder) IncExport(format string, ok bool) {
	if ok {
		f.exports = append(f.exports, format)
	}
}

func loadFixture(t *testing.T, extra string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version": "0.3.1"}`), 0o600))
	path := filepath.Join(dir, "navconfig.yaml")
	content := `version: "1.0"
site:
  title: isol
  editLink:
    pattern: https://github.com/thefactlab-org/isol/edit/main/docs/docs/pages/:path
  sidebar:
    - text: Getting Started
      link: /getting-started
  topNav:
    - text: "{{version}}"
      items:
        - text: Changelog
          link: https://github.com/thefactlab-org/isol/blob/main/CHANGELOG.md
  socials:
    - icon: github
      link: https://github.com/thefactlab-org/isol
` + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestGenerator_BuildAndWrite(t *testing.T) {
	cfg := loadFixture(t, "")
	rec := &fakeRecorder{}
	g := New(cfg, WithRecorder(rec))

	doc, err := g.Build()
	require.NoError(t, err)
	assert.Equal(t, "0.3.1", doc.TopNav()[0].Text)
	assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeSuccess}, rec.outcomes)

	path, err := g.Write(doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "navigation.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"text": "0.3.1"`)
	assert.Equal(t, []string{"json"}, rec.exports)
}

func TestGenerator_VersionOverride(t *testing.T) {
	cfg := loadFixture(t, "package:\n  version: v9.0.0\n")
	v, err := New(cfg).Version()
	require.NoError(t, err)
	assert.Equal(t, "v9.0.0", v)
}

func TestGenerator_IconAllowList(t *testing.T) {
	cfg := loadFixture(t, "icons: [x]\n")
	rec := &fakeRecorder{}
	_, err := New(cfg, WithRecorder(rec)).Build()

	var verr *site.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasIssueAt("socials[0].icon"))
	assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeInvalid}, rec.outcomes)
	assert.Equal(t, 1, rec.issues)
}

func TestGenerator_MissingManifest(t *testing.T) {
	cfg := loadFixture(t, "package:\n  manifest: missing/package.json\n")
	rec := &fakeRecorder{}
	_, err := New(cfg, WithRecorder(rec)).Build()

	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
	assert.True(t, strings.Contains(err.Error(), "package manifest not found"))
	assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeFailed}, rec.outcomes)
}
