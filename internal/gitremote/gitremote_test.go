package gitremote

import (
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw      string
		host     string
		fullName string
		forge    ForgeType
	}{
		{"https://github.com/thefactlab-org/isol.git", "github.com", "thefactlab-org/isol", ForgeGitHub},
		{"git@github.com:thefactlab-org/isol.git", "github.com", "thefactlab-org/isol", ForgeGitHub},
		{"ssh://git@gitlab.com/group/sub/project.git", "gitlab.com", "group/sub/project", ForgeGitLab},
		{"https://codeberg.org/owner/repo", "codeberg.org", "owner/repo", ForgeForgejo},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := ParseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.host, r.Host)
			assert.Equal(t, tt.fullName, r.FullName)
			assert.Equal(t, tt.forge, r.Forge)
		})
	}

	for _, bad := range []string{"", "/local/path/repo", "https://github.com/"} {
		_, err := ParseURL(bad)
		assert.Error(t, err, bad)
	}
}

func TestEditPattern(t *testing.T) {
	r := &Remote{Host: "github.com", FullName: "thefactlab-org/isol", Branch: "main", Forge: ForgeGitHub}
	pattern := r.EditPattern("docs/docs/pages/")
	assert.Equal(t, "https://github.com/thefactlab-org/isol/edit/main/docs/docs/pages/:path", pattern)
	require.NoError(t, site.EditLink{Pattern: pattern}.Validate())

	gl := &Remote{Host: "gitlab.com", FullName: "g/p", Forge: ForgeGitLab}
	assert.Equal(t, "https://gitlab.com/g/p/-/edit/main/:path", gl.EditPattern(""))

	fj := &Remote{Host: "git.example.org", FullName: "o/r", Branch: "dev", Forge: ForgeForgejo}
	assert.Equal(t, "https://git.example.org/o/r/_edit/dev/pages/:path", fj.EditPattern("./pages"))
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:thefactlab-org/isol.git"},
	})
	require.NoError(t, err)

	r, err := Detect(dir, "origin")
	require.NoError(t, err)
	assert.Equal(t, "thefactlab-org/isol", r.FullName)
	assert.Equal(t, "master", r.Branch)

	_, err = Detect(dir, "upstream")
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))

	_, err = Detect(t.TempDir(), "origin")
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}
