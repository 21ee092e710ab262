// Package gitremote inspects a local git checkout to derive edit-link
// patterns from its origin remote.
package gitremote

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

// ForgeType selects the edit URL layout.
type ForgeType string

const (
	ForgeGitHub  ForgeType = "github"
	ForgeGitLab  ForgeType = "gitlab"
	ForgeForgejo ForgeType = "forgejo"
)

// Remote describes the web location of a repository.
type Remote struct {
	URL      string
	Host     string
	FullName string // owner/repo
	Branch   string
	Forge    ForgeType
}

// Detect opens the repository containing dir and reads the named remote
// (usually "origin") and the branch HEAD points at.
func Detect(dir, remoteName string) (*Remote, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ferrors.NotFoundError("not inside a git repository").
				WithContext("dir", dir).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to open repository").
			WithContext("dir", dir).Build()
	}

	rem, err := repo.Remote(remoteName)
	if err != nil {
		return nil, ferrors.NotFoundError("git remote not found").
			WithCause(err).WithContext("remote", remoteName).Build()
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return nil, ferrors.GitError("git remote has no URL").WithContext("remote", remoteName).Build()
	}

	r, err := ParseURL(urls[0])
	if err != nil {
		return nil, err
	}
	r.Branch = headBranch(repo)
	return r, nil
}

// headBranch resolves HEAD without requiring a commit, falling back to main.
func headBranch(repo *git.Repository) string {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "main"
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short()
	}
	return "main"
}

// ParseURL understands https, ssh:// and scp-like (git@host:owner/repo.git) URLs.
func ParseURL(raw string) (*Remote, error) {
	raw = strings.TrimSpace(raw)
	var host, p string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return nil, ferrors.GitError("invalid remote URL").WithCause(err).WithContext("url", raw).Build()
		}
		host, p = u.Hostname(), u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		afterAt := raw[strings.Index(raw, "@")+1:]
		host, p, _ = strings.Cut(afterAt, ":")
	default:
		return nil, ferrors.GitError("unsupported remote URL").WithContext("url", raw).Build()
	}

	fullName := strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	if host == "" || strings.Count(fullName, "/") < 1 {
		return nil, ferrors.GitError("remote URL has no owner/repository path").WithContext("url", raw).Build()
	}
	host = strings.ToLower(host)
	return &Remote{URL: raw, Host: host, FullName: fullName, Forge: forgeFor(host)}, nil
}

func forgeFor(host string) ForgeType {
	switch {
	case strings.Contains(host, "gitlab"):
		return ForgeGitLab
	case strings.Contains(host, "forgejo"), strings.Contains(host, "gitea"), strings.Contains(host, "codeberg"):
		return ForgeForgejo
	default:
		return ForgeGitHub
	}
}

// EditPattern builds an edit-link pattern for pages stored under pagesDir
// in the repository.
func (r *Remote) EditPattern(pagesDir string) string {
	pagesDir = strings.Trim(path.Clean("/"+pagesDir), "/")
	branch := r.Branch
	if branch == "" {
		branch = "main"
	}
	file := site.PathPlaceholder
	if pagesDir != "" {
		file = pagesDir + "/" + site.PathPlaceholder
	}

	base := "https://" + r.Host + "/" + r.FullName
	switch r.Forge {
	case ForgeGitLab:
		return fmt.Sprintf("%s/-/edit/%s/%s", base, branch, file)
	case ForgeForgejo:
		return fmt.Sprintf("%s/_edit/%s/%s", base, branch, file)
	default:
		return fmt.Sprintf("%s/edit/%s/%s", base, branch, file)
	}
}
