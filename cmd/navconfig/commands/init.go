package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/navconfig/internal/config"
	"git.home.luguber.info/inful/navconfig/internal/gitremote"
	"git.home.luguber.info/inful/navconfig/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force    bool   `help:"Overwrite existing definition file"`
	Preset   string `help:"Built-in definition to write (starter, isol)" default:"starter"`
	PagesDir string `name:"pages-dir" help:"Pages directory inside the repository, used for the edit link" default:"docs/pages"`
	Remote   string `help:"Git remote used to derive the edit link" default:"origin"`
	NoGit    bool   `name:"no-git" help:"Do not inspect the git repository"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	preset, err := config.ParsePreset(i.Preset)
	if err != nil {
		return err
	}

	pattern := ""
	if preset.UsesEditPattern() && !i.NoGit {
		remote, err := gitremote.Detect(filepath.Dir(root.Config), i.Remote)
		if err != nil {
			g.Logger.Warn("Could not derive edit link from git, using placeholder", logfields.Error(err))
		} else {
			pattern = remote.EditPattern(i.PagesDir)
			g.Logger.Info("Derived edit link from git remote", logfields.Remote(remote.URL), slog.String("pattern", pattern))
		}
	}

	if err := config.Init(root.Config, i.Force, preset.Config(pattern)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.stdout(), "Wrote %s\n", root.Config)
	return nil
}
