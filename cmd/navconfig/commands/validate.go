package commands

import (
	"fmt"

	"git.home.luguber.info/inful/navconfig/internal/generator"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	doc, err := generator.New(cfg, generator.WithLogger(g.Logger)).Build()
	if err != nil {
		return err
	}

	entries := 0
	_ = doc.Walk(func(site.SidebarEntry, []string) error {
		entries++
		return nil
	})
	_, _ = fmt.Fprintf(g.stdout(), "Navigation is valid: %d sidebar entries, %d top navigation entries, %d social links, %d internal links\n",
		entries, len(doc.TopNav()), len(doc.Socials()), len(doc.Links()))
	return nil
}
