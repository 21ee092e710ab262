package commands

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/generator"
)

// EditURLCmd implements the 'edit-url' command.
type EditURLCmd struct {
	Pages []string `arg:"" name:"page" help:"Page paths relative to the pages root"`
}

func (e *EditURLCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	doc, err := generator.New(cfg, generator.WithLogger(g.Logger)).Build()
	if err != nil {
		return err
	}
	for _, page := range e.Pages {
		u, err := doc.EditURL(page)
		if err != nil {
			return ferrors.ValidationError("cannot build edit URL").
				WithCause(err).WithContext("page", page).Build()
		}
		_, _ = fmt.Fprintln(g.stdout(), u)
	}
	return nil
}
