package commands

import (
	"fmt"

	"git.home.luguber.info/inful/navconfig/internal/config"
	"git.home.luguber.info/inful/navconfig/internal/export"
	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/generator"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Format string `short:"f" help:"Output format (json, yaml, hugo); overrides the definition file"`
	Output string `short:"o" help:"Output file; overrides the definition file" type:"path"`
	Stdout bool   `help:"Print the document instead of writing a file"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if b.Format != "" {
		if format, err = config.ParseOutputFormat(b.Format); err != nil {
			return ferrors.ConfigError("invalid --format").WithCause(err).Build()
		}
	}
	path := cfg.Resolve(cfg.Output.Path)
	if b.Output != "" {
		path = b.Output
	} else if b.Format != "" {
		path = cfg.Resolve(format.DefaultFile())
	}

	gen := generator.New(cfg, generator.WithLogger(g.Logger))
	doc, err := gen.Build()
	if err != nil {
		return err
	}

	if b.Stdout {
		data, err := export.Render(doc, format, export.WithLogger(g.Logger))
		if err != nil {
			return err
		}
		_, err = g.stdout().Write(data)
		return err
	}
	if err := gen.WriteTo(doc, format, path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.stdout(), "Wrote %s\n", path)
	return nil
}
