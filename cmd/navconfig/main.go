package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navconfig/cmd/navconfig/commands"
	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{Logger: slog.Default()}
	ctx := kong.Parse(&cli,
		kong.Bind(global),
		kong.Name("navconfig"),
		kong.Description("Build and validate documentation site navigation"),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
