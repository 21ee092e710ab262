package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navconfig/internal/config"
	"git.home.luguber.info/inful/navconfig/internal/logfields"
)

// Global carries state shared by subcommands.
type Global struct {
	Logger *slog.Logger
	// Stdout receives command output; nil means os.Stdout.
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Definition file path" default:"navconfig.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Validate the definition and write the navigation document"`
	Validate ValidateCmd `cmd:"" help:"Validate the definition without writing anything"`
	EditURL  EditURLCmd  `cmd:"" name:"edit-url" help:"Print the edit URL for page paths"`
	Init     InitCmd     `cmd:"" help:"Write a starter definition file"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild the navigation document whenever the definition changes"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig loads the definition and applies its logging settings unless
// -v already forced debug output.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if !root.Verbose {
		g.Logger = newLogger(os.Stderr, cfg.Logging)
		slog.SetDefault(g.Logger)
	}
	g.Logger.Debug("Configuration loaded", logfields.ConfigPath(root.Config))
	return cfg, nil
}

func newLogger(w io.Writer, lc config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.Level.SlogLevel()}
	if lc.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
