// Package generator turns a loaded definition file into a validated
// navigation document and writes it out.
package generator

import (
	"errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/navconfig/internal/config"
	"git.home.luguber.info/inful/navconfig/internal/export"
	"git.home.luguber.info/inful/navconfig/internal/logfields"
	"git.home.luguber.info/inful/navconfig/internal/metrics"
	"git.home.luguber.info/inful/navconfig/internal/pkgmeta"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

// Generator builds documents from one configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator for cfg.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Version returns the configured version override, or the version of the
// package manifest.
func (g *Generator) Version() (string, error) {
	if g.cfg.Package.Version != "" {
		return g.cfg.Package.Version, nil
	}
	return pkgmeta.Version(g.cfg.Resolve(g.cfg.Package.Manifest))
}

// Build resolves the version and builds the document.
func (g *Generator) Build() (*site.Document, error) {
	start := g.now()
	defer func() { g.recorder.ObserveBuildDuration(g.now().Sub(start)) }()

	version, err := g.Version()
	if err != nil {
		g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return nil, err
	}

	opts := []site.Option{site.WithVersion(version), site.WithLogger(g.logger)}
	if len(g.cfg.Icons) > 0 {
		opts = append(opts, site.WithAllowedIcons(g.cfg.Icons...))
	}

	doc, err := site.Build(g.cfg.Site, opts...)
	if err != nil {
		var verr *site.ValidationError
		if errors.As(err, &verr) {
			g.recorder.IncBuildOutcome(metrics.OutcomeInvalid)
			g.recorder.AddValidationIssues(len(verr.Issues))
			for _, is := range verr.Issues {
				g.logger.Error("Invalid navigation entry", logfields.Location(is.Location), slog.String("reason", is.Message))
			}
		} else {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		}
		return nil, err
	}

	g.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	g.recorder.SetLastSuccess(g.now())
	g.logger.Debug("Navigation document built",
		logfields.Version(version),
		slog.Int("sidebar_entries", len(doc.Sidebar())),
		slog.Int("links", len(doc.Links())))
	return doc, nil
}

// Write exports doc using the configured output format and path.
func (g *Generator) Write(doc *site.Document) (string, error) {
	path := g.cfg.Resolve(g.cfg.Output.Path)
	return path, g.WriteTo(doc, g.cfg.Output.Format, path)
}

// WriteTo exports doc in format to path.
func (g *Generator) WriteTo(doc *site.Document, format config.OutputFormat, path string) error {
	err := export.WriteFile(doc, format, path, export.WithLogger(g.logger))
	g.recorder.IncExport(string(format), err == nil)
	if err != nil {
		return err
	}
	g.logger.Info("Navigation written", logfields.Output(path), logfields.Format(string(format)))
	return nil
}
