package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/navconfig/internal/config"
	"git.home.luguber.info/inful/navconfig/internal/export"
	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/generator"
	"git.home.luguber.info/inful/navconfig/internal/logfields"
	"git.home.luguber.info/inful/navconfig/internal/metrics"
	"git.home.luguber.info/inful/navconfig/internal/site"
	"git.home.luguber.info/inful/navconfig/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	MetricsAddr string `name:"metrics-addr" help:"Serve Prometheus metrics on this address (overrides watch.metrics_addr)"`
}

// session holds the last good document across rebuilds.
type session struct {
	global   *Global
	recorder metrics.Recorder
	current  atomic.Pointer[site.Document]
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	s := &session{global: g, recorder: metrics.NewPrometheusRecorder(reg)}

	addr := cfg.Watch.MetricsAddr
	if w.MetricsAddr != "" {
		addr = w.MetricsAddr
	}
	if addr != "" {
		srv := &http.Server{Addr: addr, Handler: s.mux(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				g.Logger.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			_ = srv.Shutdown(shutdownCtx)
		}()
		g.Logger.Info("Serving metrics", slog.String("addr", addr))
	}

	// A broken definition at start-up is reported but does not stop watching.
	s.rebuild(cfg)

	files := []string{root.Config}
	if cfg.Package.Version == "" {
		files = append(files, cfg.Resolve(cfg.Package.Manifest))
	}
	watcher, err := watch.New(files, cfg.Watch.DebounceDuration(), func(context.Context) {
		next, err := config.Load(root.Config)
		if err != nil {
			g.Logger.Error("Reload failed, keeping previous navigation", logfields.Error(err))
			s.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return
		}
		s.rebuild(next)
	})
	if err != nil {
		return ferrors.RuntimeError("failed to start watcher").WithCause(err).Build()
	}

	g.Logger.Info("Watching for changes", logfields.ConfigPath(root.Config))
	return watcher.Run(ctx)
}

func (s *session) rebuild(cfg *config.Config) {
	gen := generator.New(cfg, generator.WithLogger(s.global.Logger), generator.WithRecorder(s.recorder))
	doc, err := gen.Build()
	if err != nil {
		s.global.Logger.Error("Navigation build failed, keeping previous output", logfields.Error(err))
		return
	}
	path, err := gen.Write(doc)
	if err != nil {
		s.global.Logger.Error("Failed to write navigation", logfields.Output(path), logfields.Error(err))
		return
	}
	s.current.Store(doc)
}

// mux serves metrics, health and the last good document.
func (s *session) mux(reg *prom.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if s.current.Load() == nil {
			http.Error(w, "no valid navigation yet", http.StatusServiceUnavailable)
			return
		}
		_, _ = fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("/navigation.json", func(w http.ResponseWriter, _ *http.Request) {
		doc := s.current.Load()
		if doc == nil {
			http.Error(w, "no valid navigation yet", http.StatusServiceUnavailable)
			return
		}
		data, err := export.Render(doc, config.OutputJSON, export.WithLogger(s.global.Logger))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
	return mux
}
