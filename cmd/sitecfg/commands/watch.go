package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
	Debounce    time.Duration `help:"Quiet period before reloading" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.RunContext(ctx, g, root)
}

// RunContext runs the dev session until ctx is done.
func (w *WatchCmd) RunContext(ctx context.Context, g *Global, root *CLI) error {
	reg := prom.NewRegistry()
	out, err := config.Init(root.Config,
		config.WithLoader(root.Loader()),
		config.WithRecorder(metrics.NewPrometheusRecorder(reg)),
	)
	logWarnings(g.Logger, out.Result)
	if err != nil {
		return err
	}
	store := config.Default()
	g.Logger.Info("Configuration loaded", logfields.ConfigPaths(store.Paths()), logfields.Fingerprint(out.Fingerprint))

	watcher, err := watch.New(store,
		watch.WithDebounce(w.Debounce),
		watch.WithExtraFiles(root.EnvFile...),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			g.Logger.Warn("Error stopping watcher", logfields.Error(err))
		}
	}()
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	var srv *http.Server
	errChan := make(chan error, 1)
	if w.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		srv = &http.Server{Addr: w.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()
		g.Logger.Info("Serving metrics", logfields.Addr(w.MetricsAddr))
	}

	g.Logger.Info("Watching for changes, press Ctrl+C to stop")
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		g.Logger.Info("Shutdown signal received, stopping watcher...")
	}

	if srv != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			g.Logger.Warn("Error stopping metrics server", logfields.Error(err))
		}
	}
	return nil
}
