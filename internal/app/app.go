// Package app assembles the poller and the optional status server into the
// running PR Advisor process.
package app

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/history"
	"github.com/sevigo/pr-advisor/internal/jobs"
	"github.com/sevigo/pr-advisor/internal/server"
)

// Runner is the polling loop the application drives.
type Runner interface {
	Run(ctx context.Context) error
	RunOnce(ctx context.Context) error
}

// App holds the main application components.
type App struct {
	cfg    *config.Config
	poller Runner
	server *server.Server
	ledger *history.Ledger
	logger *slog.Logger
}

// NewApp creates the application. srv may be nil when the status server is
// disabled.
func NewApp(cfg *config.Config, poller *jobs.Poller, srv *server.Server, ledger *history.Ledger, logger *slog.Logger) *App {
	return newApp(cfg, poller, srv, ledger, logger)
}

func newApp(cfg *config.Config, poller Runner, srv *server.Server, ledger *history.Ledger, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		poller: poller,
		server: srv,
		ledger: ledger,
		logger: logger,
	}
}

// Ledger returns the processed-request ledger.
func (a *App) Ledger() *history.Ledger {
	return a.ledger
}

// Run polls until ctx is cancelled, serving the status API alongside when
// configured. Cancellation is a clean shutdown and returns nil.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("starting PR Advisor",
		"repo", a.cfg.GitHub.Owner+"/"+a.cfg.GitHub.Repo,
		"provider", a.cfg.AI.Provider,
		"model", a.cfg.AI.Model,
		"history", a.ledger.Path(),
		"reviewed", a.ledger.Len(),
		"just_print", a.cfg.Polling.JustPrint,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.poller.Run(gctx)
	})

	if a.server != nil {
		g.Go(a.server.Start)
		g.Go(func() error {
			<-gctx.Done()
			return a.server.Stop()
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		a.logger.Info("PR Advisor stopped")
		return nil
	}
	return err
}

// RunOnce runs a single polling cycle.
func (a *App) RunOnce(ctx context.Context) error {
	return a.poller.RunOnce(ctx)
}
