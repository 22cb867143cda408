package jobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/core"
	"github.com/sevigo/pr-advisor/internal/github"
	"github.com/sevigo/pr-advisor/internal/history"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Printer receives comments produced in dry-run mode.
type Printer interface {
	PrintComment(number int, comment string) error
}

// PrinterFunc adapts a function to the Printer interface.
type PrinterFunc func(number int, comment string) error

// PrintComment calls f.
func (f PrinterFunc) PrintComment(number int, comment string) error {
	return f(number, comment)
}

// WriterPrinter writes comments unformatted to w.
func WriterPrinter(w io.Writer) Printer {
	return PrinterFunc(func(_ int, comment string) error {
		_, err := fmt.Fprintln(w, comment)
		return err
	})
}

// Reviewer runs the pipeline for one pull request.
type Reviewer interface {
	Run(ctx context.Context, number int) (Result, error)
}

// Poller lists open pull requests on an interval and feeds the ones missing
// from the ledger through the Reviewer, one at a time.
type Poller struct {
	repo     core.Repository
	source   core.PullRequestSource
	reviewer Reviewer
	ledger   *history.Ledger
	printer  Printer
	sleep    Sleeper
	interval time.Duration
	delay    time.Duration
	logger   *slog.Logger
}

// PollerOption customizes a Poller.
type PollerOption func(*Poller)

// WithSleeper replaces the wall-clock sleep used between requests and cycles.
func WithSleeper(s Sleeper) PollerOption {
	return func(p *Poller) { p.sleep = s }
}

// WithPrinter sets where dry-run comments are written.
func WithPrinter(pr Printer) PollerOption {
	return func(p *Poller) { p.printer = pr }
}

// NewPoller creates a Poller. Dry-run comments go to stdout unless
// WithPrinter is given.
func NewPoller(
	cfg *config.Config,
	source core.PullRequestSource,
	reviewer Reviewer,
	ledger *history.Ledger,
	logger *slog.Logger,
	opts ...PollerOption,
) *Poller {
	p := &Poller{
		repo:     core.Repository{Owner: cfg.GitHub.Owner, Name: cfg.GitHub.Repo},
		source:   source,
		reviewer: reviewer,
		ledger:   ledger,
		printer:  WriterPrinter(os.Stdout),
		sleep:    Sleep,
		interval: cfg.Polling.Interval,
		delay:    cfg.Polling.RequestDelay,
		logger:   logger,
	}
	if p.interval <= 0 {
		p.interval = config.DefaultInterval
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes cycles until ctx is cancelled. A failed cycle is logged and
// retried after the next interval.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("starting poller", "repo", p.repo.FullName(), "interval", p.interval)
	for {
		if err := p.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Error("polling cycle failed", "repo", p.repo.FullName(), "error", err)
		}
		if err := p.sleep(ctx, p.interval); err != nil {
			p.logger.Info("poller stopped")
			return err
		}
	}
}

// RunOnce runs a single cycle. It returns an error only when the open pull
// requests cannot be listed or ctx is cancelled; per-request failures are
// logged and the request is still recorded in the ledger.
func (p *Poller) RunOnce(ctx context.Context) error {
	prs, err := p.source.ListOpenPullRequests(ctx, p.repo.Owner, p.repo.Name)
	if err != nil {
		return fmt.Errorf("failed to list open pull requests: %w", err)
	}
	p.logger.Info("number of open pull requests", "count", len(prs))

	reviewed := 0
	for _, pr := range prs {
		id := history.Key(pr.Number)
		if p.ledger.Contains(id) {
			continue
		}
		reviewed++
		p.logger.Info("pull request not in history", "pr", pr.Number, "title", pr.Title)

		p.process(ctx, pr)

		p.ledger.Mark(id, pr.Title)
		if err := p.ledger.Persist(); err != nil {
			p.logger.Error("failed to save history", "pr", pr.Number, "path", p.ledger.Path(), "error", err)
		} else {
			p.logger.Info("saved history", "pr", pr.Number)
		}

		if err := p.sleep(ctx, p.delay); err != nil {
			return err
		}
	}

	if reviewed == 0 {
		p.logger.Info("nothing to review")
	}
	return nil
}

// process runs the pipeline for pr and logs its outcome.
func (p *Poller) process(ctx context.Context, pr core.PullRequest) {
	res, err := p.reviewer.Run(ctx, pr.Number)
	switch {
	case errors.Is(err, github.ErrNotFound):
		p.logger.Error("pull request not found", "pr", pr.Number, "error", err)
	case err != nil:
		p.logger.Error("review failed", "pr", pr.Number, "error", err)
	case res.Skipped():
		p.logger.Warn("review skipped", "pr", pr.Number, "reason", res.Skip.String())
	case !res.Published:
		if err := p.printer.PrintComment(pr.Number, res.Comment); err != nil {
			p.logger.Error("failed to print comment", "pr", pr.Number, "error", err)
		}
	default:
		p.logger.Info("review completed", "pr", pr.Number)
	}
}
