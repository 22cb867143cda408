package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/pr-advisor/internal/app"
	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/core"
	"github.com/sevigo/pr-advisor/internal/github"
	"github.com/sevigo/pr-advisor/internal/history"
	"github.com/sevigo/pr-advisor/internal/jobs"
	"github.com/sevigo/pr-advisor/internal/llm"
	"github.com/sevigo/pr-advisor/internal/logger"
	"github.com/sevigo/pr-advisor/internal/server"
)

var AppSet = wire.NewSet(
	app.NewApp,
	llm.NewPromptManager,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideLedger,
	provideGitHubClient,
	provideSource,
	providePublisher,
	provideCompleter,
	provideReviewGenerator,
	provideReviewJob,
	providePoller,
	provideServer,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) io.Writer {
	return logger.OpenOutput(cfg)
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideLedger(cfg *config.Config, logger *slog.Logger) (*history.Ledger, error) {
	ledger, err := history.Load(cfg.Polling.HistoryFilePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return ledger, nil
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (github.Client, error) {
	return github.NewClientFromConfig(ctx, cfg.GitHub, logger)
}

func provideSource(client github.Client) core.PullRequestSource {
	return client
}

func providePublisher(client github.Client) core.CommentPublisher {
	return client
}

func provideCompleter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llm.Completer, error) {
	return llm.NewCompleter(ctx, cfg.AI, logger)
}

func provideReviewGenerator(cfg *config.Config, promptMgr *llm.PromptManager, completer llm.Completer, logger *slog.Logger) core.ReviewGenerator {
	return llm.NewGenerator(promptMgr, completer, cfg.AI.Provider, cfg.AI.Model, cfg.AI.Language, logger)
}

func provideReviewJob(
	cfg *config.Config,
	source core.PullRequestSource,
	publisher core.CommentPublisher,
	generator core.ReviewGenerator,
	logger *slog.Logger,
) (*jobs.ReviewJob, error) {
	return jobs.NewReviewJob(cfg, source, publisher, generator, logger)
}

func providePoller(
	cfg *config.Config,
	source core.PullRequestSource,
	job *jobs.ReviewJob,
	ledger *history.Ledger,
	printer jobs.Printer,
	logger *slog.Logger,
) *jobs.Poller {
	var opts []jobs.PollerOption
	if printer != nil {
		opts = append(opts, jobs.WithPrinter(printer))
	}
	return jobs.NewPoller(cfg, source, job, ledger, logger, opts...)
}

// provideServer returns nil when STATUS_ADDR is unset.
func provideServer(cfg *config.Config, ledger *history.Ledger, logger *slog.Logger) *server.Server {
	if cfg.StatusAddr == "" {
		return nil
	}
	return server.NewServer(cfg, ledger, logger)
}
