// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/pr-advisor/internal/app"
	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/jobs"
	"github.com/sevigo/pr-advisor/internal/llm"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg *config.Config, printer jobs.Printer) (*app.App, error) {
	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	writer := provideLogWriter(loggerConfig)
	slogLogger := provideSlogLogger(loggerConfig, writer)

	// Ledger
	ledger, err := provideLedger(cfg, slogLogger)
	if err != nil {
		return nil, err
	}

	// GitHub client
	client, err := provideGitHubClient(ctx, cfg, slogLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	source := provideSource(client)
	publisher := providePublisher(client)

	// Review generator
	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt manager: %w", err)
	}
	completer, err := provideCompleter(ctx, cfg, slogLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	generator := provideReviewGenerator(cfg, promptMgr, completer, slogLogger)

	// Review job and poller
	reviewJob, err := provideReviewJob(cfg, source, publisher, generator, slogLogger)
	if err != nil {
		return nil, err
	}
	poller := providePoller(cfg, source, reviewJob, ledger, printer, slogLogger)

	// Status server
	srv := provideServer(cfg, ledger, slogLogger)

	application := app.NewApp(cfg, poller, srv, ledger, slogLogger)
	return application, nil
}
