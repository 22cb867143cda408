//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/pr-advisor/internal/app"
	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/jobs"
)

// InitializeApp creates and wires all application dependencies. A nil
// printer keeps the poller's stdout default.
func InitializeApp(ctx context.Context, cfg *config.Config, printer jobs.Printer) (*app.App, error) {
	wire.Build(AppSet)
	return &app.App{}, nil
}
