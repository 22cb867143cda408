package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-advisor/internal/app"
	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/wire"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pr-advisor",
	Short: "pr-advisor reviews open pull requests with an LLM and comments the result.",
	Long: `pr-advisor polls a GitHub repository for open pull requests, sends each new
one to a language model for review and posts the review back as a comment.
Processed pull requests are recorded in a history file so they are reviewed once.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".env", "dotenv file to read configuration from")
	rootCmd.PersistentFlags().String("history", "", "history file path (overrides HISTORY_FILE_PATH)")
	rootCmd.PersistentFlags().Bool("just-print", false, "print reviews instead of commenting (overrides JUST_PRINT)")

	bindFlag("HISTORY_FILE_PATH", "history")
	bindFlag("JUST_PRINT", "just-print")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		slog.Error("Error binding flag", "flag", flag, "error", err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(quit)
		select {
		case <-quit:
			slog.Info("received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// initializeApp loads the configuration and wires the application. Dry-run
// comments are rendered for the terminal.
func initializeApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := wire.InitializeApp(ctx, cfg, newTerminalPrinter(os.Stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return a, nil
}
