package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/history"
	"github.com/sevigo/pr-advisor/internal/server/handler"
)

var outputJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows the pull requests recorded in the history file",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.HistoryFilePath(configFile)
		if err != nil {
			return err
		}

		ledger, err := history.Load(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		return printHistory(os.Stdout, path, handler.SortedEntries(ledger.Snapshot()), outputJSON)
	},
}

func printHistory(out io.Writer, path string, entries []handler.Entry, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No pull requests recorded in %s.\n", path)
		return nil
	}

	header := color.New(color.Bold)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	header.Fprintln(w, "PR\tTITLE")
	for _, e := range entries {
		fmt.Fprintf(w, "#%d\t%s\n", e.Number, e.Title)
	}
	return w.Flush()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	historyCmd.Flags().BoolVar(&outputJSON, "json", false, "Output history as JSON")
	rootCmd.AddCommand(historyCmd)
}
