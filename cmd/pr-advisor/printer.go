package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/sevigo/pr-advisor/internal/jobs"
)

const commentWrapWidth = 100

// newTerminalPrinter renders dry-run comments as markdown. Falls back to the
// raw comment if glamour rendering fails.
func newTerminalPrinter(out io.Writer) jobs.Printer {
	title := color.New(color.FgCyan, color.Bold)
	r, rendererErr := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(commentWrapWidth),
		glamour.WithPreservedNewLines(),
	)
	return jobs.PrinterFunc(func(number int, comment string) error {
		title.Fprintf(out, "--- Review for PR #%d (not posted) ---\n", number)
		rendered := comment + "\n"
		if rendererErr == nil {
			if s, err := r.Render(comment); err == nil {
				rendered = s
			}
		}
		_, err := fmt.Fprint(out, rendered)
		return err
	})
}
