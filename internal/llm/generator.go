// Package llm provides the review generator: prompt construction, the call
// to the configured language model, and parsing of its structured output.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevigo/pr-advisor/internal/core"
)

const generateTimeout = 5 * time.Minute

// Generator implements core.ReviewGenerator on top of a Completer.
type Generator struct {
	promptMgr *PromptManager
	completer Completer
	provider  ModelProvider
	model     string
	language  string
	logger    *slog.Logger
}

// NewGenerator creates a Generator that writes reviews in language.
func NewGenerator(promptMgr *PromptManager, completer Completer, provider, model, language string, logger *slog.Logger) *Generator {
	if promptMgr == nil {
		panic("prompt manager cannot be nil")
	}
	if completer == nil {
		panic("completer cannot be nil")
	}
	return &Generator{
		promptMgr: promptMgr,
		completer: completer,
		provider:  ModelProvider(provider),
		model:     model,
		language:  language,
		logger:    logger,
	}
}

// ModelName returns the model used for generation.
func (g *Generator) ModelName() string {
	return g.model
}

// Generate renders the review prompt, calls the model and parses the result.
func (g *Generator) Generate(ctx context.Context, input core.ReviewInput) (*core.StructuredReview, error) {
	prompt, err := g.promptMgr.Render(PRReviewPrompt, g.provider, PromptData{
		Language: g.language,
		Title:    input.Title,
		Body:     input.Body,
		Diff:     input.Diff,
	})
	if err != nil {
		return nil, fmt.Errorf("could not render review prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	start := time.Now()
	response, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}
	g.logger.Info("received review from LLM", "model", g.model, "duration", time.Since(start).Round(time.Millisecond))
	g.logger.Debug("raw LLM response", "response", response)

	review, err := parseStructuredReview(response)
	if err != nil {
		return nil, err
	}
	return review, nil
}
