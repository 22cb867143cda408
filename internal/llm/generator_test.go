package llm

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-advisor/internal/core"
)

const validReviewJSON = "```json\n" + `{"summary": "sum", "improvement_point": "imp", "security_point": "sec", "review_point": "rev"}` + "\n```"

func newTestGenerator(t *testing.T, c Completer) *Generator {
	t.Helper()
	pm, err := NewPromptManager()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewGenerator(pm, c, "solar", "solar-pro", "Korean", logger)
}

func TestGenerator_Generate(t *testing.T) {
	var gotPrompt string
	g := newTestGenerator(t, CompleterFunc(func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return validReviewJSON, nil
	}))

	review, err := g.Generate(context.Background(), core.ReviewInput{
		Title: "Add cache",
		Body:  "Speeds up lookups",
		Diff:  "cache.go : +func Get()\n",
	})
	require.NoError(t, err)

	assert.Equal(t, &core.StructuredReview{
		Summary:          "sum",
		ImprovementPoint: "imp",
		SecurityPoint:    "sec",
		ReviewPoint:      "rev",
	}, review)
	assert.Contains(t, gotPrompt, "Add cache")
	assert.Contains(t, gotPrompt, "Speeds up lookups")
	assert.Contains(t, gotPrompt, "cache.go : +func Get()")
	assert.Contains(t, gotPrompt, "Korean")
	assert.Equal(t, "solar-pro", g.ModelName())
}

func TestGenerator_CompleterError(t *testing.T) {
	boom := errors.New("rate limited")
	g := newTestGenerator(t, CompleterFunc(func(context.Context, string) (string, error) {
		return "", boom
	}))

	_, err := g.Generate(context.Background(), core.ReviewInput{Title: "t", Diff: "d"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestGenerator_UnparseableOutput(t *testing.T) {
	g := newTestGenerator(t, CompleterFunc(func(context.Context, string) (string, error) {
		return `{"summary": "only"}`, nil
	}))

	_, err := g.Generate(context.Background(), core.ReviewInput{Title: "t", Diff: "d"})
	assert.ErrorIs(t, err, ErrMissingSection)
}
