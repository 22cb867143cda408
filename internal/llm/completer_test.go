package llm

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-advisor/internal/config"
)

func TestNewCompleter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	c, err := NewCompleter(context.Background(), config.AIConfig{
		Provider: "solar",
		APIKey:   "k",
		Model:    "solar-pro",
		BaseURL:  "https://api.upstage.ai/v1",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SolarClient{}, c)

	_, err = NewCompleter(context.Background(), config.AIConfig{Provider: "gemini", Model: "gemini-2.5-flash"}, logger)
	require.Error(t, err)

	_, err = NewCompleter(context.Background(), config.AIConfig{Provider: "openai", Model: "x"}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}
