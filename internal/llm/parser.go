package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sevigo/pr-advisor/internal/core"
)

// ErrMissingSection is returned when the model output lacks one of the
// agreed review sections.
var ErrMissingSection = errors.New("review section missing")

// parseStructuredReview extracts the review sections from the model output.
// It handles the usual LLM quirks:
// - Response wrapped in ```json ... ``` fences
// - Prose before or after the JSON object
// - Non-string section values (lists, numbers), which are flattened
func parseStructuredReview(output string) (*core.StructuredReview, error) {
	raw := extractReviewJSON(output)
	if raw == "" {
		return nil, fmt.Errorf("failed to parse review: no JSON object found")
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse review: %w", err)
	}

	sections := make(map[string]string, len(core.SectionOrder))
	for _, name := range core.SectionOrder {
		text := strings.TrimSpace(flatten(fields[name]))
		if text == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, name)
		}
		sections[name] = text
	}

	return &core.StructuredReview{
		Summary:          sections[core.SectionSummary],
		ImprovementPoint: sections[core.SectionImprovementPoint],
		SecurityPoint:    sections[core.SectionSecurityPoint],
		ReviewPoint:      sections[core.SectionReviewPoint],
	}, nil
}

// extractReviewJSON returns the JSON object of the review. A fence is only
// stripped when it opens before the object; fences inside section values are
// left alone.
func extractReviewJSON(output string) string {
	trimmed := strings.TrimSpace(output)
	if fenceBeforeJSON(trimmed) {
		return extractJSONObject(stripCodeFence(trimmed))
	}
	return extractJSONObject(trimmed)
}

// fenceBeforeJSON reports whether a line starting with ``` precedes the first "{".
func fenceBeforeJSON(s string) bool {
	brace := strings.Index(s, "{")
	if brace < 0 {
		brace = len(s)
	}
	for _, line := range strings.Split(s[:brace], "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			return true
		}
	}
	return false
}

// stripCodeFence removes ```json ... ``` wrapping that some LLMs add around their output.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	start := strings.Index(trimmed, "```")
	if start < 0 {
		return trimmed
	}
	inner := trimmed[start+3:]
	// Drop the info string ("json", "JSON", ...) up to the end of the fence line.
	if nl := strings.Index(inner, "\n"); nl >= 0 {
		inner = inner[nl+1:]
	}
	if end := strings.LastIndex(inner, "```"); end >= 0 {
		inner = inner[:end]
	}
	return strings.TrimSpace(inner)
}

func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(flatten(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(t)
	}
}
