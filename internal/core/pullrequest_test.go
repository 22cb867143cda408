package core

import (
	"testing"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullRequestFromGitHub(t *testing.T) {
	pr, err := PullRequestFromGitHub(&github.PullRequest{
		Number: github.Ptr(42),
		Title:  github.Ptr("Fix bug"),
	})
	require.NoError(t, err)
	assert.Equal(t, PullRequest{Number: 42, Title: "Fix bug"}, pr)

	_, err = PullRequestFromGitHub(nil)
	assert.Error(t, err)

	_, err = PullRequestFromGitHub(&github.PullRequest{Title: github.Ptr("no number")})
	assert.Error(t, err)
}

func TestStructuredReviewSection(t *testing.T) {
	r := &StructuredReview{
		Summary:          "s",
		ImprovementPoint: "i",
		SecurityPoint:    "sec",
		ReviewPoint:      "r",
	}
	got := make([]string, 0, len(SectionOrder))
	for _, name := range SectionOrder {
		got = append(got, r.Section(name))
	}
	assert.Equal(t, []string{"s", "i", "sec", "r"}, got)
	assert.Empty(t, r.Section("verdict"))
}

func TestRepositoryFullName(t *testing.T) {
	assert.Equal(t, "octo/hello", Repository{Owner: "octo", Name: "hello"}.FullName())
}
