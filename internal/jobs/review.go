// Package jobs drives pull requests through the review pipeline and runs
// the polling loop around it.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/core"
)

// MaxChangedFiles is the largest pull request, in changed files, that is
// sent for review.
const MaxChangedFiles = 100

// AdvisorName is named in the comment attribution header.
const AdvisorName = "PR Advisor"

// sectionLabels maps sections to the bullet labels of the rendered comment.
var sectionLabels = map[string]string{
	core.SectionSummary:          "Summary",
	core.SectionImprovementPoint: "Improvement point",
	core.SectionSecurityPoint:    "Security point",
	core.SectionReviewPoint:      "Review point",
}

// ReviewJob runs the per-request pipeline: fetch, bump gate, diff build,
// generate, render and publish.
type ReviewJob struct {
	repo      core.Repository
	source    core.PullRequestSource
	publisher core.CommentPublisher
	generator core.ReviewGenerator
	bump      *regexp.Regexp
	justPrint bool
	logger    *slog.Logger
}

// NewReviewJob creates a ReviewJob for the configured repository.
func NewReviewJob(
	cfg *config.Config,
	source core.PullRequestSource,
	publisher core.CommentPublisher,
	generator core.ReviewGenerator,
	logger *slog.Logger,
) (*ReviewJob, error) {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if source == nil || publisher == nil || generator == nil {
		panic("review job collaborators cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	pattern := cfg.Polling.BumpPattern
	if pattern == "" {
		pattern = config.DefaultBumpPattern
	}
	bump, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid bump pattern %q: %w", pattern, err)
	}

	return &ReviewJob{
		repo:      core.Repository{Owner: cfg.GitHub.Owner, Name: cfg.GitHub.Repo},
		source:    source,
		publisher: publisher,
		generator: generator,
		bump:      bump,
		justPrint: cfg.Polling.JustPrint,
		logger:    logger,
	}, nil
}

// Run reviews pull request number. Skips are reported through Result; an
// error means fetching, generation or publishing failed.
func (j *ReviewJob) Run(ctx context.Context, number int) (Result, error) {
	res := Result{Number: number}

	pr, err := j.source.GetPullRequest(ctx, j.repo.Owner, j.repo.Name, number, MaxChangedFiles)
	if err != nil {
		return res, fmt.Errorf("failed to get PR details: %w", err)
	}
	res.Title = pr.Title
	j.logger.Info("fetched PR details", "pr", number, "files", len(pr.Files))

	if j.bump.MatchString(pr.Title) {
		res.Skip = SkipBump
		return res, nil
	}

	diff, skip := buildDiff(pr.Files)
	if skip != SkipNone {
		res.Skip = skip
		return res, nil
	}

	review, err := j.generator.Generate(ctx, core.ReviewInput{
		Title: pr.Title,
		Body:  pr.Body,
		Diff:  diff,
	})
	if err != nil {
		return res, fmt.Errorf("failed to generate review: %w", err)
	}

	res.Comment = RenderComment(review, AdvisorName, j.generator.ModelName())
	if j.justPrint {
		return res, nil
	}

	if err := j.publisher.CreateComment(ctx, j.repo.Owner, j.repo.Name, number, res.Comment); err != nil {
		return res, fmt.Errorf("failed to post review comment: %w", err)
	}
	res.Published = true
	j.logger.Info("posted review comment", "pr", number)
	return res, nil
}

// buildDiff concatenates "<filename> : <patch>" lines for every file that
// carries a patch. The file count limits apply to all changed files.
func buildDiff(files []core.ChangedFile) (string, SkipReason) {
	if len(files) == 0 {
		return "", SkipEmptyDiff
	}
	if len(files) > MaxChangedFiles {
		return "", SkipTooLarge
	}

	var sb strings.Builder
	for _, f := range files {
		if f.Patch == "" {
			continue
		}
		sb.WriteString(f.Filename)
		sb.WriteString(" : ")
		sb.WriteString(f.Patch)
		sb.WriteString("\n")
	}
	return sb.String(), SkipNone
}

// RenderComment formats review as the comment body: an attribution header
// followed by one labeled bullet per section in core.SectionOrder.
func RenderComment(review *core.StructuredReview, advisor, model string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Automated Review Comment by %s (%s):\n\n", advisor, model)
	for i, name := range core.SectionOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s: %s", sectionLabels[name], review.Section(name))
	}
	return sb.String()
}
