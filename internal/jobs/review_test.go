package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-advisor/internal/config"
	"github.com/sevigo/pr-advisor/internal/core"
	"github.com/sevigo/pr-advisor/internal/github"
	"github.com/sevigo/pr-advisor/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		GitHub: config.GitHubConfig{Owner: "acme", Repo: "widgets"},
		Polling: config.PollingConfig{
			HistoryFilePath: "history.json",
			Interval:        config.DefaultInterval,
			BumpPattern:     config.DefaultBumpPattern,
		},
	}
}

var testReview = &core.StructuredReview{
	Summary:          "sum",
	ImprovementPoint: "imp",
	SecurityPoint:    "sec",
	ReviewPoint:      "rev",
}

func manyFiles(n int) []core.ChangedFile {
	files := make([]core.ChangedFile, n)
	for i := range files {
		files[i] = core.ChangedFile{Filename: fmt.Sprintf("f%d.go", i), Patch: "+x"}
	}
	return files
}

type jobMocks struct {
	source    *mocks.MockPullRequestSource
	publisher *mocks.MockCommentPublisher
	generator *mocks.MockReviewGenerator
}

func newTestJob(t *testing.T, cfg *config.Config) (*ReviewJob, jobMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := jobMocks{
		source:    mocks.NewMockPullRequestSource(ctrl),
		publisher: mocks.NewMockCommentPublisher(ctrl),
		generator: mocks.NewMockReviewGenerator(ctrl),
	}
	job, err := NewReviewJob(cfg, m.source, m.publisher, m.generator, testLogger())
	require.NoError(t, err)
	return job, m
}

func TestReviewJob_Run_PublishesComment(t *testing.T) {
	job, m := newTestJob(t, testConfig())
	ctx := context.Background()

	m.source.EXPECT().GetPullRequest(ctx, "acme", "widgets", 7, MaxChangedFiles).Return(&core.PullRequestDetail{
		Number: 7,
		Title:  "Add cache",
		Body:   "Faster lookups",
		Files: []core.ChangedFile{
			{Filename: "a.py", Patch: "+x"},
			{Filename: "b.py"},
		},
	}, nil)
	m.generator.EXPECT().Generate(ctx, core.ReviewInput{
		Title: "Add cache",
		Body:  "Faster lookups",
		Diff:  "a.py : +x\n",
	}).Return(testReview, nil)
	m.generator.EXPECT().ModelName().Return("solar-pro")
	m.publisher.EXPECT().CreateComment(ctx, "acme", "widgets", 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ int, body string) error {
			assert.True(t, strings.HasPrefix(body, "Automated Review Comment by PR Advisor (solar-pro):"))
			return nil
		})

	res, err := job.Run(ctx, 7)
	require.NoError(t, err)
	assert.True(t, res.Published)
	assert.False(t, res.Skipped())
	assert.Equal(t, "Add cache", res.Title)
}

func TestReviewJob_Run_Skips(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		files    []core.ChangedFile
		wantSkip SkipReason
	}{
		{name: "Bump title", title: "Bump lodash from 4.17.20 to 4.17.21", files: manyFiles(1), wantSkip: SkipBump},
		{name: "Bump wins over empty diff", title: "Bump x to y", files: nil, wantSkip: SkipBump},
		{name: "No changed files", title: "Refactor", files: nil, wantSkip: SkipEmptyDiff},
		{name: "101 changed files", title: "Huge change", files: manyFiles(101), wantSkip: SkipTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, m := newTestJob(t, testConfig())
			m.source.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 3, MaxChangedFiles).
				Return(&core.PullRequestDetail{Number: 3, Title: tt.title, Files: tt.files}, nil)
			// No generator or publisher expectations: any call fails the test.

			res, err := job.Run(context.Background(), 3)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, res.Skip)
			assert.Empty(t, res.Comment)
			assert.False(t, res.Published)
		})
	}
}

func TestReviewJob_Run_ExactlyMaxFilesIsReviewed(t *testing.T) {
	job, m := newTestJob(t, testConfig())
	m.source.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 1, gomock.Any()).
		Return(&core.PullRequestDetail{Number: 1, Title: "Wide", Files: manyFiles(MaxChangedFiles)}, nil)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(testReview, nil)
	m.generator.EXPECT().ModelName().Return("m")
	m.publisher.EXPECT().CreateComment(gomock.Any(), gomock.Any(), gomock.Any(), 1, gomock.Any()).Return(nil)

	res, err := job.Run(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, res.Published)
}

func TestReviewJob_Run_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("Fetch not found", func(t *testing.T) {
		job, m := newTestJob(t, testConfig())
		m.source.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 9, gomock.Any()).
			Return(nil, fmt.Errorf("pull request 9: %w", github.ErrNotFound))

		_, err := job.Run(context.Background(), 9)
		assert.ErrorIs(t, err, github.ErrNotFound)
	})

	t.Run("Generation fails", func(t *testing.T) {
		job, m := newTestJob(t, testConfig())
		m.source.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 9, gomock.Any()).
			Return(&core.PullRequestDetail{Number: 9, Title: "t", Files: manyFiles(1)}, nil)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := job.Run(context.Background(), 9)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Publish fails", func(t *testing.T) {
		job, m := newTestJob(t, testConfig())
		m.source.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 9, gomock.Any()).
			Return(&core.PullRequestDetail{Number: 9, Title: "t", Files: manyFiles(1)}, nil)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(testReview, nil)
		m.generator.EXPECT().ModelName().Return("m")
		m.publisher.EXPECT().CreateComment(gomock.Any(), gomock.Any(), gomock.Any(), 9, gomock.Any()).Return(boom)

		res, err := job.Run(context.Background(), 9)
		assert.ErrorIs(t, err, boom)
		assert.False(t, res.Published)
	})
}

func TestReviewJob_Run_JustPrint(t *testing.T) {
	cfg := testConfig()
	cfg.Polling.JustPrint = true
	job, m := newTestJob(t, cfg)

	m.source.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 5, gomock.Any()).
		Return(&core.PullRequestDetail{Number: 5, Title: "t", Files: manyFiles(2)}, nil)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(testReview, nil)
	m.generator.EXPECT().ModelName().Return("gemma3:latest")

	res, err := job.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, res.Published)
	assert.Contains(t, res.Comment, "- Summary: sum")
}

func TestNewReviewJob_InvalidBumpPattern(t *testing.T) {
	cfg := testConfig()
	cfg.Polling.BumpPattern = "("
	ctrl := gomock.NewController(t)
	_, err := NewReviewJob(cfg,
		mocks.NewMockPullRequestSource(ctrl),
		mocks.NewMockCommentPublisher(ctrl),
		mocks.NewMockReviewGenerator(ctrl),
		testLogger())
	require.Error(t, err)
}

func TestBuildDiff(t *testing.T) {
	diff, skip := buildDiff([]core.ChangedFile{
		{Filename: "a.py", Patch: "+x"},
		{Filename: "b.py"},
		{Filename: "c.go", Patch: "@@ -1 +1 @@\n-a\n+b"},
	})
	assert.Equal(t, SkipNone, skip)
	assert.Equal(t, "a.py : +x\nc.go : @@ -1 +1 @@\n-a\n+b\n", diff)
	assert.NotContains(t, diff, "b.py")

	_, skip = buildDiff(nil)
	assert.Equal(t, SkipEmptyDiff, skip)
	_, skip = buildDiff(manyFiles(MaxChangedFiles + 1))
	assert.Equal(t, SkipTooLarge, skip)
}

func TestRenderComment(t *testing.T) {
	got := RenderComment(testReview, "PR Advisor", "solar-pro")
	want := "Automated Review Comment by PR Advisor (solar-pro):\n\n" +
		"- Summary: sum\n" +
		"- Improvement point: imp\n" +
		"- Security point: sec\n" +
		"- Review point: rev"
	assert.Equal(t, want, got)
}

func TestSkipReason_String(t *testing.T) {
	assert.Equal(t, "bump pull request", SkipBump.String())
	assert.Equal(t, "no diff found", SkipEmptyDiff.String())
	assert.Equal(t, "too many changed files", SkipTooLarge.String())
	assert.Equal(t, "unknown", SkipReason(42).String())
}
