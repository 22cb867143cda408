// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/pr-advisor/internal/core"
)

// ErrNotFound is returned when the repository or pull request does not exist
// or is not visible with the configured credential.
var ErrNotFound = errors.New("not found")

const perPage = 100

// Client defines the GitHub operations the advisor needs: listing open pull
// requests, reading one pull request with its changed files, and commenting.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	core.PullRequestSource
	core.CommentPublisher
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface for application-specific GitHub operations.
func NewGitHubClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// ListOpenPullRequests returns all open pull requests, following pagination.
func (g *gitHubClient) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]core.PullRequest, error) {
	var all []core.PullRequest
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		prs, resp, err := g.client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			g.logger.Error("failed to list pull requests", "owner", owner, "repo", repo, "error", err)
			return nil, wrapNotFound(err, fmt.Sprintf("repository %s/%s", owner, repo))
		}

		for _, pr := range prs {
			item, err := core.PullRequestFromGitHub(pr)
			if err != nil {
				return nil, fmt.Errorf("unexpected pull request in listing: %w", err)
			}
			all = append(all, item)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	g.logger.Info("fetched open pull requests", "owner", owner, "repo", repo, "count", len(all))
	return all, nil
}

// GetPullRequest retrieves a pull request with its changed files.
func (g *gitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number, maxFiles int) (*core.PullRequestDetail, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, wrapNotFound(err, fmt.Sprintf("pull request #%d", number))
	}
	g.logger.Info("fetched pull request", "pr", number)

	files, err := g.getChangedFiles(ctx, owner, repo, number, maxFiles)
	if err != nil {
		return nil, err
	}

	return &core.PullRequestDetail{
		Number: number,
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Files:  files,
	}, nil
}

// getChangedFiles retrieves the list of files modified in a pull request.
// It handles pagination, since the GitHub API returns at most 100 files per
// page, and stops early once more than maxFiles files have been collected.
func (g *gitHubClient) getChangedFiles(ctx context.Context, owner, repo string, number, maxFiles int) ([]core.ChangedFile, error) {
	var allFiles []core.ChangedFile
	opts := &github.ListOptions{PerPage: perPage}

	for {
		files, resp, err := g.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, wrapNotFound(err, fmt.Sprintf("pull request #%d", number))
		}

		for _, file := range files {
			allFiles = append(allFiles, core.ChangedFile{
				Filename: file.GetFilename(),
				Patch:    file.GetPatch(),
			})
		}

		if resp.NextPage == 0 || (maxFiles > 0 && len(allFiles) > maxFiles) {
			break
		}
		opts.Page = resp.NextPage
	}

	g.logger.Info("fetched changed files", "pr", number, "count", len(allFiles))
	return allFiles, nil
}

// CreateComment creates a new comment on a pull request.
func (g *gitHubClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: &body}
	_, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		g.logger.Error("failed to create comment", "owner", owner, "repo", repo, "pr", number, "error", err)
		return wrapNotFound(err, fmt.Sprintf("pull request #%d", number))
	}
	g.logger.Info("created comment", "pr", number)
	return nil
}

func wrapNotFound(err error, what string) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
