package core

import "context"

// PullRequestSource lists open pull requests and fetches the details of one.
//
//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks . PullRequestSource,CommentPublisher,ReviewGenerator
type PullRequestSource interface {
	// ListOpenPullRequests returns every open pull request in the order the
	// hosting API reports them. A partial list is never returned.
	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]PullRequest, error)
	// GetPullRequest returns title, body and the changed files of one pull
	// request. Implementations may stop collecting files once more than
	// maxFiles have been seen; a non-positive maxFiles means no limit.
	GetPullRequest(ctx context.Context, owner, repo string, number, maxFiles int) (*PullRequestDetail, error)
}

// CommentPublisher posts a comment body against a pull request.
type CommentPublisher interface {
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

// ReviewGenerator produces a structured review for a pull request.
type ReviewGenerator interface {
	Generate(ctx context.Context, input ReviewInput) (*StructuredReview, error)
	// ModelName is the model named in the comment attribution header.
	ModelName() string
}
