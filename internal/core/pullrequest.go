// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"fmt"

	"github.com/google/go-github/v73/github"
)

// Repository identifies the single repository the advisor watches.
type Repository struct {
	Owner string
	Name  string
}

// FullName returns the "owner/name" form used in logs.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// PullRequest is one entry of the open pull request listing.
type PullRequest struct {
	Number int
	Title  string
}

// ChangedFile holds the filename and patch data for a single file
// included in a pull request. Patch is empty when GitHub omits it
// (binary files, very large diffs).
type ChangedFile struct {
	Filename string
	Patch    string
}

// PullRequestDetail is the full view of a pull request needed for a review.
type PullRequestDetail struct {
	Number int
	Title  string
	Body   string
	Files  []ChangedFile
}

// PullRequestFromGitHub converts a go-github pull request into the
// application's list representation. It rejects entries without a number,
// since the number is the ledger key.
func PullRequestFromGitHub(pr *github.PullRequest) (PullRequest, error) {
	if pr == nil {
		return PullRequest{}, fmt.Errorf("pull request is nil")
	}
	if pr.GetNumber() <= 0 {
		return PullRequest{}, fmt.Errorf("invalid pull request number: %d", pr.GetNumber())
	}
	return PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
	}, nil
}
