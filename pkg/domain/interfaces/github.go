package interfaces

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHubClient

import (
	"context"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// UpsertComment creates or updates the sticky comment of a pull request
	// so that it carries the given tagged sections
	UpsertComment(ctx context.Context, owner, repo string, number int, sections []model.CommentSection) error

	// ListChangedFiles returns the paths changed by a pull request
	ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]string, error)
}
