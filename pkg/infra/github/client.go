package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	githubClient *github.Client
}

// Option configures the GitHub client
type Option func(*github.Client) error

// WithBaseURL points the client to a different API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *github.Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "failed to parse GitHub base URL", goerr.V("url", baseURL))
		}
		c.BaseURL = u
		return nil
	}
}

// NewClient creates a new GitHub client with App authentication
func NewClient(appID, installationID int64, privateKey []byte, opts ...Option) (interfaces.GitHubClient, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID),
			goerr.V("installation_id", installationID),
		)
	}

	return newClient(github.NewClient(&http.Client{Transport: itr}), opts...)
}

// NewClientWithToken creates a new GitHub client authenticated by a token,
// e.g. the GITHUB_TOKEN of a workflow run
func NewClientWithToken(token string, opts ...Option) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is empty")
	}
	return newClient(github.NewClient(nil).WithAuthToken(token), opts...)
}

func newClient(githubClient *github.Client, opts ...Option) (*client, error) {
	for _, opt := range opts {
		if err := opt(githubClient); err != nil {
			return nil, err
		}
	}
	return &client{githubClient: githubClient}, nil
}

// UpsertComment merges sections into the sticky comment of the pull request,
// creating the comment when it does not exist yet
func (c *client) UpsertComment(ctx context.Context, owner, repo string, number int, sections []model.CommentSection) error {
	logger := ctxlog.From(ctx)

	existing, err := c.findStickyComment(ctx, owner, repo, number)
	if err != nil {
		return err
	}

	if existing == nil {
		body := mergeSections("", sections)
		if _, _, err := c.githubClient.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
			Body: github.Ptr(body),
		}); err != nil {
			return goerr.Wrap(err, "failed to create comment",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("number", number),
			)
		}
		logger.Info("Created sticky comment", "owner", owner, "repo", repo, "number", number)
		return nil
	}

	body := mergeSections(existing.GetBody(), sections)
	if body == existing.GetBody() {
		logger.Info("Sticky comment is up to date", "comment_id", existing.GetID())
		return nil
	}

	if _, _, err := c.githubClient.Issues.EditComment(ctx, owner, repo, existing.GetID(), &github.IssueComment{
		Body: github.Ptr(body),
	}); err != nil {
		return goerr.Wrap(err, "failed to update comment",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("comment_id", existing.GetID()),
		)
	}
	logger.Info("Updated sticky comment", "comment_id", existing.GetID())

	return nil
}

func (c *client) findStickyComment(ctx context.Context, owner, repo string, number int) (*github.IssueComment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := c.githubClient.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list comments",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("number", number),
			)
		}

		for _, comment := range comments {
			if isStickyComment(comment.GetBody()) {
				return comment, nil
			}
		}

		if resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

// ListChangedFiles retrieves the list of changed files in a pull request
func (c *client) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]string, error) {
	var files []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		page, resp, err := c.githubClient.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull request files",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("number", number),
			)
		}

		for _, file := range page {
			if file.GetFilename() != "" {
				files = append(files, file.GetFilename())
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}
