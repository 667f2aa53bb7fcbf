package config

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Job holds the identity of the current CI run
type Job struct {
	Name       string
	PRNumber   string
	Repository string
	Branch     string
	Ref        string
}

// Flags returns CLI flags for job identity
func (c *Job) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "job-name",
			Usage:       "CI job name",
			Destination: &c.Name,
			Sources:     cli.EnvVars("CIHOOKS_JOB_NAME", "JOB_NAME"),
		},
		&cli.StringFlag{
			Name:        "pr-number",
			Usage:       "Pull request number, empty for push runs",
			Destination: &c.PRNumber,
			Sources:     cli.EnvVars("CIHOOKS_PR_NUMBER", "PR_NUMBER"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Repository full name (owner/name)",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("CIHOOKS_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Git branch of the run",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("CIHOOKS_BRANCH", "GITHUB_REF_NAME"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Full git ref, used to derive the PR number (refs/pull/N/merge)",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
	}
}

// JobInfo builds the immutable job snapshot
func (c *Job) JobInfo() (*model.JobInfo, error) {
	info := &model.JobInfo{
		Repository: c.Repository,
		JobName:    c.Name,
		Branch:     c.Branch,
	}

	number := c.PRNumber
	if number == "" {
		number = prNumberFromRef(c.Ref)
	}
	if number != "" {
		n, err := strconv.Atoi(number)
		if err != nil || n < 0 {
			return nil, goerr.New("invalid pull request number", goerr.V("pr_number", number))
		}
		info.PRNumber = n
	}

	if info.Repository != "" && !strings.Contains(info.Repository, "/") {
		return nil, goerr.New("repository must be owner/name", goerr.V("repository", info.Repository))
	}

	return info, nil
}

func prNumberFromRef(ref string) string {
	rest, ok := strings.CutPrefix(ref, "refs/pull/")
	if !ok {
		return ""
	}
	number, _, _ := strings.Cut(rest, "/")
	return number
}
