package config

import (
	"strconv"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/cihooks/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub configuration. App credentials take precedence over
// the token.
type GitHub struct {
	Token          string `masq:"secret"`
	AppID          string
	InstallationID string
	PrivateKey     string `masq:"secret"`
	APIURL         string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("CIHOOKS_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("CIHOOKS_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("CIHOOKS_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("CIHOOKS_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("CIHOOKS_GITHUB_API_URL", "GITHUB_API_URL"),
		},
	}
}

// NewClient creates the GitHub client from the configured credentials
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}

	if c.AppID == "" {
		return githubinfra.NewClientWithToken(c.Token, opts...)
	}

	appID, err := strconv.ParseInt(c.AppID, 10, 64)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub App ID", goerr.V("app_id", c.AppID))
	}
	installationID, err := strconv.ParseInt(c.InstallationID, 10, 64)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub App installation ID", goerr.V("installation_id", c.InstallationID))
	}

	return githubinfra.NewClient(appID, installationID, []byte(c.PrivateKey), opts...)
}
