package cli

import (
	"context"

	"github.com/m-mizutani/cihooks/pkg/cli/config"
	"github.com/m-mizutani/cihooks/pkg/infra/customdata"
	"github.com/m-mizutani/cihooks/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdNotify(settingsCfg *config.Settings, sandboxCfg *config.Sandbox) *cli.Command {
	var (
		jobCfg    config.Job
		githubCfg config.GitHub
		dataPath  string
	)

	flags := append(jobCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "custom-data",
		Usage:       "JSON file with custom job data (changed_files); defaults to the settings value",
		Destination: &dataPath,
		Sources:     cli.EnvVars("CIHOOKS_CUSTOM_DATA"),
	})

	return &cli.Command{
		Name:  "notify",
		Usage: "Tag teams on pull requests that change watched files",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if sandboxCfg.Enabled() {
				logger.Info("Skipping team notifications, sandbox mode is enabled")
				return nil
			}

			cfg, err := settingsCfg.Load()
			if err != nil {
				return err
			}
			job, err := jobCfg.JobInfo()
			if err != nil {
				return err
			}

			logger.Debug("GitHub configuration", "github", githubCfg)

			// Created only when a comment or the PR file list is needed
			githubClient := &lazyGitHub{newClient: githubCfg.NewClient}

			if dataPath == "" {
				dataPath = cfg.Notifications.CustomDataPath
			}

			uc := usecase.NewNotifier(githubClient, customdata.New(dataPath), cfg.Notifications.Rules)
			result, err := uc.Notify(ctx, job)
			if err != nil {
				return err
			}

			logger.Info("Team notification check completed",
				"commented", result.Commented(),
				"matches", len(result.Matches),
			)
			return nil
		},
	}
}
