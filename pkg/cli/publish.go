package cli

import (
	"context"

	"github.com/m-mizutani/cihooks/pkg/cli/config"
	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	storageinfra "github.com/m-mizutani/cihooks/pkg/infra/storage"
	"github.com/m-mizutani/cihooks/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdPublish(settingsCfg *config.Settings, sandboxCfg *config.Sandbox) *cli.Command {
	var (
		jobCfg     config.Job
		storageCfg config.Storage
		sentryCfg  config.Sentry
	)

	flags := append(jobCfg.Flags(), storageCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:  "publish",
		Usage: "Upload master-head builds to their static download location",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			cfg, err := settingsCfg.Load()
			if err != nil {
				return err
			}
			job, err := jobCfg.JobInfo()
			if err != nil {
				return err
			}

			logger.Info("Starting publish hook",
				"job_name", job.JobName,
				"branch", job.Branch,
				"repository", job.Repository,
				"pr_number", job.PRNumber,
				"sandbox", sandboxCfg.Enabled(),
			)

			var (
				storage  interfaces.ObjectStorage
				reporter interfaces.ErrorReporter
			)

			// No client is created on a restricted runner
			if !sandboxCfg.Enabled() {
				lazy := &lazyStorage{
					newClient: func(ctx context.Context) (*storageinfra.Client, error) {
						return storageCfg.NewClient(ctx, cfg.S3)
					},
				}
				defer lazy.Close(ctx)
				storage = lazy

				r := &lazyReporter{newReporter: sentryCfg.NewReporter}
				defer r.Flush()
				reporter = r
			}

			result, err := usecase.NewPublisher(cfg, storage, reporter, sandboxCfg.Enabled()).Publish(ctx, job)
			if err != nil {
				return err
			}

			switch result.Status {
			case model.PublishStatusPartialFailure:
				logger.Warn("Builds were partially published", "error", result.Err(), "failed", len(result.Failed()))
			case model.PublishStatusPublished:
				for _, o := range result.Outcomes {
					logger.Info("Published build", "url", o.URL)
				}
			default:
				logger.Info("Nothing published", "reason", result.Reason)
			}

			return nil
		},
	}
}
