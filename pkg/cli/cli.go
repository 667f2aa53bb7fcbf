package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/m-mizutani/cihooks/pkg/cli/config"
	"github.com/m-mizutani/cihooks/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg   config.Logger
		settingsCfg config.Settings
		sandboxCfg  config.Sandbox
		logger      *slog.Logger
	)

	flags := append(loggerCfg.Flags(), settingsCfg.Flags()...)
	flags = append(flags, sandboxCfg.Flags()...)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:    "cihooks",
		Usage:   "CI job and workflow hooks",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdPublish(&settingsCfg, &sandboxCfg),
			cmdNotify(&settingsCfg, &sandboxCfg),
			cmdUnitTests(&settingsCfg, &sandboxCfg),
			cmdSettings(&settingsCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
