package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/cihooks/pkg/cli/config"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/infra/gtest"
	"github.com/m-mizutani/cihooks/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdUnitTests(settingsCfg *config.Settings, sandboxCfg *config.Sandbox) *cli.Command {
	var (
		binary     string
		resultPath string
	)

	return &cli.Command{
		Name:  "unit-tests",
		Usage: "Run the unit test binary and report the job result",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "binary",
				Usage:       "gtest binary; defaults to the settings value",
				Destination: &binary,
				Sources:     cli.EnvVars("CIHOOKS_UNIT_TESTS_BINARY"),
			},
			&cli.StringFlag{
				Name:        "result",
				Usage:       "Job result JSON path; defaults to the settings value",
				Destination: &resultPath,
				Sources:     cli.EnvVars("CIHOOKS_UNIT_TESTS_RESULT"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			cfg, err := settingsCfg.Load()
			if err != nil {
				return err
			}

			utCfg := cfg.UnitTests
			if binary != "" {
				utCfg.Binary = binary
			}
			if resultPath != "" {
				utCfg.ResultPath = resultPath
			}

			uc := usecase.NewUnitTests(gtest.New(), utCfg, sandboxCfg.Enabled())
			result, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			printSummary(os.Stdout, result)
			logger.Info("Unit tests job completed", "status", result.Status)

			if !result.IsOK() {
				return goerr.New("unit tests failed", goerr.V("failed", result.Report.Failed))
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, result *model.JobResult) {
	bold := color.New(color.Bold)

	switch result.Status {
	case model.JobStatusSkipped:
		color.New(color.FgYellow).Fprintf(w, "%s: skipped (%s)\n", result.Name, result.Info)
		return
	case model.JobStatusSuccess:
		color.New(color.FgGreen, color.Bold).Fprintf(w, "%s: success\n", result.Name)
	default:
		color.New(color.FgRed, color.Bold).Fprintf(w, "%s: failure\n", result.Name)
	}

	r := result.Report
	if r == nil {
		return
	}

	bold.Fprintf(w, "  total %d, passed %d, failed %d, skipped %d (%s)\n",
		r.Total, r.Passed, r.Failed, r.Skipped, r.Duration)

	red := color.New(color.FgRed)
	for _, f := range r.Failures {
		red.Fprintf(w, "  FAIL %s.%s\n", f.Suite, f.Name)
		if f.Message != "" {
			fmt.Fprintf(w, "    %s\n", f.Message)
		}
	}
}
