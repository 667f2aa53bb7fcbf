package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/settings"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// UnitTestsJobName is the job name written to the result file
const UnitTestsJobName = "Unit tests"

type unitTests struct {
	collector interfaces.TestCollector
	cfg       settings.UnitTests
	sandbox   bool
}

// NewUnitTests creates the unit test job runner
func NewUnitTests(collector interfaces.TestCollector, cfg settings.UnitTests, sandbox bool) interfaces.UnitTestsUseCase {
	return &unitTests{
		collector: collector,
		cfg:       cfg,
		sandbox:   sandbox,
	}
}

// Run executes the unit test binary and writes the job result. In sandbox
// mode the cache variables are set to inert values and no test runs.
func (uc *unitTests) Run(ctx context.Context) (*model.JobResult, error) {
	logger := ctxlog.From(ctx)

	if uc.sandbox {
		logger.Info("Skipping unit tests, sandbox mode is enabled")
		if err := uc.disableCaches(ctx); err != nil {
			return nil, err
		}
		return &model.JobResult{
			Name:   UnitTestsJobName,
			Status: model.JobStatusSkipped,
			Info:   "sandbox mode",
		}, nil
	}

	report, err := uc.collector.Collect(ctx, uc.cfg.Binary)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to collect unit test results")
	}

	result := &model.JobResult{
		Name:   UnitTestsJobName,
		Status: report.Status(),
		Report: report,
	}

	if err := uc.writeResult(result); err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *unitTests) disableCaches(ctx context.Context) error {
	keys := make([]string, 0, len(uc.cfg.SandboxEnv))
	for k := range uc.cfg.SandboxEnv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if err := os.Setenv(k, uc.cfg.SandboxEnv[k]); err != nil {
			return goerr.Wrap(err, "failed to set environment variable", goerr.V("key", k))
		}
		ctxlog.From(ctx).Debug("Set cache placeholder", "key", k, "value", uc.cfg.SandboxEnv[k])
	}
	return nil
}

func (uc *unitTests) writeResult(result *model.JobResult) error {
	if uc.cfg.ResultPath == "" {
		return nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode job result")
	}

	if err := os.MkdirAll(filepath.Dir(uc.cfg.ResultPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create result directory", goerr.V("path", uc.cfg.ResultPath))
	}
	if err := os.WriteFile(uc.cfg.ResultPath, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write job result", goerr.V("path", uc.cfg.ResultPath))
	}

	return nil
}
