package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func collectorMock(report *model.TestReport, err error) *mocks.TestCollectorMock {
	return &mocks.TestCollectorMock{
		CollectFunc: func(ctx context.Context, binaryPath string) (*model.TestReport, error) {
			return report, err
		},
	}
}

func TestUnitTests_Run(t *testing.T) {
	t.Run("all tests pass", func(t *testing.T) {
		cfg := newSettings(t).UnitTests
		cfg.ResultPath = filepath.Join(t.TempDir(), "tmp", "result_unit_tests.json")
		collector := collectorMock(&model.TestReport{Total: 3, Passed: 2, Skipped: 1}, nil)

		result, err := usecase.NewUnitTests(collector, cfg, false).Run(context.Background())
		gt.NoError(t, err)
		gt.Value(t, result.Status).Equal(model.JobStatusSuccess)
		gt.True(t, result.IsOK())

		calls := collector.CollectCalls()
		gt.Number(t, len(calls)).Equal(1)
		gt.Value(t, calls[0].BinaryPath).Equal("./ci/tmp/unit_tests_dbms")

		data, err := os.ReadFile(cfg.ResultPath)
		gt.NoError(t, err)
		var written model.JobResult
		gt.NoError(t, json.Unmarshal(data, &written))
		gt.Value(t, written.Status).Equal(model.JobStatusSuccess)
		gt.Number(t, written.Report.Passed).Equal(2)
	})

	t.Run("failed tests", func(t *testing.T) {
		cfg := newSettings(t).UnitTests
		cfg.ResultPath = filepath.Join(t.TempDir(), "result.json")
		collector := collectorMock(&model.TestReport{
			Total:    2,
			Passed:   1,
			Failed:   1,
			Failures: []model.TestFailure{{Suite: "TypeId", Name: "Basic", Message: "mismatch"}},
		}, nil)

		result, err := usecase.NewUnitTests(collector, cfg, false).Run(context.Background())
		gt.NoError(t, err)
		gt.Value(t, result.Status).Equal(model.JobStatusFailure)
		gt.False(t, result.IsOK())
	})

	t.Run("collector failure", func(t *testing.T) {
		cfg := newSettings(t).UnitTests
		cfg.ResultPath = ""
		collectErr := errors.New("binary not found")

		_, err := usecase.NewUnitTests(collectorMock(nil, collectErr), cfg, false).Run(context.Background())
		gt.Error(t, err).Is(collectErr)
	})
}

func TestUnitTests_Sandbox(t *testing.T) {
	cfg := newSettings(t).UnitTests
	for k := range cfg.SandboxEnv {
		// Restored after the test
		t.Setenv(k, "original")
	}

	collector := collectorMock(nil, errors.New("must not be called"))
	result, err := usecase.NewUnitTests(collector, cfg, true).Run(context.Background())
	gt.NoError(t, err)
	gt.Value(t, result.Status).Equal(model.JobStatusSkipped)
	gt.True(t, result.IsOK())
	gt.Number(t, len(collector.CollectCalls())).Equal(0)

	gt.Value(t, os.Getenv("SCCACHE_IDLE_TIMEOUT")).Equal("0")
	gt.Value(t, os.Getenv("SCCACHE_BUCKET")).Equal("none")
	gt.Value(t, os.Getenv("SCCACHE_S3_KEY_PREFIX")).Equal("none")
	gt.Value(t, os.Getenv("CTCACHE_DIR")).Equal("/tmp/ctcache")
	gt.Value(t, os.Getenv("CTCACHE_S3_FOLDER")).Equal("none")
}
