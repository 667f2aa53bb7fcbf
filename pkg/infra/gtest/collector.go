package gtest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type execFunc func(ctx context.Context, name string, args ...string) error

// Collector runs a gtest binary and aggregates its JSON report
type Collector struct {
	exec      execFunc
	reportDir string
}

// Option configures the collector
type Option func(*Collector)

// WithReportDir sets where the JSON report is written. Defaults to a
// temporary directory.
func WithReportDir(dir string) Option {
	return func(c *Collector) {
		c.reportDir = dir
	}
}

// WithOutput redirects the test binary stdout and stderr
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Collector) {
		c.exec = func(ctx context.Context, name string, args ...string) error {
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Stdout = stdout
			cmd.Stderr = stderr
			return cmd.Run()
		}
	}
}

// New creates a Collector
func New(opts ...Option) *Collector {
	c := &Collector{}
	WithOutput(os.Stdout, os.Stderr)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs the binary with --gtest_output=json and returns the
// aggregated report. A non-zero exit caused by failing tests is not an
// error; a binary that leaves no report is.
func (c *Collector) Collect(ctx context.Context, binaryPath string) (*model.TestReport, error) {
	logger := ctxlog.From(ctx)

	if _, err := os.Stat(binaryPath); err != nil {
		return nil, goerr.Wrap(err, "test binary not found", goerr.V("path", binaryPath))
	}

	dir := c.reportDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "gtest-report-*")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create report directory")
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	reportPath := filepath.Join(dir, "gtest_report.json")

	logger.Info("Running gtest binary", "path", binaryPath, "report", reportPath)

	started := time.Now()
	runErr := c.exec(ctx, binaryPath, "--gtest_output=json:"+reportPath)
	elapsed := time.Since(started)

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return nil, goerr.Wrap(runErr, "failed to run test binary", goerr.V("path", binaryPath))
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return nil, goerr.Wrap(err, "test binary produced no report",
			goerr.V("path", binaryPath),
			goerr.V("run_error", runErr),
		)
	}
	defer f.Close()

	report, err := ParseReport(f)
	if err != nil {
		return nil, err
	}
	if report.Duration == 0 {
		report.Duration = elapsed
	}

	if exitErr != nil && report.Failed == 0 {
		// Crashed after writing a report, e.g. in a global teardown
		report.Failed++
		report.Failures = append(report.Failures, model.TestFailure{
			Suite:   "(binary)",
			Name:    filepath.Base(binaryPath),
			Message: exitErr.Error(),
		})
	}

	logger.Info("Collected test results",
		"total", report.Total,
		"passed", report.Passed,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"duration", report.Duration,
	)

	return report, nil
}

type jsonReport struct {
	Time       string      `json:"time"`
	TestSuites []jsonSuite `json:"testsuites"`
}

type jsonSuite struct {
	Name      string     `json:"name"`
	TestSuite []jsonCase `json:"testsuite"`
}

type jsonCase struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Result   string        `json:"result"`
	Failures []jsonFailure `json:"failures"`
}

type jsonFailure struct {
	Failure string `json:"failure"`
}

// ParseReport aggregates a gtest JSON report
func ParseReport(r io.Reader) (*model.TestReport, error) {
	var raw jsonReport
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, goerr.Wrap(err, "failed to decode gtest report")
	}

	report := &model.TestReport{}
	if d, err := time.ParseDuration(raw.Time); err == nil {
		report.Duration = d
	}

	for _, suite := range raw.TestSuites {
		for _, tc := range suite.TestSuite {
			report.Total++
			switch {
			case len(tc.Failures) > 0:
				report.Failed++
				failure := model.TestFailure{Suite: suite.Name, Name: tc.Name}
				for _, f := range tc.Failures {
					if failure.Message != "" {
						failure.Message += "\n"
					}
					failure.Message += f.Failure
				}
				report.Failures = append(report.Failures, failure)
			case tc.Status == "NOTRUN" || tc.Result == "SKIPPED" || tc.Result == "SUPPRESSED":
				report.Skipped++
			default:
				report.Passed++
			}
		}
	}

	return report, nil
}
