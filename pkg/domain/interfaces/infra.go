package interfaces

//go:generate moq -out mocks/infra_mock.go -pkg mocks . ObjectStorage ErrorReporter TestCollector CustomData

import (
	"context"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
)

// ObjectStorage copies local files to an object storage bucket
type ObjectStorage interface {
	// CopyFile uploads upload.LocalPath and returns the stored object info
	CopyFile(ctx context.Context, upload model.Upload) (*model.UploadOutcome, error)
}

// ErrorReporter forwards errors that do not fail the job to an
// observability sink
type ErrorReporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}

// TestCollector runs a test binary and aggregates its results
type TestCollector interface {
	Collect(ctx context.Context, binaryPath string) (*model.TestReport, error)
}

// CustomData reads named attributes stored by earlier steps of the job
type CustomData interface {
	Strings(key string) ([]string, bool, error)
}
