package usecase

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/settings"
	"github.com/m-mizutani/ctxlog"
)

type publisher struct {
	storage  interfaces.ObjectStorage
	reporter interfaces.ErrorReporter
	settings *settings.Settings
	sandbox  bool
}

// NewPublisher creates the master-head artifact publisher. In sandbox mode
// storage and reporter are never called and may be nil.
func NewPublisher(
	cfg *settings.Settings,
	storage interfaces.ObjectStorage,
	reporter interfaces.ErrorReporter,
	sandbox bool,
) interfaces.PublisherUseCase {
	return &publisher{
		storage:  storage,
		reporter: reporter,
		settings: cfg,
		sandbox:  sandbox,
	}
}

// Publish copies the self-extracting builds of a master-head job to their
// static download location. Upload failures are reported and returned in
// the result; they never fail the job.
func (uc *publisher) Publish(ctx context.Context, job *model.JobInfo) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx)

	if uc.sandbox {
		logger.Info("Skipping upload, sandbox mode is enabled")
		return &model.PublishResult{Status: model.PublishStatusSkipped, Reason: "sandbox"}, nil
	}

	uc.listBuildDir(ctx)

	if job.IsPullRequest() || job.Repository != uc.settings.Repository.Canonical {
		logger.Info("Not applicable",
			"pr_number", job.PRNumber,
			"repository", job.Repository,
		)
		return &model.PublishResult{Status: model.PublishStatusSkipped, Reason: "not applicable"}, nil
	}

	route := model.FindPublishRoute(job.JobName)
	if route == nil {
		logger.Info("Not applicable for job", "job_name", job.JobName)
		return &model.PublishResult{Status: model.PublishStatusSkipped, Reason: "no matching build type"}, nil
	}

	logger.Info("Upload builds to static location",
		"build_type", route.BuildType,
		"segment", route.Segment,
		"branch", job.Branch,
	)

	result := &model.PublishResult{
		Status: model.PublishStatusPublished,
		Route:  route,
	}

	for _, upload := range uc.uploads(job, route) {
		outcome, err := uc.storage.CopyFile(ctx, upload)
		if err != nil {
			logger.Error("Failed to upload build", "error", err, "local_path", upload.LocalPath, "key", upload.Key)
			uc.reporter.Report(ctx, err, map[string]string{
				"job_name":   job.JobName,
				"branch":     job.Branch,
				"build_type": string(route.BuildType),
			})
			result.Outcomes = append(result.Outcomes, model.UploadOutcome{Upload: upload, Err: err})
			continue
		}
		result.Outcomes = append(result.Outcomes, *outcome)
	}

	if len(result.Failed()) > 0 {
		result.Status = model.PublishStatusPartialFailure
	}

	return result, nil
}

// uploads returns the full build first and the stripped build second
func (uc *publisher) uploads(job *model.JobInfo, route *model.PublishRoute) []model.Upload {
	p := uc.settings.Publisher
	bucket := uc.settings.S3.Bucket

	return []model.Upload{
		{
			LocalPath:  filepath.Join(p.BuildDir, p.FullBinary),
			Bucket:     bucket,
			Key:        path.Join(job.Branch, route.Segment, p.FullArtifact),
			WithRename: true,
		},
		{
			LocalPath:  filepath.Join(p.BuildDir, p.StrippedBinary),
			Bucket:     bucket,
			Key:        path.Join(job.Branch, route.Segment, p.StrippedArtifact),
			WithRename: true,
		},
	}
}

// listBuildDir logs the build outputs present on disk
func (uc *publisher) listBuildDir(ctx context.Context) {
	logger := ctxlog.From(ctx)
	root := uc.settings.Publisher.BuildDir

	count := 0
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			count++
			logger.Debug("Build output", "path", p)
		}
		return nil
	})
	if err != nil {
		logger.Warn("Failed to list build directory", "dir", root, "error", err)
		return
	}

	logger.Info("Listed build directory", "dir", root, "files", count)
}
