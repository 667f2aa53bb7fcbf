package interfaces

import (
	"context"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
)

// PublisherUseCase uploads master-head builds to their static location
type PublisherUseCase interface {
	Publish(ctx context.Context, job *model.JobInfo) (*model.PublishResult, error)
}

// NotifierUseCase tags teams on pull requests touching watched files
type NotifierUseCase interface {
	Notify(ctx context.Context, job *model.JobInfo) (*model.NotifyResult, error)
}

// UnitTestsUseCase runs the unit test job
type UnitTestsUseCase interface {
	Run(ctx context.Context) (*model.JobResult, error)
}
