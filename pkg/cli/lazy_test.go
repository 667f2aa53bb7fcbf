package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/infra/storage"
	"github.com/m-mizutani/gt"
)

func TestLazyStorage_ConstructionFailure(t *testing.T) {
	initErr := errors.New("no credentials")
	calls := 0
	s := &lazyStorage{
		newClient: func(ctx context.Context) (*storage.Client, error) {
			calls++
			return nil, initErr
		},
	}

	_, err := s.CopyFile(context.Background(), model.Upload{Bucket: "b", Key: "k"})
	gt.Error(t, err).Is(initErr)
	_, err = s.CopyFile(context.Background(), model.Upload{Bucket: "b", Key: "k2"})
	gt.Error(t, err).Is(initErr)

	gt.Number(t, calls).Equal(1)
	s.Close(context.Background())
}

func TestLazyReporter(t *testing.T) {
	t.Run("created on first report", func(t *testing.T) {
		inner := &mocks.ErrorReporterMock{
			ReportFunc: func(ctx context.Context, err error, tags map[string]string) {},
		}
		flushed := false
		calls := 0
		r := &lazyReporter{
			newReporter: func() (interfaces.ErrorReporter, func(), error) {
				calls++
				return inner, func() { flushed = true }, nil
			},
		}

		r.Flush()
		gt.False(t, flushed)
		gt.Number(t, calls).Equal(0)

		r.Report(context.Background(), errors.New("upload failed"), map[string]string{"build_type": "amd_release"})
		r.Report(context.Background(), errors.New("upload failed"), nil)
		r.Flush()

		gt.Number(t, calls).Equal(1)
		gt.Number(t, len(inner.ReportCalls())).Equal(2)
		gt.True(t, flushed)
	})

	t.Run("unavailable sink drops reports", func(t *testing.T) {
		r := &lazyReporter{
			newReporter: func() (interfaces.ErrorReporter, func(), error) {
				return nil, nil, errors.New("invalid dsn")
			},
		}

		r.Report(context.Background(), errors.New("upload failed"), nil)
		r.Flush()
	})
}

func TestLazyGitHub(t *testing.T) {
	t.Run("not created until used", func(t *testing.T) {
		calls := 0
		inner := &mocks.GitHubClientMock{
			ListChangedFilesFunc: func(ctx context.Context, owner, repo string, number int) ([]string, error) {
				return []string{"src/Core/TypeId.h"}, nil
			},
		}
		g := &lazyGitHub{
			newClient: func() (interfaces.GitHubClient, error) {
				calls++
				return inner, nil
			},
		}
		gt.Number(t, calls).Equal(0)

		files, err := g.ListChangedFiles(context.Background(), "ClickHouse", "ClickHouse", 1)
		gt.NoError(t, err)
		gt.Number(t, len(files)).Equal(1)
		gt.Number(t, calls).Equal(1)
	})

	t.Run("construction failure", func(t *testing.T) {
		initErr := errors.New("GitHub token is empty")
		g := &lazyGitHub{
			newClient: func() (interfaces.GitHubClient, error) {
				return nil, initErr
			},
		}

		err := g.UpsertComment(context.Background(), "ClickHouse", "ClickHouse", 1, nil)
		gt.Error(t, err).Is(initErr)
	})
}
