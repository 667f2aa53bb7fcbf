package cli

import (
	"context"
	"sync"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/infra/storage"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Clients below are created on first use, so runs that are skipped never
// need credentials.

type lazyStorage struct {
	newClient func(ctx context.Context) (*storage.Client, error)

	once   sync.Once
	client *storage.Client
	err    error
}

func (s *lazyStorage) CopyFile(ctx context.Context, upload model.Upload) (*model.UploadOutcome, error) {
	s.once.Do(func() {
		s.client, s.err = s.newClient(ctx)
	})
	if s.err != nil {
		return nil, goerr.Wrap(s.err, "object storage is unavailable")
	}
	return s.client.CopyFile(ctx, upload)
}

func (s *lazyStorage) Close(ctx context.Context) {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		ctxlog.From(ctx).Warn("Failed to close storage client", "error", err)
	}
}

type lazyReporter struct {
	newReporter func() (interfaces.ErrorReporter, func(), error)

	once     sync.Once
	reporter interfaces.ErrorReporter
	flush    func()
}

// Report sends err to the sink. An unavailable sink drops the report.
func (r *lazyReporter) Report(ctx context.Context, err error, tags map[string]string) {
	r.once.Do(func() {
		reporter, flush, initErr := r.newReporter()
		if initErr != nil {
			ctxlog.From(ctx).Warn("Error reporter is unavailable", "error", initErr)
			return
		}
		r.reporter, r.flush = reporter, flush
	})
	if r.reporter == nil {
		return
	}
	r.reporter.Report(ctx, err, tags)
}

func (r *lazyReporter) Flush() {
	if r.flush != nil {
		r.flush()
	}
}

type lazyGitHub struct {
	newClient func() (interfaces.GitHubClient, error)

	once   sync.Once
	client interfaces.GitHubClient
	err    error
}

func (g *lazyGitHub) get() (interfaces.GitHubClient, error) {
	g.once.Do(func() {
		g.client, g.err = g.newClient()
	})
	if g.err != nil {
		return nil, goerr.Wrap(g.err, "GitHub client is unavailable")
	}
	return g.client, nil
}

func (g *lazyGitHub) UpsertComment(ctx context.Context, owner, repo string, number int, sections []model.CommentSection) error {
	client, err := g.get()
	if err != nil {
		return err
	}
	return client.UpsertComment(ctx, owner, repo, number, sections)
}

func (g *lazyGitHub) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]string, error) {
	client, err := g.get()
	if err != nil {
		return nil, err
	}
	return client.ListChangedFiles(ctx, owner, repo, number)
}
