package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ChangedFilesKey is the custom data key holding the changed-file list
const ChangedFilesKey = "changed_files"

type notifier struct {
	githubClient interfaces.GitHubClient
	customData   interfaces.CustomData
	rules        []model.NotificationRule
}

// NewNotifier creates the team notification hook
func NewNotifier(
	githubClient interfaces.GitHubClient,
	customData interfaces.CustomData,
	rules []model.NotificationRule,
) interfaces.NotifierUseCase {
	return &notifier{
		githubClient: githubClient,
		customData:   customData,
		rules:        rules,
	}
}

// Notify tags the team of each rule whose watched prefixes match a changed
// file. Each rule issues at most one comment upsert per run.
func (uc *notifier) Notify(ctx context.Context, job *model.JobInfo) (*model.NotifyResult, error) {
	logger := ctxlog.From(ctx)
	result := &model.NotifyResult{}

	files, err := uc.changedFiles(ctx, job)
	if err != nil {
		return nil, err
	}

	logger.Info("Checking changed files", "count", len(files), "rules", len(uc.rules))

	for _, rule := range uc.rules {
		file, ok := firstMatch(files, rule.Prefixes)
		if !ok {
			continue
		}

		logger.Info("Watched file changed", "tag", rule.Tag, "file", file)

		if !job.IsPullRequest() {
			logger.Warn("Not a pull request run, skipping comment", "tag", rule.Tag)
			continue
		}

		err := uc.githubClient.UpsertComment(ctx, job.Owner(), job.Name(), job.PRNumber, []model.CommentSection{
			{Tag: rule.Tag, Body: rule.Body},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to post team notification",
				goerr.V("tag", rule.Tag),
				goerr.V("pr_number", job.PRNumber),
			)
		}

		result.Matches = append(result.Matches, model.NotifyMatch{Tag: rule.Tag, File: file})
	}

	return result, nil
}

// changedFiles prefers the list stored by earlier workflow steps and falls
// back to the pull request file list
func (uc *notifier) changedFiles(ctx context.Context, job *model.JobInfo) ([]string, error) {
	files, ok, err := uc.customData.Strings(ChangedFilesKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read changed files")
	}
	if ok {
		return files, nil
	}

	if !job.IsPullRequest() {
		ctxlog.From(ctx).Info("No changed files recorded")
		return nil, nil
	}

	files, err = uc.githubClient.ListChangedFiles(ctx, job.Owner(), job.Name(), job.PRNumber)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch changed files", goerr.V("pr_number", job.PRNumber))
	}
	return files, nil
}

func firstMatch(files, prefixes []string) (string, bool) {
	for _, file := range files {
		for _, prefix := range prefixes {
			if strings.HasPrefix(file, prefix) {
				return file, true
			}
		}
	}
	return "", false
}
