package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type reporter struct {
	hub *sentry.Hub
}

// NewReporter initializes a Sentry client and returns an ErrorReporter
// sending to it. The caller must call Flush before the process exits.
func NewReporter(dsn, environment, release string) (*reporter, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sentry client")
	}

	return &reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report captures err with tags attached to the event
func (r *reporter) Report(ctx context.Context, err error, tags map[string]string) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		if goErr := goerr.Unwrap(err); goErr != nil {
			scope.SetContext("error", goErr.Values())
		}
		eventID := r.hub.CaptureException(err)
		if eventID != nil {
			ctxlog.From(ctx).Info("Reported error to Sentry", "event_id", *eventID)
		}
	})
}

// Flush waits until buffered events are sent or timeout elapses
func (r *reporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

type nopReporter struct{}

// NewNopReporter returns an ErrorReporter that only logs
func NewNopReporter() interfaces.ErrorReporter {
	return nopReporter{}
}

func (nopReporter) Report(ctx context.Context, err error, tags map[string]string) {
	ctxlog.From(ctx).Debug("Error reporting is disabled", "error", err)
}
