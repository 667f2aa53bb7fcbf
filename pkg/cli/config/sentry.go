package config

import (
	"time"

	"github.com/m-mizutani/cihooks/pkg/domain/interfaces"
	"github.com/m-mizutani/cihooks/pkg/domain/types"
	sentryinfra "github.com/m-mizutani/cihooks/pkg/infra/sentry"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN         string `masq:"secret"`
	Environment string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN; errors are only logged when empty",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("CIHOOKS_SENTRY_DSN", "SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "ci",
			Destination: &c.Environment,
			Sources:     cli.EnvVars("CIHOOKS_SENTRY_ENV"),
		},
	}
}

// NewReporter returns the error reporter and a function flushing it
func (c *Sentry) NewReporter() (interfaces.ErrorReporter, func(), error) {
	if c.DSN == "" {
		return sentryinfra.NewNopReporter(), func() {}, nil
	}

	reporter, err := sentryinfra.NewReporter(c.DSN, c.Environment, types.Version)
	if err != nil {
		return nil, nil, err
	}

	return reporter, func() { reporter.Flush(5 * time.Second) }, nil
}
