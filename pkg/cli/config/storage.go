package config

import (
	"context"

	"github.com/m-mizutani/cihooks/pkg/infra/storage"
	"github.com/m-mizutani/cihooks/pkg/settings"
	"github.com/urfave/cli/v3"
)

// Storage holds object storage configuration
type Storage struct {
	Endpoint        string
	CredentialsFile string
	NoAuth          bool
}

// Flags returns CLI flags for object storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-endpoint",
			Usage:       "Object storage API endpoint",
			Destination: &c.Endpoint,
			Sources:     cli.EnvVars("CIHOOKS_STORAGE_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "storage-credentials",
			Usage:       "Service account key file for object storage",
			Destination: &c.CredentialsFile,
			Sources:     cli.EnvVars("CIHOOKS_STORAGE_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS"),
		},
		&cli.BoolFlag{
			Name:        "storage-no-auth",
			Usage:       "Access object storage without authentication (emulator)",
			Destination: &c.NoAuth,
			Sources:     cli.EnvVars("CIHOOKS_STORAGE_NO_AUTH"),
		},
	}
}

// NewClient creates the object storage client
func (c *Storage) NewClient(ctx context.Context, s3 settings.S3) (*storage.Client, error) {
	var opts []storage.Option
	if c.Endpoint != "" {
		opts = append(opts, storage.WithEndpoint(c.Endpoint))
	}
	if c.CredentialsFile != "" {
		opts = append(opts, storage.WithCredentialsFile(c.CredentialsFile))
	}
	if c.NoAuth {
		opts = append(opts, storage.WithoutAuthentication())
	}

	return storage.New(ctx, s3, opts...)
}
