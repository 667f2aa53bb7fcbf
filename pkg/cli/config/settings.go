package config

import (
	"github.com/m-mizutani/cihooks/pkg/settings"
	"github.com/urfave/cli/v3"
)

// Settings holds the path of an optional settings overlay
type Settings struct {
	Path string
}

// Flags returns CLI flags for settings configuration
func (c *Settings) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "settings",
			Usage:       "TOML file overriding the built-in CI settings",
			Destination: &c.Path,
			Sources:     cli.EnvVars("CIHOOKS_SETTINGS"),
		},
	}
}

// Load returns the effective settings
func (c *Settings) Load() (*settings.Settings, error) {
	return settings.Load(c.Path)
}
