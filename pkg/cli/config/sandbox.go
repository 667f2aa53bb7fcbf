package config

import (
	"github.com/m-mizutani/cihooks/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Sandbox tells whether the process runs on a restricted runner without
// cloud metadata or secret access
type Sandbox struct {
	Value string
}

// Flags returns CLI flags for sandbox detection
func (c *Sandbox) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sandbox",
			Usage:       `Set to "true" to skip every network call (restricted runner)`,
			Destination: &c.Value,
			Sources:     cli.EnvVars(types.SandboxEnv),
		},
	}
}

// Enabled reports whether the sandbox gate is set. Only the literal "true"
// enables it.
func (c *Sandbox) Enabled() bool {
	return c.Value == "true"
}
