package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/cihooks/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdSettings(settingsCfg *config.Settings) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Print the effective CI settings as TOML",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := settingsCfg.Load()
			if err != nil {
				return err
			}

			data, err := cfg.Encode()
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(data)
			return err
		},
	}
}
