package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HicaroD/Tern/internal/config"
)

func (env *rootEnv) getEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir(config.APP_NAME)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TERN_CONFIG_DIR='%s'\n", dir)
			fmt.Fprintf(out, "TERN_CONFIG='%s'\n", env.cfg.Path)
			fmt.Fprintf(out, "TERN_PROMPT='%s'\n", env.cfg.Prompt)
			fmt.Fprintf(out, "TERN_MODE='%s'\n", env.cfg.Mode)
			fmt.Fprintf(out, "TERN_COLOR='%v'\n", env.cfg.Color)
			return nil
		},
	}
}
