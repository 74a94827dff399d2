package main

import (
	"github.com/spf13/cobra"

	"github.com/HicaroD/Tern/internal/config"
	"github.com/HicaroD/Tern/internal/repl"
)

type replEnv struct {
	*rootEnv
	flagMode string
}

func (env *rootEnv) getReplCmd() *cobra.Command {
	r := &replEnv{rootEnv: env}

	ret := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell",
		Long: `
Read lines from stdin and print either their tokens or their parsed program.
Type :help inside the shell for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: r.runReplCmd,
	}
	ret.Flags().StringVar(&r.flagMode, "mode", "", "Shell mode: tokens or ast (default from config)")
	return ret
}

func (r *replEnv) runReplCmd(cmd *cobra.Command, args []string) error {
	cfg := *r.cfg
	if r.flagMode != "" {
		mode, err := config.ParseMode(r.flagMode)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	return repl.New(&cfg, r.logger).Start(cmd.InOrStdin(), cmd.OutOrStdout())
}
