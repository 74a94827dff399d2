package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/HicaroD/Tern/internal/config"
	"github.com/HicaroD/Tern/internal/lexer"
)

// rootEnv holds the state shared by every subcommand: persistent flags and
// what PersistentPreRunE builds from them.
type rootEnv struct {
	flagConfig  string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	env := &rootEnv{}

	root := &cobra.Command{
		Use:   "tern",
		Short: "Tern - lexer and Pratt parser for the Tern language",
		Long: `
Tern turns source text into tokens and tokens into an abstract syntax tree.

Examples:
  tern repl                      Start the interactive shell
  tern repl --mode ast           Start the shell printing parsed programs
  tern lex -e 'let x = 5;'       Print the tokens of an expression
  tern parse main.tn --dump      Parse a file and dump its syntax tree
  tern env                       Show configuration details`,
		SilenceUsage:      true,
		PersistentPreRunE: env.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.logger != nil {
				_ = env.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&env.flagConfig, "config", "", "Config file (default: $XDG_CONFIG_HOME/tern/config.toml)")
	root.PersistentFlags().BoolVarP(&env.flagVerbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		env.getReplCmd(),
		env.getLexCmd(),
		env.getParseCmd(),
		env.getEnvCmd(),
	)
	return root
}

func (env *rootEnv) setup(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(env.flagVerbose)
	if err != nil {
		return err
	}
	env.logger = logger

	if env.flagConfig != "" {
		env.cfg, err = config.Load(env.flagConfig)
	} else {
		env.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		env.cfg.Color = false
	}

	env.logger.Debug("configuration loaded",
		zap.String("path", env.cfg.Path),
		zap.Stringer("mode", env.cfg.Mode),
		zap.Bool("color", env.cfg.Color),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// sourceEnv is embedded by the commands that read a program: the -e flag
// wins, then a file argument, then stdin.
type sourceEnv struct {
	flagExpr string
}

func (s *sourceEnv) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.flagExpr, "expr", "e", "", "Source text to use instead of a file or stdin")
	cmd.Args = cobra.MaximumNArgs(1)
}

func (s *sourceEnv) lexer(cmd *cobra.Command, args []string) (*lexer.Lexer, error) {
	if s.flagExpr != "" {
		return lexer.New(s.flagExpr), nil
	}
	if len(args) == 1 {
		return lexer.NewFromFilePath(args[0])
	}
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	return lexer.New(string(src)), nil
}
