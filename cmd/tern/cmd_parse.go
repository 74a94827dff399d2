package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HicaroD/Tern/internal/ast"
	"github.com/HicaroD/Tern/internal/parser"
)

// dumpConfig bypasses the String methods of the tree so --dump shows every
// node instead of the canonical source.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

type parseEnv struct {
	*rootEnv
	sourceEnv
	flagDump bool
}

func (env *rootEnv) getParseCmd() *cobra.Command {
	p := &parseEnv{rootEnv: env}

	ret := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a program and print it back",
		Long: `
Parse a program and print its canonical form. Diagnostics are printed to
stderr and make the command exit with a non-zero status; the tree is still
printed.`,
		RunE: p.runParseCmd,
	}
	p.addFlags(ret)
	ret.Flags().BoolVar(&p.flagDump, "dump", false, "Dump the syntax tree")
	return ret
}

func (p *parseEnv) runParseCmd(cmd *cobra.Command, args []string) error {
	lex, err := p.lexer(cmd, args)
	if err != nil {
		return err
	}

	prs := parser.New(lex)
	program := prs.ParseProgram()

	nodes := 0
	ast.Inspect(program, func(ast.Node) bool {
		nodes++
		return true
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, program.String())
	fmt.Fprintf(out, "statements: %d, nodes: %d\n", len(program.Statements), nodes)
	if p.flagDump {
		fmt.Fprint(out, dumpConfig.Sdump(program))
	}

	for _, diag := range prs.Diagnostics() {
		fmt.Fprintln(cmd.ErrOrStderr(), diag.String())
	}

	p.logger.Debug("source parsed",
		zap.Int("statements", len(program.Statements)),
		zap.Int("nodes", nodes),
		zap.Int("diagnostics", len(prs.Diagnostics())),
	)
	return prs.Err()
}
