package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type lexEnv struct {
	*rootEnv
	sourceEnv
}

func (env *rootEnv) getLexCmd() *cobra.Command {
	l := &lexEnv{rootEnv: env}

	ret := &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the tokens of a program",
		RunE:  l.runLexCmd,
	}
	l.addFlags(ret)
	return ret
}

func (l *lexEnv) runLexCmd(cmd *cobra.Command, args []string) error {
	lex, err := l.lexer(cmd, args)
	if err != nil {
		return err
	}

	tokens := lex.Tokenize()

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"#", "Kind", "Literal", "Position"})
	table.SetAutoFormatHeaders(false)
	for i, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Kind.String(),
			strconv.Quote(tok.Literal),
			tok.Pos.String(),
		})
	}
	table.Render()

	l.logger.Debug("source lexed", zap.Int("tokens", len(tokens)))
	return nil
}
