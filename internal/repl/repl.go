// Package repl implements the line-oriented shell: every line read is fed to
// a fresh lexer and either its tokens or its parsed program are printed.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/HicaroD/Tern/internal/config"
	"github.com/HicaroD/Tern/internal/lexer"
	"github.com/HicaroD/Tern/internal/lexer/token"
	"github.com/HicaroD/Tern/internal/parser"
)

const FAREWELL = "Have a nice day!"

var HELP_MESSAGE string = `Commands:
  :mode tokens   print the tokens of every line
  :mode ast      parse every line and print the program
  :help          show this message
  :quit          leave the shell
`

type Repl struct {
	mode   config.Mode
	prompt string
	color  bool
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Repl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repl{
		mode:   cfg.Mode,
		prompt: cfg.Prompt,
		color:  cfg.Color,
		logger: logger,
	}
}

func (r *Repl) Mode() config.Mode { return r.mode }

// Start reads lines from in until it is exhausted or :quit is entered.
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	s := newStyles(out, r.color)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, s.Prompt(r.prompt)+" ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if cmd, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
			if quit := r.command(cmd, out, s); quit {
				break
			}
			continue
		}

		switch r.mode {
		case config.MODE_TOKENS:
			r.printTokens(line, out, s)
		case config.MODE_AST:
			r.printProgram(line, out, s)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, FAREWELL)

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return nil
}

func (r *Repl) command(cmd string, out io.Writer, s styles) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		fmt.Fprint(out, HELP_MESSAGE)
		return false
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return true
	case "help", "h":
		fmt.Fprint(out, HELP_MESSAGE)
	case "mode":
		if len(fields) < 2 {
			fmt.Fprintf(out, "mode: %s\n", r.mode)
			return false
		}
		mode, err := config.ParseMode(fields[1])
		if err != nil {
			fmt.Fprintln(out, s.Error(err.Error()))
			return false
		}
		r.logger.Debug("mode changed", zap.Stringer("from", r.mode), zap.Stringer("to", mode))
		r.mode = mode
		fmt.Fprintf(out, "mode: %s\n", r.mode)
	default:
		fmt.Fprintln(out, s.Error(fmt.Sprintf("unknown command :%s", fields[0])))
	}
	return false
}

func (r *Repl) printTokens(line string, out io.Writer, s styles) {
	lex := lexer.New(line)
	count := 0
	for {
		tok := lex.Next()
		count++
		fmt.Fprintf(out, "{kind: %s, literal: %s}\n", s.Kind(tok.Kind.String()), s.Literal(fmt.Sprintf("%q", tok.Literal)))
		if tok.Kind == token.EOF {
			break
		}
	}
	r.logger.Debug("line lexed", zap.Int("tokens", count))
}

func (r *Repl) printProgram(line string, out io.Writer, s styles) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	for _, diag := range p.Diagnostics() {
		fmt.Fprintln(out, s.Error(diag.String()))
	}
	if rendered := program.String(); rendered != "" {
		fmt.Fprintln(out, rendered)
	}
	fmt.Fprintln(out, s.Muted(fmt.Sprintf("%d statement(s), %d error(s)", len(program.Statements), len(p.Diagnostics()))))

	r.logger.Debug("line parsed",
		zap.Int("statements", len(program.Statements)),
		zap.Int("diagnostics", len(p.Diagnostics())),
	)
}
