// Package diagnostics accumulates the non-fatal problems found while lexing
// and parsing. Nothing in the front end aborts: diagnostics are collected and
// handed back next to whatever tree could be built.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/HicaroD/Tern/internal/lexer/token"
)

var (
	ErrDiagnosticsFound = errors.New("diagnostics found")
)

type Severity int

const (
	// The enclosing statement or expression was abandoned.
	SEVERITY_STRUCTURAL Severity = iota
	// A best-effort node was still produced.
	SEVERITY_LITERAL
)

func (s Severity) String() string {
	switch s {
	case SEVERITY_STRUCTURAL:
		return "structural"
	case SEVERITY_LITERAL:
		return "literal"
	}
	return "unknown"
}

type Diag struct {
	Message  string
	Pos      token.Pos
	Severity Severity
}

func (diag Diag) Error() string { return diag.String() }

// String renders the diagnostic the way a compiler prints it:
// "file:line:col: message". Positions without a filename omit it.
func (diag Diag) String() string {
	pos := diag.Pos
	if pos.Line == 0 {
		return diag.Message
	}
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, diag.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", pos.Filename, pos.Line, pos.Column, diag.Message)
}

type Collector struct {
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func (collector *Collector) Report(diag Diag) {
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

// Messages returns the bare messages in the order they were reported.
func (collector *Collector) Messages() []string {
	messages := make([]string, 0, len(collector.Diags))
	for _, diag := range collector.Diags {
		messages = append(messages, diag.Message)
	}
	return messages
}

// Err folds every diagnostic into a single error, or returns nil when
// nothing was reported. The result matches ErrDiagnosticsFound with
// errors.Is.
func (collector *Collector) Err() error {
	if !collector.HasErrors() {
		return nil
	}
	var result *multierror.Error
	for _, diag := range collector.Diags {
		result = multierror.Append(result, diag)
	}
	result = multierror.Append(result, ErrDiagnosticsFound)
	result.ErrorFormat = formatDiags
	return result.ErrorOrNil()
}

func formatDiags(errs []error) string {
	out := fmt.Sprintf("%d diagnostic(s) found:", len(errs)-1)
	for _, err := range errs {
		if errors.Is(err, ErrDiagnosticsFound) {
			continue
		}
		out += "\n\t" + err.Error()
	}
	return out
}
