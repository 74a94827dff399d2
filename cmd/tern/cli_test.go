package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/Tern/internal/diagnostics"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLexCommand(t *testing.T) {
	out, _, err := execute(t, "", "lex", "-e", "let x = 10;")
	require.NoError(t, err)

	for _, want := range []string{"Kind", "Literal", "IDENTIFIER", `"x"`, "INTEGER", `"10"`, "EOF"} {
		assert.Contains(t, out, want)
	}
}

func TestLexReadsStdin(t *testing.T) {
	out, _, err := execute(t, "return y", "lex")
	require.NoError(t, err)
	assert.Contains(t, out, `"return"`)
	assert.Contains(t, out, `"y"`)
}

func TestParseCommand(t *testing.T) {
	out, stderr, err := execute(t, "", "parse", "-e", "let x = -5; return !y;")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "let x = (-5);return (!y);", lines[0])
	assert.Equal(t, "statements: 2, nodes: 8", lines[1])
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tn")
	require.NoError(t, os.WriteFile(path, []byte("let x 5;"), 0644))

	out, stderr, err := execute(t, "", "parse", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostics.ErrDiagnosticsFound)
	assert.Contains(t, stderr, "bad.tn:1:7: expected next token type to be =, got INTEGER instead")
	assert.Contains(t, out, "statements: 1")
}

func TestParseDump(t *testing.T) {
	out, _, err := execute(t, "", "parse", "--dump", "-e", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "ast.Program")
	assert.Contains(t, out, "ast.IdExpr")
	assert.Contains(t, out, `Name: (string) (len=1) "a"`)
}

func TestParseDumpShowsNestedNodes(t *testing.T) {
	out, _, err := execute(t, "", "parse", "--dump", "-e", "let x = -5;")
	require.NoError(t, err)
	assert.Contains(t, out, "(*ast.LetStmt)")
	assert.Contains(t, out, "(*ast.PrefixExpr)")
	assert.Contains(t, out, `Operator: (string) (len=1) "-"`)
	assert.Contains(t, out, "Value: (int64) 5")
	assert.NotContains(t, out, "0xc")
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.tn"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, diagnostics.ErrDiagnosticsFound)
}

func TestReplCommand(t *testing.T) {
	out, _, err := execute(t, "let a = 1;\n", "repl", "--mode", "ast")
	require.NoError(t, err)
	assert.Contains(t, out, "let a = 1;")
	assert.Contains(t, out, "1 statement(s), 0 error(s)")
	assert.True(t, strings.HasSuffix(out, "Have a nice day!\n"))
}

func TestReplRejectsUnknownMode(t *testing.T) {
	_, _, err := execute(t, "", "repl", "--mode", "bytecode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "bytecode"`)
}

func TestEnvCommand(t *testing.T) {
	out, _, err := execute(t, "", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "TERN_CONFIG_DIR=")
	assert.Contains(t, out, "TERN_PROMPT='->'")
	assert.Contains(t, out, "TERN_MODE='tokens'")
	assert.Contains(t, out, "TERN_COLOR='false'")
}

func TestExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tern.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \">>\"\nmode: ast\n"), 0644))

	out, _, err := execute(t, "", "--config", path, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "TERN_PROMPT='>>'")
	assert.Contains(t, out, "TERN_MODE='ast'")
}
