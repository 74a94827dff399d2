package diagnostics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/Tern/internal/lexer/token"
)

func TestCollectorKeepsReportOrder(t *testing.T) {
	collector := New()
	require.False(t, collector.HasErrors())
	require.NoError(t, collector.Err())

	collector.Report(Diag{Message: "first"})
	collector.Report(Diag{Message: "second", Severity: SEVERITY_LITERAL})

	assert.True(t, collector.HasErrors())
	assert.Equal(t, []string{"first", "second"}, collector.Messages())
}

func TestCollectorErr(t *testing.T) {
	collector := New()
	collector.Report(Diag{Message: "no prefix parse function for ; found", Pos: token.NewPosition("main.tn", 2, 5)})
	collector.Report(Diag{Message: "could not parse 9x as an integer", Pos: token.NewPosition("", 3, 1)})

	err := collector.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDiagnosticsFound))
	assert.Equal(t,
		"2 diagnostic(s) found:\n\tmain.tn:2:5: no prefix parse function for ; found\n\t3:1: could not parse 9x as an integer",
		err.Error(),
	)
}

func TestDiagStringWithoutPosition(t *testing.T) {
	diag := Diag{Message: "expected next token type to be =, got INTEGER instead"}
	assert.Equal(t, diag.Message, diag.String())
	assert.Equal(t, "structural", diag.Severity.String())
}
