package reports

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	table := &Table{
		Name:   "unpaid_receivables",
		Header: []string{"거래처", "합계"},
		Rows: [][]string{
			{"한진물류", "330000"},
			{"동방, 상사", "110000"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "missing excel BOM")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(out, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "거래처,합계", lines[0])
	assert.Equal(t, "한진물류,330000", lines[1])
	// embedded comma gets quoted
	assert.Equal(t, `"동방, 상사",110000`, lines[2])
}
