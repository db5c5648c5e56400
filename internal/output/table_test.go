package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAlignsColumns(t *testing.T) {
	var sb strings.Builder
	tab := NewTable(&sb, "Solver", "Solved")
	tab.Row("rIC3-Standard", "318")
	tab.Row("rIC3-MAB", "342")
	require.NoError(t, tab.Flush())

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Solver"))
	// Every "Solved" cell starts at the same column.
	col := strings.Index(lines[0], "Solved")
	assert.Equal(t, "318", strings.TrimSpace(lines[1][col:]))
	assert.Equal(t, "342", strings.TrimSpace(lines[2][col:]))
}
