package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDimacsBasic(t *testing.T) {
	in := strings.NewReader("c a comment\np cnf 3 2\n1 -2 0\n-1 3 0\n")

	clauses, header, err := ParseDimacs(in)
	require.NoError(t, err)
	require.Equal(t, Header{NVars: 3, NClauses: 2}, header)
	require.Equal(t, [][]int{{1, -2}, {-1, 3}}, clauses)
}

func TestParseDimacsIgnoresBlankLines(t *testing.T) {
	in := strings.NewReader("p cnf 1 1\n\n1 0\n")

	clauses, _, err := ParseDimacs(in)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}}, clauses)
}

func TestParseDimacsRejectsGarbage(t *testing.T) {
	in := strings.NewReader("p cnf 1 1\nnot-a-number 0\n")

	_, _, err := ParseDimacs(in)
	require.Error(t, err)
}
