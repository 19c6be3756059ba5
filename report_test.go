package yard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "operator-at-end",
			src:  "1 +",
			want: "1 +\n  ^\n1: expression ends with operator\n",
		},
		{
			name: "arity",
			src:  "max(1, 2, 3)",
			want: "max ( 1 , 2 , 3 )\n^^^\n0: cannot call max with 3 arguments (want 2)\n",
		},
		{
			name: "bad",
			src:  "2 *   $  # + 1",
			want: "2 * $# + 1\n    ^^\n2: bad token \"$#\"\n",
		},
		{
			name: "mismatched-left",
			src:  "(1+2",
			want: "( 1 + 2\n^\n0: open paren with no close paren\n",
		},
	}
	ctx := DefaultCtx()
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src, ctx)
			require.NoError(t, err)
			_, err = Parse(toks, ctx)
			require.Error(t, err)
			var b strings.Builder
			require.NoError(t, Report(&b, toks, err, false))
			assert.Equal(t, c.want, b.String())
		})
	}
}

func TestReportPastEnd(t *testing.T) {
	toks, err := Tokenize("1 +", DefaultCtx())
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, Report(&b, toks, &ParseError{Pos: 2, Kind: ErrOperatorAtEnd}, false))
	assert.Equal(t, "1 +\n    ^\n2: expression ends with operator\n", b.String())

	b.Reset()
	require.NoError(t, Report(&b, nil, &ParseError{Pos: 0, Kind: ErrOperatorAtEnd}, false))
	assert.Equal(t, "\n^\n0: expression ends with operator\n", b.String())
}

func TestReportOther(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Report(&b, nil, &NameError{Name: "x"}, false))
	assert.Equal(t, "undefined variable: \"x\"\n", b.String())
}

func TestReportColor(t *testing.T) {
	toks, err := Tokenize("1 +", DefaultCtx())
	require.NoError(t, err)
	_, err = Parse(toks, DefaultCtx())
	var b strings.Builder
	require.NoError(t, Report(&b, toks, err, true))
	assert.Contains(t, b.String(), "\x1b[31m")
	assert.True(t, strings.HasPrefix(b.String(), "1 +\n"))
}
