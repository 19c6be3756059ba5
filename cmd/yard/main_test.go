package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zephyrtronium/yard"
)

func TestRunner(t *testing.T) {
	var b strings.Builder
	r := runner{
		out:  &b,
		ctx:  yard.DefaultCtxWithMacros(),
		vars: make(yard.Vars),
		verb: "%g\n",
		log:  zap.NewNop(),
	}
	assert.True(t, r.run("a = 2"))
	assert.True(t, r.run("a ^ 10"))
	assert.False(t, r.run("a +"))
	assert.False(t, r.run("b"))
	assert.False(t, r.run("ü"))
	want := "2\n" +
		"1024\n" +
		"a +\n  ^\n1: expression ends with operator\n" +
		"undefined variable: \"b\"\n" +
		"0: non-ASCII byte 0xc3 in input\n"
	assert.Equal(t, want, b.String())
}

func TestRunnerEcho(t *testing.T) {
	var b strings.Builder
	r := runner{
		out:  &b,
		ctx:  yard.DefaultCtx(),
		vars: yard.Vars{"x": 3},
		verb: "%.2f\n",
		echo: true,
		log:  zap.NewNop(),
	}
	assert.True(t, r.run("-x * 2"))
	assert.Equal(t, "x -u 2 * : -6.00\n", b.String())
}

func TestReadExprs(t *testing.T) {
	in := "1 + 2\n\n  \nmax(3,\n 4)\n"
	got, err := readExprs(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 + 2", "max(3,", " 4)"}, got)

	got, err = readExprs(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, []string{in}, got)

	got, err = readExprs(strings.NewReader(" \n"), false)
	require.NoError(t, err)
	assert.Empty(t, got)
}
