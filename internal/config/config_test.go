package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/yard"
)

const testConfig = `
format: "%.3f"
macros: true
math: true
prec: 128
given:
  - "r = 2"
  - "area = pi() * r ^ 2"
aliases:
  - token: pow
    of: "^"
  - token: add
    of: sum
log:
  level: debug
  file: /tmp/yard.log
`

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(s), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "%.3f", cfg.Format)
	assert.True(t, cfg.Macros)
	assert.True(t, cfg.Math)
	assert.Equal(t, uint(128), cfg.Prec)
	assert.False(t, cfg.Color)
	assert.Equal(t, []string{"r = 2", "area = pi() * r ^ 2"}, cfg.Given)
	assert.Equal(t, []Alias{{Token: "pow", Of: "^"}, {Token: "add", Of: "sum"}}, cfg.Aliases)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/yard.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSize)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, "%g", cfg.Format)
	assert.False(t, cfg.Macros)
	assert.Equal(t, uint(64), cfg.Prec)
	assert.Equal(t, "WARN", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("YARD_FORMAT", "%v")
	t.Setenv("YARD_LOG_LEVEL", "error")
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "%v", cfg.Format)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCtxVars(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	ctx, err := cfg.Ctx()
	require.NoError(t, err)
	vars, err := cfg.Vars(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, vars["r"])
	assert.InDelta(t, 12.566370614359172, vars["area"], 1e-12)

	r, err := yard.EvalWithCtx("x = add(r, 1) pow 2", vars, ctx)
	require.NoError(t, err)
	assert.Equal(t, 9.0, r)
	assert.Equal(t, 9.0, vars["x"])

	cfg.Aliases = append(cfg.Aliases, Alias{Token: "q", Of: "nothing"})
	_, err = cfg.Ctx()
	assert.Error(t, err)

	cfg.Given = []string{"y = z"}
	_, err = cfg.Vars(ctx)
	var ne *yard.NameError
	assert.ErrorAs(t, err, &ne)
}

func TestSplitGiven(t *testing.T) {
	cases := []struct {
		in         string
		name, expr string
		ok         bool
	}{
		{"x=1", "x", "1", true},
		{" x = 1 + 2 ", "x", "1 + 2", true},
		{"x==1", "x", "=1", true},
		{"x", "", "", false},
		{"1x=2", "", "", false},
		{"x y=2", "", "", false},
		{"=2", "", "", false},
	}
	for _, c := range cases {
		name, expr, err := SplitGiven(c.in)
		if !c.ok {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.name, name)
		assert.Equal(t, c.expr, expr)
	}
}
