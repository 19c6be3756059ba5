// Package config loads the configuration of the yard command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zephyrtronium/yard"
	"github.com/zephyrtronium/yard/internal/logger"
)

// Config is the yard command's configuration.
type Config struct {
	// Format is the printf verb for results.
	Format string `mapstructure:"format"`
	// Macros enables the assignment macro.
	Macros bool `mapstructure:"macros"`
	// Math enables the arbitrary-precision math functions, computed with
	// Prec bits.
	Math bool `mapstructure:"math"`
	Prec uint `mapstructure:"prec"`
	// Color enables colored diagnostics.
	Color bool `mapstructure:"color"`
	// Given lists predefined variables as "name=expr".
	Given []string `mapstructure:"given"`
	// Aliases adds alternate spellings of operators and functions.
	Aliases []Alias       `mapstructure:"aliases"`
	Log     logger.Config `mapstructure:"log"`
}

// Alias is an alternate spelling Token of the operator or function Of.
type Alias struct {
	Token string `mapstructure:"token"`
	Of    string `mapstructure:"of"`
}

// Load reads the configuration. If path is empty, Load looks for yard.yaml
// in the working directory and in $HOME/.config/yard, and it is not an error
// for there to be none. Environment variables prefixed with YARD_ override
// the file, e.g. YARD_LOG_LEVEL for log.level.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("yard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("yard")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/yard")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, err
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	lc := logger.DefaultConfig()
	v.SetDefault("format", "%g")
	v.SetDefault("macros", false)
	v.SetDefault("math", false)
	v.SetDefault("prec", 64)
	v.SetDefault("color", false)
	v.SetDefault("log.level", lc.Level)
	v.SetDefault("log.file", lc.File)
	v.SetDefault("log.maxsize", lc.MaxSize)
	v.SetDefault("log.maxage", lc.MaxAge)
	v.SetDefault("log.maxbackups", lc.MaxBackups)
	v.SetDefault("log.compress", lc.Compress)
}

// Ctx builds the registry the configuration describes.
func (c *Config) Ctx() (*yard.Ctx, error) {
	opts := []yard.CtxOption{yard.WithDefaults()}
	if c.Math {
		opts = append(opts, yard.WithMathFuncs(c.Prec))
	}
	if c.Macros {
		opts = append(opts, yard.WithMacros(yard.Assign{}))
	}
	ctx := yard.NewCtx(opts...)
	for _, a := range c.Aliases {
		if err := ctx.Alias(a.Token, a.Of); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return ctx, nil
}

// Vars evaluates the predefined variables in order, so each may use the ones
// before it.
func (c *Config) Vars(ctx *yard.Ctx) (yard.Vars, error) {
	vars := make(yard.Vars, len(c.Given))
	for _, g := range c.Given {
		name, expr, err := SplitGiven(g)
		if err != nil {
			return nil, err
		}
		r, err := yard.EvalWithCtx(expr, vars, ctx)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		vars[name] = r
	}
	return vars, nil
}

// SplitGiven splits a variable definition "name=expr".
func SplitGiven(s string) (name, expr string, err error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", "", fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name = strings.TrimSpace(d[0])
	if n := yard.MatchIdent(name); n == 0 || n != len(name) {
		return "", "", fmt.Errorf("invalid variable name %q", name)
	}
	return name, strings.TrimSpace(d[1]), nil
}
