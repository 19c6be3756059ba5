package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/zephyrtronium/yard"
	"github.com/zephyrtronium/yard/internal/config"
	"github.com/zephyrtronium/yard/internal/logger"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, cfgname string
		with                  []string
		nl, echo              bool
		macros, math, colors  bool
		prec                  uint
	)
	addwith := func(s string) error {
		if _, _, err := config.SplitGiven(s); err != nil {
			return err
		}
		with = append(with, s)
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print compiled programs")
	flag.BoolVar(&macros, "macros", false, "enable assignment with name = expr")
	flag.BoolVar(&math, "math", false, "enable exp, ln, log, sqrt, pow, pi and e")
	flag.UintVar(&prec, "p", 64, "precision of math functions in bits")
	flag.BoolVar(&colors, "color", false, "color diagnostics")
	flag.StringVar(&cfgname, "config", "", "configuration file (default yard.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	// Flags given explicitly override the configuration.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "macros":
			cfg.Macros = macros
		case "math":
			cfg.Math = math
		case "p":
			cfg.Prec = prec
		case "color":
			cfg.Color = colors
		}
	})
	cfg.Given = append(cfg.Given, with...)

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	ctx, err := cfg.Ctx()
	if err != nil {
		log.Fatal(err)
	}
	vars, err := cfg.Vars(ctx)
	if err != nil {
		log.Fatal(err)
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readExprs(f, nl)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	r := runner{
		out:    os.Stdout,
		ctx:    ctx,
		vars:   vars,
		verb:   cfg.Format + "\n",
		echo:   echo,
		colors: cfg.Color,
		log:    lg,
	}
	ok := true
	for _, src := range srcs {
		ok = r.run(src) && ok
	}
	if !ok {
		lg.Sync()
		os.Exit(1)
	}
}

// runner evaluates expressions in a shared variable environment.
type runner struct {
	out    io.Writer
	ctx    *yard.Ctx
	vars   yard.Vars
	verb   string
	echo   bool
	colors bool
	log    *zap.Logger
}

// run evaluates one expression and prints its result or diagnostic. It
// reports whether evaluation succeeded.
func (r *runner) run(src string) bool {
	toks, err := yard.Tokenize(src, r.ctx)
	if err != nil {
		r.log.Warn("tokenize failed", zap.String("src", src), zap.Error(err))
		fmt.Fprintln(r.out, err)
		return false
	}
	r.log.Debug("tokenized", zap.String("src", src), zap.String("tokens", fmt.Sprint(toks)))
	prog, err := yard.Parse(toks, r.ctx)
	if err != nil {
		r.log.Warn("parse failed", zap.String("src", src), zap.Error(err))
		yard.Report(r.out, toks, err, r.colors)
		return false
	}
	r.log.Debug("parsed", zap.String("src", src), zap.Stringer("program", prog))
	if r.echo {
		fmt.Fprintf(r.out, "%v : ", prog)
	}
	v, err := yard.Eval(prog, r.vars, r.ctx)
	if err != nil {
		r.log.Warn("evaluation failed", zap.String("src", src), zap.Error(err))
		fmt.Fprintln(r.out, err)
		return false
	}
	r.log.Debug("evaluated", zap.String("src", src), zap.Float64("result", v))
	fmt.Fprintf(r.out, r.verb, v)
	return true
}

// readExprs reads expressions from in, either one per non-blank line or the
// entire input as one.
func readExprs(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			r = append(r, sc.Text())
		}
	}
	return r, sc.Err()
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
