// Decparse validates decimal literals and prints their canonical form.
//
// Usage:
//
//	decparse [-json] [-q] [-v] [literal ...]
//
// With no arguments decparse reads one literal per line from standard input.
// Rejected literals are logged to standard error, and the exit status is 1
// if any literal was rejected.
//
//	$ echo '000123.4500e1' | decparse
//	1234.5
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qintian968/decimal-rs"
)

type config struct {
	json     bool
	quiet    bool
	verbose  bool
	literals []string
}

// result is a line of -json output.
type result struct {
	Input string `json:"input"`
	Value string `json:"value,omitempty"`
	Coef  string `json:"coef,omitempty"`
	Scale int    `json:"scale"`
	Error string `json:"error,omitempty"`
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	log := newLogger(cfg.verbose, os.Stderr)
	code := run(cfg, os.Stdin, os.Stdout, log)
	_ = log.Sync()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("decparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: decparse [-json] [-q] [-v] [literal ...]\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.json, "json", false, "print one JSON object per literal")
	fs.BoolVar(&cfg.quiet, "q", false, "do not print valid literals")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.literals = fs.Args()
	return cfg, nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Named("decparse")
}

// run parses every literal of cfg, or every line of stdin if cfg has none,
// and returns the exit status.
func run(cfg config, stdin io.Reader, stdout io.Writer, log *zap.Logger) int {
	var (
		enc    = json.NewEncoder(stdout)
		failed int
		total  int
	)

	check := func(lit string) error {
		total++
		d, err := decimal.Parse(lit)
		if err != nil {
			failed++
			log.Warn("rejected literal", zap.String("input", lit), zap.Error(err))
		} else {
			log.Debug("parsed literal",
				zap.String("input", lit),
				zap.Stringer("value", d),
				zap.Int("scale", d.Scale()),
			)
		}
		switch {
		case cfg.json:
			r := result{Input: lit}
			if err != nil {
				r.Error = err.Error()
			} else {
				r.Value = d.String()
				r.Coef = d.Coef().String()
				r.Scale = d.Scale()
			}
			return enc.Encode(r)
		case err == nil && !cfg.quiet:
			_, werr := fmt.Fprintln(stdout, d)
			return werr
		}
		return nil
	}

	if len(cfg.literals) > 0 {
		for _, lit := range cfg.literals {
			if err := check(lit); err != nil {
				log.Error("writing output", zap.Error(err))
				return 1
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if err := check(line); err != nil {
				log.Error("writing output", zap.Error(err))
				return 1
			}
		}
		if err := scanner.Err(); err != nil {
			log.Error("reading input", zap.Error(err))
			return 1
		}
	}

	log.Debug("done", zap.Int("total", total), zap.Int("failed", failed))
	if failed > 0 {
		return 1
	}
	return 0
}
