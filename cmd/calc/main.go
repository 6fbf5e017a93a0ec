package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/calc"
)

type cli struct {
	In     string   `short:"i" placeholder:"FILE" help:"Input file with one expression per line, or - for stdin (default stdin if no expressions are given)."`
	Fmt    string   `default:"%g" help:"Result formatting verb."`
	Echo   bool     `xor:"view" help:"Print parse trees."`
	Dump   bool     `xor:"view" help:"Print parse trees as Go values."`
	Strict bool     `help:"Stop at the first expression that cannot be evaluated."`
	Expr   []string `arg:"" optional:"" help:"Expressions to evaluate, e.g. 2+3x4."`
}

var options = []kong.Option{
	kong.Name("calc"),
	kong.Description("Evaluate keypad calculator expressions. Operators are - + / x, from loosest to tightest."),
}

func main() {
	var c cli
	ctx := kong.Parse(&c, options...)
	ctx.FatalIfErrorf(run(&c, os.Stdin, os.Stdout))
}

func run(c *cli, stdin io.Reader, stdout io.Writer) error {
	var srcs []string
	in, err := infile(c.In, len(c.Expr) == 0, stdin)
	if err != nil {
		return err
	}
	if cl, ok := in.(io.Closer); ok && in != stdin {
		defer cl.Close()
	}
	if in != nil {
		srcs, err = lines(in)
		if err != nil {
			return err
		}
	}
	srcs = append(srcs, c.Expr...)

	verb := c.Fmt + "\n"
	for _, s := range srcs {
		a, err := calc.Build(s)
		if err != nil {
			if c.Strict {
				return errors.Wrapf(err, "evaluating %q", s)
			}
			// Report and move on, like a calculator display that shows an
			// error until the next entry.
			fmt.Fprintf(stdout, "error: %v\n", err)
			continue
		}
		switch {
		case c.Echo:
			fmt.Fprintf(stdout, "%v : ", a)
		case c.Dump:
			fmt.Fprintln(stdout, repr.String(a.Operand(), repr.Indent("  "), repr.OmitEmpty(true)))
		}
		fmt.Fprintf(stdout, verb, a.Eval())
	}
	return nil
}

// infile opens the input named by inname. "-" names stdin, as does the empty
// name if std is true. Otherwise, with an empty name, the result is nil.
func infile(inname string, std bool, stdin io.Reader) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return f, nil
	case inname == "-", std:
		return stdin, nil
	}
	return nil, nil
}

// lines reads the non-blank lines of in with surrounding space removed.
func lines(in io.Reader) ([]string, error) {
	var r []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		r = append(r, l)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading expressions")
	}
	return r, nil
}
