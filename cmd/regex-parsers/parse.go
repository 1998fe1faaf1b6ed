package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/AnickaBurova/regex-parsers/rgx"
	"github.com/AnickaBurova/regex-parsers/schema"
)

var errFailedLines = errors.New("some lines failed to parse")

type parseOptions struct {
	schema   string
	parser   string
	format   string
	parallel int
}

func (a *app) parseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse standard input line by line",
		Long: `Parse runs a parser of the schema over every line of standard input.

Single and sum parsers print a record per matching line. Chains advance one
line at a time and print a record each time they complete. Lines that do
not match are reported on standard error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "schema file")
	cmd.Flags().StringVarP(&opts.parser, "parser", "p", "", "parser name")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml or json")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "match up to n sum variants concurrently")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("parser")

	return cmd
}

type encoder interface {
	Encode(v any) error
}

func newEncoder(format string, w io.Writer) (encoder, error) {
	switch format {
	case "yaml":
		return yaml.NewEncoder(w), nil
	case "json":
		return json.NewEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected yaml or json", format)
	}
}

func (a *app) runParse(cmd *cobra.Command, opts parseOptions) error {
	enc, err := newEncoder(opts.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if c, ok := enc.(io.Closer); ok {
		defer c.Close()
	}

	f, err := schema.LoadFile(opts.schema)
	if err != nil {
		return err
	}

	reg, err := f.Compile(rgx.WithLogger(a.logger), rgx.WithParallel(opts.parallel))
	if err != nil {
		return err
	}

	r := runner{
		enc:    enc,
		stderr: cmd.ErrOrStderr(),
		logger: a.logger.With(zap.String("parser", opts.parser)),
	}

	lines := bufio.NewScanner(cmd.InOrStdin())

	if c, ok := reg.Chain(opts.parser); ok {
		err = r.chain(c, lines)
	} else if p, ok := reg.Parser(opts.parser); ok {
		err = r.single(p, lines)
	} else {
		return fmt.Errorf("schema %s has no parser %q", opts.schema, opts.parser)
	}

	if err != nil {
		return err
	}

	if r.failed > 0 {
		return fmt.Errorf("%w: %d", errFailedLines, r.failed)
	}

	return nil
}

type runner struct {
	enc    encoder
	stderr io.Writer
	logger *zap.Logger
	failed int
}

func (r *runner) report(line int, format string, args ...any) {
	fmt.Fprintf(r.stderr, "line %d: %s\n", line, fmt.Sprintf(format, args...))
}

func (r *runner) single(p rgx.Parser[schema.Record], lines *bufio.Scanner) error {
	n := 0
	for lines.Scan() {
		n++

		rec, ok, err := p.Parse(lines.Text())
		switch {
		case err != nil:
			r.failed++
			r.report(n, "%v", err)
		case !ok:
			r.report(n, "no match")
		default:
			if err := r.enc.Encode(rec); err != nil {
				return err
			}
		}
	}

	return lines.Err()
}

func (r *runner) chain(c *rgx.Chain[schema.Record], lines *bufio.Scanner) error {
	state := c.Start()

	n := 0
	for lines.Scan() {
		n++

		matched, next, err := state.Advance(lines.Text())
		switch {
		case err != nil:
			r.failed++
			r.report(n, "%v", err)
			continue
		case !matched:
			r.report(n, "no match for step %d", state.Index())
			continue
		}

		if rec, done := next.Result(); done {
			if err := r.enc.Encode(rec); err != nil {
				return err
			}

			state = c.Start()

			continue
		}

		state, _ = next.Pending()
	}

	if !state.Fresh() {
		r.logger.Warn("input ended inside a record", zap.Int("step", state.Index()))
		fmt.Fprintf(r.stderr, "input ended at step %d of %d\n", state.Index(), state.Len())
	}

	return lines.Err()
}
