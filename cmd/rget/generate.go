package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rget/pkg/charset"
	"github.com/dmitrymomot/rget/pkg/engine"
	"github.com/dmitrymomot/rget/pkg/export"
	"github.com/dmitrymomot/rget/pkg/logger"
)

type generateOpts struct {
	mode     string
	length   int
	random   bool
	count    int
	lower    bool
	upper    bool
	noRepeat bool
	input    string
	output   string
	hash     string
	noPrint  bool
}

func (o generateOpts) request() engine.Request {
	req := engine.Request{
		Mode:         o.mode,
		Length:       o.length,
		RandomLength: o.random,
		Count:        o.count,
		NoRepeat:     o.noRepeat,
		Input:        o.input,
	}
	switch {
	case o.lower:
		req.Case = charset.CaseLower
	case o.upper:
		req.Case = charset.CaseUpper
	}
	return req
}

func newRootCommand(a *app) *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "rget",
		Short: "Generate random strings",
		Long: `Generate random strings from a mode, a composite expression or a named definition.

Modes:
  n    digits
  a    letters
  an   letters and digits
  cc   characters from --input
  u    UUID v4

Expressions combine invocations and quoted literals, for example
"[an(10;nr),'@test.com',n(5;r)]". Invocation parameters are separated by ";":
a length or r for a random length, nr for no repeated characters, s or S for
lower or upper case, and for cc the characters to draw from.

Named definitions are referenced as $name; see "rget defs".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.mode, "mode", "m", "", "Mode tag, [expression] or $name")
	f.IntVarP(&opts.length, "length", "l", 0, "Fixed length of every string")
	f.BoolVarP(&opts.random, "random", "r", false, "Random length between min_length and max_length")
	f.IntVarP(&opts.count, "count", "c", 1, "Number of strings to generate")
	f.BoolVarP(&opts.lower, "lower", "s", false, "Lower case letters only")
	f.BoolVarP(&opts.upper, "upper", "S", false, "Upper case letters only")
	f.BoolVar(&opts.noRepeat, "nr", false, "Do not repeat characters within a string")
	f.StringVarP(&opts.input, "input", "i", "", "Charset for cc; overrides every other cc charset")
	f.StringVarP(&opts.output, "output", "o", "", "Export path or s3://bucket/key (default: generated_strings.txt in the temp dir)")
	f.StringVar(&opts.hash, "hash", "", "Digests of the export: n, a or a comma list such as md5,sha3_256")
	f.BoolVar(&opts.noPrint, "nv", false, "Do not print the generated strings")

	_ = cmd.MarkFlagRequired("mode")
	cmd.MarkFlagsMutuallyExclusive("length", "random")
	cmd.MarkFlagsMutuallyExclusive("lower", "upper")

	cmd.AddCommand(
		newSetCommand(a),
		newDefsCommand(a),
	)
	return cmd
}

func (a *app) generate(cmd *cobra.Command, opts generateOpts) error {
	ctx := cmd.Context()

	out, err := a.engine.Generate(ctx, opts.request())
	if err != nil {
		return err
	}

	if !opts.noPrint {
		for _, s := range out {
			fmt.Fprintln(a.stdout, s)
		}
	}

	exp, err := a.newExporter(ctx, opts.output)
	if err != nil {
		return err
	}
	res, err := exp.Export(ctx, out)
	if err != nil {
		return err
	}
	a.log.DebugContext(ctx, "exported batch", logger.Path(res.Location), logger.Count(len(out)))
	if opts.output != "" {
		fmt.Fprintf(a.stdout, "exported to: %s\n", res.Location)
	}

	if opts.hash == "" {
		return nil
	}
	return a.printDigests(out, res, opts.hash)
}

func (a *app) printDigests(lines []string, res export.Result, selection string) error {
	algs, unknown := export.ParseAlgorithms(selection)
	for _, name := range unknown {
		fmt.Fprintf(a.stderr, "warning: unsupported hash algorithm %q ignored\n", name)
	}
	if len(algs) == 0 {
		return nil
	}

	var (
		sums []export.Sum
		err  error
	)
	if export.IsS3URL(res.Location) {
		sums, err = export.Digest(bytes.NewReader(export.Render(lines)), algs)
	} else {
		sums, err = export.DigestFile(res.Location, algs)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, strings.Repeat("-", 50))
	for _, s := range sums {
		fmt.Fprintf(a.stdout, "%s: %s\n", strings.ToUpper(string(s.Algorithm)), s.Hex)
	}
	return nil
}
