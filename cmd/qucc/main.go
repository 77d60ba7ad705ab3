package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qucc-project/qucc"
	"github.com/qucc-project/qucc/logger"
	"github.com/qucc-project/qucc/native"
	"github.com/qucc-project/qucc/qasm"
	"github.com/qucc-project/qucc/redundancy"
	"github.com/qucc-project/qucc/sequency"
)

type runOptions struct {
	passes              string
	output              string
	quiet               bool
	useExternal         bool
	redundancyThreshold float64
	hierarchyDepth      int
	truncationThreshold float64
	maxOrder            int
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qucc",
		Short: "qucc optimizes quantum gate circuits",
	}
	cmd.AddCommand(newRunCommand())
	return cmd
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] input.qasm",
		Short: "Run optimization passes over a QASM circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.passes, "passes", "native,redundancy,sequency", "comma-separated pass pipeline")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "disable logging")
	cmd.Flags().BoolVar(&opts.useExternal, "use-external", false, "delegate translation to an external optimizer when available")
	cmd.Flags().Float64Var(&opts.redundancyThreshold, "redundancy-threshold", 0.01, "minimum contribution score to keep an operation")
	cmd.Flags().IntVar(&opts.hierarchyDepth, "hierarchy-depth", 3, "maximum depth of hierarchical analysis")
	cmd.Flags().Float64Var(&opts.truncationThreshold, "truncation-threshold", 0.01, "minimum sequency coefficient to preserve")
	cmd.Flags().IntVar(&opts.maxOrder, "max-order", 3, "maximum sequency order to analyze")

	return cmd
}

func buildPipeline(opts *runOptions) ([]qucc.Pass, error) {
	var passes []qucc.Pass
	for _, name := range strings.Split(opts.passes, ",") {
		switch strings.TrimSpace(name) {
		case "native":
			var topts []native.Option
			if opts.useExternal {
				topts = append(topts, native.UseExternal())
			}
			passes = append(passes, native.NewTranslator(topts...))
		case "redundancy":
			passes = append(passes, redundancy.NewFilter(
				redundancy.WithThreshold(opts.redundancyThreshold),
				redundancy.WithHierarchyDepth(opts.hierarchyDepth),
			))
		case "sequency":
			passes = append(passes, sequency.NewTruncator(
				sequency.WithThreshold(opts.truncationThreshold),
				sequency.WithMaxOrder(opts.maxOrder),
			))
		default:
			return nil, fmt.Errorf("unknown pass %q", strings.TrimSpace(name))
		}
	}
	return passes, nil
}

func runPasses(opts *runOptions, input string) error {
	if opts.quiet {
		logger.Disable()
	}
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	circuit, err := qasm.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}
	passes, err := buildPipeline(opts)
	if err != nil {
		return err
	}
	res, err := qucc.Apply(circuit, passes...)
	if err != nil {
		return err
	}
	out := qasm.Emit(res)
	if opts.output == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(opts.output, []byte(out), 0o644)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
