// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	m "github.com/mkhts/phiconst"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Structure to hold command line argument information
type cmdOpt struct {
	json      bool
	outFn     string
	parallel  bool
	noDetails bool
	constants bool
	dbg       int
}

func newRootCmd() *cobra.Command {
	var a cmdOpt
	cmd := &cobra.Command{
		Use:   "phiconst",
		Short: "Derive physical constants from phi, pi and e and compare them with CODATA 2022",
		Long: `phiconst evaluates a fixed set of closed-form derivations, compares each
result with its reference value and prints a summary table, a detailed
breakdown and summary statistics.

With --json the results are also written to verification_results.json
in the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(a.dbg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			m.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = m.Logger().Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApplication(cmd.Context(), cmd.OutOrStdout(), a)
		},
	}
	eOpt := m.NewEvalOpt()
	f := cmd.Flags()
	f.BoolVar(&a.json, "json", false, "Also write the results to a JSON file after printing the report")
	f.StringVarP(&a.outFn, "out", "o", m.DefaultExportFile, "Path of the JSON file written with --json")
	f.BoolVarP(&a.parallel, "parallel", "p", eOpt.Parallel, "Evaluate the derivations concurrently. The report order does not change.")
	f.BoolVar(&a.noDetails, "no-details", false, "Do not print the detailed breakdown")
	f.BoolVar(&a.constants, "constants", false, "Print the table of experimental values and exit")
	f.IntVarP(&a.dbg, "debug", "x", 0, "Debug information display. Specify level value. 0(warnings), 1(info), 2(debug)")
	return cmd
}

// Logger writing JSON lines to stderr
func newLogger(dbg int) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	switch {
	case dbg >= 2:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case dbg == 1:
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return config.Build()
}

// Main application processing
func runApplication(ctx context.Context, w io.Writer, args cmdOpt) error {

	c := m.NewCodata()
	if args.constants {
		printConstants(w, c)
		return nil
	}

	// Evaluate all derivations
	results, err := m.Evaluate(ctx, c, m.Registry(), setEvalOpt(&args))
	if err != nil {
		return fmt.Errorf("failed to evaluate derivations: %w", err)
	}
	m.Logger().Info("derivations evaluated", zap.Int("count", len(results)), zap.Bool("parallel", args.parallel))

	// Console report
	if err := m.WriteReport(w, results, setReportOpt(&args)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !args.json {
		return nil
	}

	// Machine-readable results. The report above stays printed even if this fails.
	exp := m.NewExport(results, m.NewExportMeta(time.Now()))
	if err := exp.WriteFile(args.outFn); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	fmt.Fprintf(w, "\nResults written to %s\n", args.outFn)
	return nil
}

// Print the table of experimental values
func printConstants(w io.Writer, c *m.Codata) {
	fmt.Fprintf(w, "%% %s\n", m.Reference)
	for _, s := range c.Symbols() {
		v, _ := c.Get(s)
		fmt.Fprintf(w, "%-12s %s\n", s, m.FormatFloat(v))
	}
}

func setEvalOpt(args *cmdOpt) *m.EvalOpt {
	opt := m.NewEvalOpt()
	opt.Parallel = args.parallel
	return opt
}

func setReportOpt(args *cmdOpt) *m.ReportOpt {
	opt := m.NewReportOpt()
	opt.NoDetails = args.noDetails
	return opt
}
