// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package phiconst

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	reportWidth = 78
	derivedMax  = 1e12 // Errors at or above this are not counted as derived constants
)

// Options for the console report
type ReportOpt struct {
	NoBanner  bool
	NoTable   bool
	NoDetails bool
	NoSummary bool
	Version   string
	GoVersion string
	Reference string
	Repo      string // Not printed if empty
	DOI       string // Not printed if empty
}

func NewReportOpt() *ReportOpt {
	return &ReportOpt{
		Version:   Version,
		GoVersion: runtime.Version(),
		Reference: Reference,
		Repo:      Repository,
		DOI:       DOI,
	}
}

// WriteReport writes the banner, summary table, detailed breakdown and summary of results to w.
func WriteReport(w io.Writer, results []Result, opt *ReportOpt) error {
	if opt == nil {
		opt = NewReportOpt()
	}
	bw := bufio.NewWriter(w)
	if !opt.NoBanner {
		writeBanner(bw, opt)
	}
	if !opt.NoTable {
		writeTable(bw, results)
	}
	if !opt.NoDetails {
		writeDetails(bw, results)
	}
	if !opt.NoSummary {
		writeSummary(bw, results)
	}
	return bw.Flush()
}

func rule(c string) string {
	return strings.Repeat(c, reportWidth)
}

func writeBanner(w io.Writer, opt *ReportOpt) {
	fmt.Fprintln(w, rule("="))
	fmt.Fprintf(w, "QHOTS v%s - Independent Verification\n", opt.Version)
	fmt.Fprintln(w, rule("="))
	fmt.Fprintf(w, "Go %s | float64 (IEEE-754 double precision)\n", opt.GoVersion)
	fmt.Fprintf(w, "Reference: %s recommended values\n", opt.Reference)
	if len(opt.Repo) > 0 {
		fmt.Fprintf(w, "Repository: %s\n", opt.Repo)
	}
	if len(opt.DOI) > 0 {
		fmt.Fprintf(w, "DOI: %s\n", opt.DOI)
	}
	fmt.Fprintln(w)
}

// ------------------------------------
// Summary table
// ------------------------------------

func writeTable(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-3s %-38s %16s %16s %14s\n", "#", "Name", "Predicted", "Experimental", "Error")
	fmt.Fprintln(w, rule("-"))
	for i, r := range results {
		pred, ref := FormatPair(r.Predicted, r.Reference)
		fmt.Fprintf(w, "%-3d %-38s %16s %16s %14s\n", i+1, r.Name, pred, ref, r.ErrorFormatted)
	}
	fmt.Fprintln(w, rule("-"))
	fmt.Fprintln(w)
}

// Format a predicted/reference pair for the table
// - The tier is chosen by the magnitude of the predicted value
func FormatPair(pred, ref float64) (string, string) {
	a := math.Abs(pred)
	switch {
	case a < 0.01, a < 10:
		return fmt.Sprintf("%.10f", pred), fmt.Sprintf("%.10f", ref)
	case a < 1e4:
		return fmt.Sprintf("%.7f", pred), fmt.Sprintf("%.7f", ref)
	case a > 1e6 || a < 1e-6:
		return fmt.Sprintf("%.5e", pred), fmt.Sprintf("%.5e", ref)
	default:
		return FormatFloat(pred), FormatFloat(ref)
	}
}

// ------------------------------------
// Detailed breakdown
// ------------------------------------

func writeDetails(w io.Writer, results []Result) {
	fmt.Fprintln(w, rule("="))
	fmt.Fprintln(w, "DETAILED BREAKDOWN")
	fmt.Fprintln(w, rule("="))
	for i, r := range results {
		fmt.Fprintf(w, "\n--- %d. %s (%s) ---\n", i+1, r.Name, r.Symbol)
		fmt.Fprintf(w, "  Formula: %s\n", r.Formula)
		fmt.Fprintf(w, "  Predicted:    %s\n", valueString(r.Predicted, r.Integral))
		fmt.Fprintf(w, "  Experimental: %s\n", valueString(r.Reference, r.Integral || r.IntRef))
		fmt.Fprintf(w, "  Error:        %s (%.3f ppb)\n", r.ErrorFormatted, r.ErrorPPB)
		if r.HasNote() {
			fmt.Fprintf(w, "  Note:         %s\n", r.Note)
		}
		fmt.Fprintf(w, "  Components:\n")
		for _, c := range r.Components {
			fmt.Fprintf(w, "    %s: %s\n", c.Label, c)
		}
	}
}

func valueString(v float64, integral bool) string {
	if integral {
		return FormatInt(v)
	}
	return FormatFloat(v)
}

// ------------------------------------
// Summary
// ------------------------------------

// Partition splits results into derived constants (sorted by error) and exact identities (registry order).
// A result can be in both when it has a small non-zero error and is noted as EXACT.
func Partition(results []Result) (derived, exact []Result) {
	for _, r := range results {
		if r.ErrorPPB > 0 && r.ErrorPPB < derivedMax {
			derived = append(derived, r)
		}
		if r.ErrorPPB == 0 || strings.Contains(r.Note, "EXACT") {
			exact = append(exact, r)
		}
	}
	slices.SortStableFunc(derived, func(a, b Result) int {
		return cmp.Compare(a.ErrorPPB, b.ErrorPPB)
	})
	return derived, exact
}

func writeSummary(w io.Writer, results []Result) {
	derived, exact := Partition(results)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule("="))
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, rule("="))

	fmt.Fprintf(w, "\nDerived constants (%d):\n", len(derived))
	for _, r := range derived {
		fmt.Fprintf(w, "  %14s  %s\n", r.ErrorFormatted, r.Name)
	}

	fmt.Fprintf(w, "\nExact identities (%d):\n", len(exact))
	for _, r := range exact {
		fmt.Fprintf(w, "  %14s  %s\n", "EXACT", r.Name)
	}

	fmt.Fprintf(w, "\nTotal checks: %d\n", len(results))
	if len(derived) > 0 {
		ppb := make([]float64, len(derived))
		for i, r := range derived {
			ppb[i] = r.ErrorPPB
		}
		fmt.Fprintf(w, "Precision span: %s .. %s\n", FormatError(floats.Min(ppb)), FormatError(floats.Max(ppb)))
		// ppb is ascending, as stat.Quantile requires
		med := stat.Quantile(0.5, stat.Empirical, ppb, nil)
		fmt.Fprintf(w, "Median error: %s (geometric mean %s)\n", FormatError(med), FormatError(stat.GeometricMean(ppb, nil)))
	}
	fmt.Fprintf(w, "Free parameters: 0\n")
	fmt.Fprintf(w, "Input: alpha (%s), m_e (%s)\n", Reference, Reference)
	fmt.Fprintf(w, "Everything else derived from pi, phi, e, sqrt(3), and integers.\n")
}
