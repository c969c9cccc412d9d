package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	// Options
	showAll       bool
	useSimplified bool
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Find the governing NSCP load combination",
	Long: `Analyse the beam under every NSCP 2015 load combination and report the
one giving the largest bending moment (Mu).

Each load carries a load case (default D):
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Dead and live point loads given inline
  beamcalc envelope -L 6 -s A,hinge,0 -s B,roller,L -u 0,L,12,D -p L/2,30,,L

  # Show all combinations for a definition file
  beamcalc envelope -f examples/cases.yaml --all`,
	RunE: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)
	addDefinitionFlags(envelopeCmd)

	envelopeCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	envelopeCmd.Flags().BoolVar(&useSimplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

type comboResult struct {
	peaks beam.Peaks
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}

	// Select which combinations to use
	combinations := def.CombinationsToCheck()
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}
	samples := settings.Samples
	prec := settings.Precision

	results := make(map[string]comboResult, len(combinations))
	maxMu, governingCombo, err := nscp.CalculateGoverning(combinations, func(combo nscp.LoadCombination) (float64, error) {
		b, loads, err := def.Build(combo, beam.WithLogger(logger))
		if err != nil {
			return 0, err
		}
		a, err := b.Analyze(loads)
		if err != nil {
			return 0, err
		}
		peaks := a.Peaks(samples)
		results[combo.ID] = comboResult{peaks: peaks}
		logger.WithFields(l.StringField("combination", combo.ID), l.StringField("mu", fmt.Sprintf("%g", peaks.AbsMoment().Value))).Debug("combination analysed")
		return peaks.AbsMoment().Value, nil
	})
	if err != nil {
		return err
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 LOAD COMBINATION ENVELOPE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("LOADS BY CASE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	counts := map[string]int{}
	for _, ld := range def.Loads {
		counts[nscp.NormalizeCase(ld.Case)]++
	}
	for _, c := range []string{nscp.CaseDead, nscp.CaseLive, nscp.CaseRoof, nscp.CaseWind, nscp.CaseEarthquake, nscp.CaseRain} {
		if counts[c] > 0 {
			fmt.Fprintf(w, "  %s:\t%d load(s)\n", c, counts[c])
		}
	}
	w.Flush()
	fmt.Println()

	if showAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tVu (kN)\tMu (kN·m)\tat x (m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\t─────────\t────────\n")

		for _, combo := range combinations {
			r := results[combo.ID]
			v, m := r.peaks.AbsShear(), r.peaks.AbsMoment()
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.*f\t%.*f\t%.3f%s\n", combo.ID, combo.Description, prec, v.Value, prec, m.Value, m.X, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	gov := results[governingCombo.ID].peaks
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("FACTORED ACTIONS", []string{
		fmt.Sprintf("Mu = %.*f kN·m at x = %.3f m", prec, math.Abs(maxMu), gov.AbsMoment().X),
		fmt.Sprintf("Vu = %.*f kN at x = %.3f m", prec, math.Abs(gov.AbsShear().Value), gov.AbsShear().X),
	}))
	fmt.Println()
	return nil
}
