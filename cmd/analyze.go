package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
	"github.com/alexiusacademia/beamcalc/internal/export"
	"github.com/alexiusacademia/beamcalc/internal/input"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	// Analysis options
	analyzeCombo   string
	analyzeSamples int
	analyzeASCII   bool
	analyzeTerms   bool

	// Outputs
	analyzePlot string
	analyzeXLSX string
	analyzePDF  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve reactions and build shear and moment diagrams",
	Long: `Solve the support reactions of a statically determinate beam and build
its shear force and bending moment diagrams by Macaulay's method.

The beam is read from a definition file, or given inline with flags.
Positions accept a number, L (the beam length) or L/<n>.
Forces are downward unless the file says direction: up.

Examples:
  # Simply supported beam with a 10 kN load at midspan
  beamcalc analyze -L 10 -s A,hinge,0 -s B,roller,L -p L/2,10

  # Cantilever with a UDL on its outer half, with terminal diagrams
  beamcalc analyze -L 20 -s A,fixed,0 -u L/2,L,10 --ascii

  # From a file, under NSCP combination 2, exporting everything
  beamcalc analyze -f examples/hinged.yaml --combo 2 --plot bmd.png --xlsx beam.xlsx --pdf beam.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addDefinitionFlags(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeCombo, "combo", "c", nscp.Unfactored.ID, "NSCP load combination ID (0 = unfactored)")
	analyzeCmd.Flags().IntVarP(&analyzeSamples, "samples", "n", 0, "Diagram sample points (default from BEAMCALC_SAMPLES)")
	analyzeCmd.Flags().BoolVarP(&analyzeASCII, "ascii", "a", false, "Draw the diagrams in the terminal")
	analyzeCmd.Flags().BoolVar(&analyzeTerms, "terms", false, "Print the equilibrium equations and diagram expressions")

	analyzeCmd.Flags().StringVar(&analyzePlot, "plot", "", "Export SFD and BMD image (.png, .svg, .pdf)")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Export reactions, samples and terms to a workbook")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Export a PDF report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	combo, err := findCombination(analyzeCombo)
	if err != nil {
		return err
	}
	samples := analyzeSamples
	if samples < 2 {
		samples = settings.Samples
	}

	b, loads, err := def.Build(combo, beam.WithLogger(logger))
	if err != nil {
		return err
	}
	a, err := b.Analyze(loads)
	if err != nil {
		return err
	}
	logger.WithFields(l.StringField("combination", combo.ID)).Debug("analysis complete")

	printAnalysis(def, combo, a, samples)

	title := def.Title
	data := diagram.NewBeamDiagramData(a, title, samples)
	if analyzeASCII {
		fmt.Println("DIAGRAMS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.DrawASCIIShear(data, diagram.DefaultASCIIOptions))
		fmt.Println()
		fmt.Println(diagram.DrawASCIIMoment(data, diagram.DefaultASCIIOptions))
		fmt.Println()
	}

	return writeOutputs(a, data, combo, title, samples)
}

func findCombination(id string) (nscp.LoadCombination, error) {
	if id == "" || id == nscp.Unfactored.ID {
		return nscp.Unfactored, nil
	}
	return nscp.Find(nscp.LoadCombinations, id)
}

func printAnalysis(def *input.Definition, combo nscp.LoadCombination, a *beam.Analysis, samples int) {
	prec := settings.Precision
	title := def.Title
	if title == "" {
		title = "BEAM ANALYSIS"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length:\t%g m\n", a.Beam().Length)
	fmt.Fprintf(w, "  Load combination:\t%s (%s)\n", combo.ID, combo.Description)
	fmt.Fprintf(w, "  Moment reference:\tx = %g m\n", a.Beam().About)
	if a.Beam().EI() > 0 {
		fmt.Fprintf(w, "  EI:\t%.*f kN·m²\n", prec, a.Beam().EI())
	}
	for _, ld := range a.Loads() {
		fmt.Fprintf(w, "  %s\n", describe(ld))
	}
	w.Flush()
	fmt.Print(diagram.DrawBeamSchematic(a.Beam().Length, a.Loads()))
	fmt.Println()

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Support\tType\tx (m)\tRx (kN)\tRy (kN)\tM (kN·m)\n")
	fmt.Fprintf(w, "  ───────\t────\t─────\t───────\t───────\t────────\n")
	for _, r := range a.Reactions() {
		moment := "-"
		if r.Has(load.ComponentMoment) {
			moment = fmt.Sprintf("%.*f", prec, r.MomVal)
		}
		fmt.Fprintf(w, "  %s\t%s\t%g\t%.*f\t%.*f\t%s\n", r.Label, r.Support, r.Pos, prec, r.RxVal, prec, r.RyVal, moment)
	}
	w.Flush()
	fmt.Println()

	if analyzeTerms {
		sys := a.System()
		fmt.Println("EQUILIBRIUM EQUATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, eq := range sys.Equations() {
			fmt.Printf("  %s\n", eq.Format(sys.Unknowns()))
		}
		fmt.Println()
		fmt.Println("DIAGRAM EXPRESSIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  V(x) = %s\n", a.ShearExpr().Simplify())
		fmt.Printf("  M(x) = %s\n", a.MomentExpr().Simplify())
		fmt.Println()
	}

	peaks := a.Peaks(samples)
	lines := []string{
		fmt.Sprintf("Max shear  = %.*f kN at x = %.3f m", prec, peaks.MaxShear.Value, peaks.MaxShear.X),
		fmt.Sprintf("Min shear  = %.*f kN at x = %.3f m", prec, peaks.MinShear.Value, peaks.MinShear.X),
		fmt.Sprintf("Max moment = %.*f kN·m at x = %.3f m", prec, peaks.MaxMoment.Value, peaks.MaxMoment.X),
		fmt.Sprintf("Min moment = %.*f kN·m at x = %.3f m", prec, peaks.MinMoment.Value, peaks.MinMoment.X),
	}
	if s, err := a.MaxBendingStress(samples); err == nil {
		lines = append(lines,
			fmt.Sprintf("σ top      = %.*f MPa", prec, s.Top),
			fmt.Sprintf("σ bottom   = %.*f MPa", prec, s.Bottom),
		)
	}
	fmt.Print(diagram.DrawSummaryBox("PEAK VALUES", lines))
	fmt.Println()
}

func describe(ld load.Load) string {
	switch v := ld.(type) {
	case *load.PointLoad:
		return fmt.Sprintf("Point load:\t%g kN at %g° (Fx %.4g, Fy %.4g) at x = %g m", v.Magnitude, v.Inclination, v.X, v.Y, v.Pos)
	case *load.UDL:
		return fmt.Sprintf("UDL:\t%g kN/m from %g m to %g m", v.LoadPM, v.Start, v.End)
	case *load.UVL:
		return fmt.Sprintf("UVL:\t%g to %g kN/m from %g m to %g m", v.StartLoad, v.EndLoad, v.Start, v.End)
	case *load.PointMoment:
		return fmt.Sprintf("Point moment:\t%g kN·m at x = %g m", v.Mom, v.Pos)
	case *load.Reaction:
		return fmt.Sprintf("Support %s:\t%s at x = %g m", v.Label, v.Support, v.Pos)
	case *load.Hinge:
		return fmt.Sprintf("Hinge:\tx = %g m (%s side)", v.Pos, v.Side)
	}
	return fmt.Sprintf("%T", ld)
}

// outputPath places relative file names under the configured output
// directory
func outputPath(name string) string {
	if filepath.IsAbs(name) || settings.OutputDir == "" || settings.OutputDir == "." {
		return name
	}
	return filepath.Join(settings.OutputDir, name)
}

func writeOutputs(a *beam.Analysis, data diagram.BeamDiagramData, combo nscp.LoadCombination, title string, samples int) error {
	var images []string
	if analyzePlot != "" {
		path := outputPath(analyzePlot)
		if err := diagram.ExportCombinedDiagram(data, path); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("  Diagram saved to %s\n", path)
		if filepath.Ext(path) == ".png" {
			images = append(images, path)
		}
	}

	if analyzeXLSX == "" && analyzePDF == "" {
		return nil
	}
	r := export.FromAnalysis(a, title, samples)
	r.Combination = fmt.Sprintf("%s (%s)", combo.ID, combo.Description)
	r.Images = images

	if analyzeXLSX != "" {
		path := outputPath(analyzeXLSX)
		if err := export.SaveWorkbook(r, path); err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		fmt.Printf("  Workbook saved to %s\n", path)
	}
	if analyzePDF != "" {
		path := outputPath(analyzePDF)
		if err := export.SavePDF(r, path); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		fmt.Printf("  Report saved to %s\n", path)
	}
	return nil
}
