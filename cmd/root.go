package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/beamcalc/internal/config"
	"github.com/alexiusacademia/beamcalc/internal/version"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	// Global options
	envFile string
	verbose bool

	settings = config.Default()
	logger   = l.NewNopLoggerWrapper()
)

var rootCmd = &cobra.Command{
	Use:   "beamcalc",
	Short: "Statically determinate beam analysis tool",
	Long: `beamcalc - Beam reactions and Macaulay diagrams

A CLI tool for the static analysis of statically determinate beams.

This tool helps structural engineers:
  - Solve support reactions exactly (roller, hinge and fixed supports)
  - Handle internal hinges through their moment equations
  - Build shear force and bending moment diagrams by Macaulay's method
  - Find the governing NSCP 2015 load combination
  - Export diagrams, spreadsheets and PDF reports

Units: m, kN, kN·m, degrees. +x to the right, +y up, counter-clockwise
moments positive.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}
		settings = cfg

		if settings.Verbose {
			logger = l.NewConsoleLoggerWrapper()
		}
		logger = logger.WithFields(l.StringField(l.ClsKey, "beamcalc"))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamcalc v%-46s║\n", version.Version)
		fmt.Println("  ║   Beam Reactions and Macaulay Diagrams                    ║")
		fmt.Printf("  ║   %s ©  %-42s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Exact reactions for roller, hinge and fixed supports")
		fmt.Println("    • Internal hinges")
		fmt.Println("    • Point loads, UDL, UVL and point moments")
		fmt.Println("    • Shear force and bending moment diagrams")
		fmt.Println("    • Governing NSCP load combination")
		fmt.Println()
		fmt.Println("  Use 'beamcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Settings file read when present")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the equations and solution steps")
}
