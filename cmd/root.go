package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocfs/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocfs",
	Short: "Effective section properties of cold-formed lipped channels",
	Long: `gocfs - Go Cold-Formed Steel Section Calculator

A CLI tool for the effective section properties of cold-formed
lipped channel (C) sections to EN 1993-1-3 and EN 1993-1-5.

This tool helps structural engineers perform:
  - Gross section properties with rounded corners
  - Effective widths of flanges, lips and web (EN1993-1-5 4.4)
  - Distortional buckling of the edge stiffeners (EN1993-1-3 5.5.3)
  - Effective area, centroid shift and section moduli for
    axial compression and bending about both axes
  - PDF and XLSX calculation reports, batch runs and an HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocfs v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Cold-Formed Steel Section Calculator                 ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Effective section properties of cold-formed lipped channels")
		fmt.Printf("  based on %s.\n", version.Standard)
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Gross section properties, shear centre and warping constant")
		fmt.Println("    • Effective section in axial compression")
		fmt.Println("    • Effective section in major and minor axis bending")
		fmt.Println("    • Distortional buckling of lip stiffeners")
		fmt.Println("    • PDF/XLSX reports, XLSX batch runs and a JSON HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gocfs --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
