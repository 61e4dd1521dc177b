package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Lipped channel section properties",
	Long: `Calculate gross and effective properties of cold-formed lipped
channel sections given on the command line or in JSON files.

Subcommands:
  gross      - Gross section properties
  effective  - Effective section for one or all load cases
  export     - Write a PDF or XLSX calculation report
  batch      - Evaluate every section of an XLSX sheet

Example JSON file structure:
{
  "name": "C90x45x10x1.2",
  "a": 90,
  "b": 45,
  "c": 10,
  "t": 1.2,
  "r": 1.6,
  "fy": 350,
  "design_stress": {"axial": 300}
}

Dimensions are outer dimensions in mm. The coating allowance (0.04 mm),
E (210000 MPa) and Poisson's ratio (0.3) default when omitted.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
