package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/diagram"
	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/spf13/cobra"
)

var (
	effectiveInput       sectionInput
	effectiveMode        string
	effectiveShowDiagram bool
	effectiveRows        int
	effectiveExportFile  string
)

var sectionEffectiveCmd = &cobra.Command{
	Use:   "effective",
	Short: "Effective section properties for one or all load cases",
	Long: `Calculate the effective section of a lipped channel.

Each load case runs the effective width of the flanges (EN1993-1-5
4.4), the distortional buckling of the lip stiffeners (EN1993-1-3
5.5.3.2), the effective web from the provisional neutral axis and the
properties of the final effective mesh.

Load cases (--mode):
  axial             - uniform compression
  bending-strong    - major axis bending, top flange in compression
  bending-weak-lip  - minor axis bending, lips in compression
  bending-weak-web  - minor axis bending, web in compression
  all               - every load case (default)

Examples:
  gocfs section effective --file c90.json
  gocfs section effective -A 90 -B 45 -C 10 -t 1.2 -r 1.6 --mode axial --diagram
  gocfs section effective -f c90.json -o c90.png`,
	Run: runSectionEffective,
}

func init() {
	sectionCmd.AddCommand(sectionEffectiveCmd)
	addSectionFlags(sectionEffectiveCmd, &effectiveInput)

	sectionEffectiveCmd.Flags().StringVarP(&effectiveMode, "mode", "m", "all", "Load case: axial, bending-strong, bending-weak-lip, bending-weak-web or all")

	// Diagram options
	sectionEffectiveCmd.Flags().BoolVar(&effectiveShowDiagram, "diagram", false, "Show ASCII diagram of the effective mesh")
	sectionEffectiveCmd.Flags().IntVar(&effectiveRows, "rows", 24, "Height of the ASCII diagram in lines")
	sectionEffectiveCmd.Flags().StringVarP(&effectiveExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf); one file per load case")
}

// selectModes parses the --mode flag
func selectModes(name string) ([]effective.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return effective.Modes, nil
	}
	m, err := effective.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return []effective.Mode{m}, nil
}

func runSectionEffective(cmd *cobra.Command, args []string) {
	modes, err := selectModes(effectiveMode)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sec, err := effectiveInput.load(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	a, err := effective.NewAnalysis(sec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var results []*effective.Result
	if len(modes) == len(effective.Modes) {
		results, err = a.EvaluateAll()
	} else {
		var r *effective.Result
		r, err = a.Evaluate(modes[0])
		results = []*effective.Result{r}
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("EFFECTIVE SECTION - EN 1993-1-3 / EN 1993-1-5")
	printInput(a.Section())

	for _, r := range results {
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Printf("     %s\n", strings.ToUpper(r.Mode.Title()))
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Println()

		printEffective(r)
		fmt.Print(diagram.DrawSummaryBox(strings.ToUpper(r.Mode.Title()), summaryLines(r)))
		fmt.Println()

		data := diagram.NewMeshDiagramData(a, r)
		if effectiveShowDiagram {
			fmt.Println(diagram.DrawASCIIMesh(data, effectiveRows))
		}

		if effectiveExportFile != "" {
			name := effectiveExportFile
			if len(results) > 1 {
				name = modeFilename(effectiveExportFile, r.Mode)
			}
			out, err := diagram.ExportMeshDiagram(data, name)
			if err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", out)
			}
			fmt.Println()
		}
	}
}

// modeFilename inserts the load case before the extension: c90.png
// becomes c90-axial.png
func modeFilename(name string, m effective.Mode) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "-" + m.String() + ext
}
