package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocfs/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchFile     string
	batchOutput   string
	batchTemplate string
)

var sectionBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate every section of an XLSX sheet",
	Long: `Read sections from the first sheet of a workbook, one per row, and
evaluate every load case of each.

The header row names the columns in any order:
  name, a, b, c, t, r, fy                 required
  coating, e, nu                          optional
  axial, bending_strong,
  bending_weak_lip, bending_weak_web      optional design stresses (MPa)

Rows that cannot be read are reported and skipped; a section that fails
validation is listed with its error.

Examples:
  gocfs section batch --template sections.xlsx
  gocfs section batch -f sections.xlsx -o results.xlsx`,
	Run: runSectionBatch,
}

func init() {
	sectionCmd.AddCommand(sectionBatchCmd)

	sectionBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Workbook with one section per row")
	sectionBatchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write the summary workbook to this file")
	sectionBatchCmd.Flags().StringVar(&batchTemplate, "template", "", "Write an empty input workbook to this file and exit")
	sectionBatchCmd.MarkFlagsOneRequired("file", "template")
	sectionBatchCmd.MarkFlagsMutuallyExclusive("file", "template")
}

func runSectionBatch(cmd *cobra.Command, args []string) {
	if batchTemplate != "" {
		if err := createWith(batchTemplate, report.WriteBatchTemplate); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Template written to: %s\n", batchTemplate)
		return
	}

	in, err := os.Open(batchFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sections, rowErrors, err := report.ReadSectionsXLSX(in)
	in.Close()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("BATCH EVALUATION - EN 1993-1-3 / EN 1993-1-5")
	fmt.Printf("  Workbook: %s\n", batchFile)
	fmt.Printf("  Sections: %d\n", len(sections))
	fmt.Println()

	for _, re := range rowErrors {
		fmt.Printf("  ⚠ skipped %v\n", re)
	}
	if len(rowErrors) > 0 {
		fmt.Println()
	}

	items := report.EvaluateBatch(sections)

	fmt.Println("RESULTS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section\tAg (mm²)\tAeff,N (mm²)\tWx,eff (mm³)\tWy,eff lip (mm³)\tWy,eff web (mm³)\tStatus\n")
	fmt.Fprintf(w, "  ───────\t────────\t────────────\t────────────\t────────────────\t────────────────\t──────\n")
	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\t-\t✗ %v\n", item.Name, item.Err)
			continue
		}
		r := item.Results
		warnings := 0
		for _, res := range r {
			warnings += len(res.Warnings)
		}
		status := "✓"
		if warnings > 0 {
			status = fmt.Sprintf("⚠ %d warnings", warnings)
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.5g\t%.5g\t%.5g\t%s\n",
			item.Name, item.Analysis.Gross().AreaReduced, r[0].Area(), r[1].Wx, r[2].Wy, r[3].Wy, status)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d evaluated, %d failed\n", len(items)-failed, failed)
	fmt.Println()

	if batchOutput != "" {
		err := createWith(batchOutput, func(w io.Writer) error {
			return report.WriteBatchXLSX(w, items)
		})
		if err != nil {
			fmt.Printf("Error writing summary: %v\n", err)
			return
		}
		fmt.Printf("Summary written to: %s\n", batchOutput)
	}
}
