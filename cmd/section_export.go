package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/diagram"
	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/report"
	"github.com/spf13/cobra"
)

var (
	exportInput    sectionInput
	exportOutput   string
	exportProject  string
	exportAuthor   string
	exportDiagrams bool
)

var sectionExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a PDF or XLSX calculation report",
	Long: `Evaluate every load case of a section and write the results as a
calculation report. The format follows the extension of --output:

  .pdf   - input, gross section and one page per load case
  .xlsx  - workbook with Input, Gross, Elements and Effective sheets

Examples:
  gocfs section export -f c90.json -o c90.pdf --project "Warehouse purlins"
  gocfs section export -A 90 -B 45 -C 10 -t 1.2 -r 1.6 -o c90.xlsx`,
	Run: runSectionExport,
}

func init() {
	sectionCmd.AddCommand(sectionExportCmd)
	addSectionFlags(sectionExportCmd, &exportInput)

	sectionExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Report file (.pdf or .xlsx) [required]")
	sectionExportCmd.Flags().StringVar(&exportProject, "project", "", "Project name printed on the PDF report")
	sectionExportCmd.Flags().StringVar(&exportAuthor, "author", "", "Author printed on the PDF report")
	sectionExportCmd.Flags().BoolVar(&exportDiagrams, "diagrams", true, "Include mesh diagrams in the PDF report")
	sectionExportCmd.MarkFlagRequired("output")
}

func runSectionExport(cmd *cobra.Command, args []string) {
	ext := strings.ToLower(filepath.Ext(exportOutput))
	if ext != ".pdf" && ext != ".xlsx" {
		fmt.Printf("Error: unsupported report format %q (use .pdf or .xlsx)\n", ext)
		return
	}

	sec, err := exportInput.load(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	item := report.Evaluate(sec)
	if item.Err != nil {
		fmt.Printf("Error: %v\n", item.Err)
		return
	}

	if err := writeReport(exportOutput, item); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s\n", exportOutput)
}

func writeReport(filename string, item report.Item) error {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return createWith(filename, func(w io.Writer) error {
			return report.WriteXLSX(w, item)
		})
	}

	opts := report.PDFOptions{Project: exportProject, Author: exportAuthor}
	if exportDiagrams {
		dir, err := os.MkdirTemp("", "gocfs-diagrams")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		opts.Diagrams = make(map[effective.Mode]string)
		for _, r := range item.Results {
			data := diagram.NewMeshDiagramData(item.Analysis, r)
			out, err := diagram.ExportMeshDiagram(data, filepath.Join(dir, r.Mode.String()+".png"))
			if err != nil {
				return fmt.Errorf("diagram %s: %w", r.Mode, err)
			}
			opts.Diagrams[r.Mode] = out
		}
	}
	return createWith(filename, func(w io.Writer) error {
		return report.WritePDF(w, item, opts)
	})
}

// createWith creates filename, with its directory, and fills it with write
func createWith(filename string, write func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
