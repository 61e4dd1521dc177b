package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook reports
const (
	SheetInput     = "Input"
	SheetGross     = "Gross"
	SheetElements  = "Elements"
	SheetEffective = "Effective"
	SheetSummary   = "Summary"
)

// WriteXLSX writes the full results of one section as a workbook with one
// sheet for the input, the gross properties, the element chain and the
// effective properties
func WriteXLSX(w io.Writer, item Item) error {
	if item.Err != nil {
		return item.Err
	}
	if item.Analysis == nil {
		return fmt.Errorf("report: section %q has not been evaluated", item.Name)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetInput); err != nil {
		return err
	}
	for _, name := range []string{SheetGross, SheetElements, SheetEffective} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	s := item.Analysis.Section()
	input := [][]interface{}{
		{"Parameter", "Value", "Unit"},
		{"Name", item.Name, ""},
		{"A", s.A, "mm"},
		{"B", s.B, "mm"},
		{"C", s.C, "mm"},
		{"t", s.T, "mm"},
		{"R", s.R, "mm"},
		{"Coating", s.Coating, "mm"},
		{"fy", s.Fy, "MPa"},
		{"E", s.E, "MPa"},
		{"nu", s.Nu, ""},
	}
	if err := writeRows(f, SheetInput, input, bold); err != nil {
		return err
	}

	g := item.Analysis.Gross()
	gross := [][]interface{}{
		{"Property", "Value", "Unit"},
		{"Area", g.Area, "mm2"},
		{"Area (rounded corners)", g.AreaReduced, "mm2"},
		{"zgx", g.Zgx, "mm"},
		{"zgy", g.Zgy, "mm"},
		{"Ix", g.Ix, "mm4"},
		{"Ix (rounded corners)", g.IxReduced, "mm4"},
		{"Iy", g.Iy, "mm4"},
		{"Iy (rounded corners)", g.IyReduced, "mm4"},
		{"Wx", g.Wx, "mm3"},
		{"Wy", g.Wy, "mm3"},
		{"I1", g.I1, "mm4"},
		{"I2", g.I2, "mm4"},
		{"alpha", g.Alpha, "rad"},
		{"xsc", g.Xsc, "mm"},
		{"ysc", g.Ysc, "mm"},
		{"xo", g.Xo, "mm"},
		{"It", g.It, "mm4"},
		{"Cw", g.Cw, "mm6"},
		{"delta", g.Delta, ""},
	}
	if err := writeRows(f, SheetGross, gross, bold); err != nil {
		return err
	}

	chain := [][]interface{}{
		{"Load case", "Element", "b (mm)", "psi", "k", "lambda", "rho", "beff (mm)", "t (mm)"},
	}
	core := item.Analysis.Centerline().Core
	for _, r := range item.Results {
		for _, row := range elementRows(r, core) {
			line := []interface{}{r.Mode.String()}
			for _, cell := range row {
				line = append(line, cell)
			}
			chain = append(chain, line)
		}
	}
	if err := writeRows(f, SheetElements, chain, bold); err != nil {
		return err
	}

	effectiveRows := [][]interface{}{
		{"Load case", "Design stress (MPa)", "Aeff (mm2)", "x (mm)", "y (mm)", "Ix,eff (mm4)", "Iy,eff (mm4)", "Wx,eff (mm3)", "Wy,eff (mm3)", "Shift x (mm)", "Shift y (mm)", "Warnings"},
	}
	for _, r := range item.Results {
		p := r.Properties
		effectiveRows = append(effectiveRows, []interface{}{
			r.Mode.String(), r.DesignStress, p.Area, p.CentroidX, p.CentroidY,
			p.Ix, p.Iy, r.Wx, r.Wy, r.ShiftX, r.ShiftY, len(r.Warnings),
		})
	}
	if err := writeRows(f, SheetEffective, effectiveRows, bold); err != nil {
		return err
	}

	return f.Write(w)
}

// WriteBatchXLSX writes one summary row per section. Failed sections keep
// their row with the error message.
func WriteBatchXLSX(w io.Writer, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := []interface{}{"Name", "A", "B", "C", "t", "Ag (mm2)"}
	for _, m := range effective.Modes {
		header = append(header, fmt.Sprintf("Aeff %s", m), fmt.Sprintf("Weff %s", m))
	}
	header = append(header, "Error")
	rows := [][]interface{}{header}

	for _, item := range items {
		if item.Analysis == nil {
			row := []interface{}{item.Name, "", "", "", "", ""}
			for range effective.Modes {
				row = append(row, "", "")
			}
			rows = append(rows, append(row, item.Err.Error()))
			continue
		}

		s := item.Analysis.Section()
		row := []interface{}{item.Name, s.A, s.B, s.C, s.T, item.Analysis.Gross().AreaReduced}
		for _, r := range item.Results {
			modulus := r.Wx
			if r.Mode == effective.BendingWeakLip || r.Mode == effective.BendingWeakWeb {
				modulus = r.Wy
			}
			row = append(row, r.Area(), modulus)
		}
		for i := len(item.Results); i < len(effective.Modes); i++ {
			row = append(row, "", "")
		}
		msg := ""
		if item.Err != nil {
			msg = item.Err.Error()
		}
		rows = append(rows, append(row, msg))
	}

	if err := writeRows(f, SheetSummary, rows, bold); err != nil {
		return err
	}
	return f.Write(w)
}

// writeRows writes rows from A1 downwards and styles the first as a header
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, header int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
