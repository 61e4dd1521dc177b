package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/section"
	"github.com/xuri/excelize/v2"
)

// Batch sheet columns. The header row names the columns in any order;
// name, a, b, c, t, r and fy are required.
var batchColumns = []string{
	"name", "a", "b", "c", "t", "r", "fy",
	"coating", "e", "nu",
	"axial", "bending_strong", "bending_weak_lip", "bending_weak_web",
}

var requiredColumns = []string{"name", "a", "b", "c", "t", "r", "fy"}

// RowError reports a batch row that could not be read
type RowError struct {
	Row int // 1-based sheet row
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// ReadSectionsXLSX reads one section per row from the first sheet of a
// workbook. Empty rows are skipped and rows with unreadable numbers are
// reported in the row errors; the other rows are still returned.
func ReadSectionsXLSX(r io.Reader) ([]section.LippedChannel, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no section rows", sheet)
	}

	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, nil, fmt.Errorf("sheet %q: missing column %q", sheet, name)
		}
	}

	var sections []section.LippedChannel
	var rowErrors []RowError
	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		s, err := parseSectionRow(rows[i], index)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: i + 1, Err: err})
			continue
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("row %d", i+1)
		}
		sections = append(sections, s)
	}
	return sections, rowErrors, nil
}

func parseSectionRow(row []string, index map[string]int) (section.LippedChannel, error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	values := make(map[string]float64, len(batchColumns))
	for _, name := range batchColumns[1:] {
		text := cell(name)
		if text == "" {
			continue
		}
		v, err := toFloat(text)
		if err != nil {
			return section.LippedChannel{}, fmt.Errorf("column %s: %q is not a number", name, text)
		}
		values[name] = v
	}
	for _, name := range requiredColumns[1:] {
		if _, ok := values[name]; !ok {
			return section.LippedChannel{}, fmt.Errorf("column %s is empty", name)
		}
	}

	return section.LippedChannel{
		Name:    cell("name"),
		A:       values["a"],
		B:       values["b"],
		C:       values["c"],
		T:       values["t"],
		R:       values["r"],
		Fy:      values["fy"],
		Coating: values["coating"],
		E:       values["e"],
		Nu:      values["nu"],
		DesignStress: section.DesignStress{
			Axial:          values["axial"],
			BendingStrong:  values["bending_strong"],
			BendingWeakLip: values["bending_weak_lip"],
			BendingWeakWeb: values["bending_weak_web"],
		},
	}, nil
}

// WriteBatchTemplate writes an empty batch workbook with the header row
func WriteBatchTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Sections"); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	header := make([]interface{}, len(batchColumns))
	for i, c := range batchColumns {
		header[i] = c
	}
	if err := writeRows(f, "Sections", [][]interface{}{header}, bold); err != nil {
		return err
	}
	return f.Write(w)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	var v float64
	var rest string
	n, _ := fmt.Sscanf(s, "%f%s", &v, &rest)
	if n != 1 {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return v, nil
}
