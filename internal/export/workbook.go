package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the workbook
const (
	SheetReactions = "Reactions"
	SheetDiagram   = "Diagram"
	SheetTerms     = "Terms"
)

// WriteWorkbook writes reactions, diagram samples and the Macaulay terms
// as an xlsx workbook
func WriteWorkbook(r Report, w io.Writer) error {
	f, err := workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveWorkbook writes the workbook to path, creating its directory
func SaveWorkbook(r Report, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func workbook(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			f.Close()
		}
	}()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err = f.SetSheetName("Sheet1", SheetReactions); err != nil {
		return nil, err
	}
	rows := [][]interface{}{{"Title", r.Title}, {"Combination", r.Combination}, {"Length (m)", r.Length}, {}}
	rows = append(rows, []interface{}{"Label", "Support", "x (m)", "Rx (kN)", "Ry (kN)", "M (kNm)"})
	for _, rc := range r.Reactions {
		rows = append(rows, []interface{}{rc.Label, rc.Support, rc.X, rc.Rx, rc.Ry, rc.M})
	}
	rows = append(rows, []interface{}{})
	rows = append(rows, []interface{}{"Equations"})
	for _, eq := range r.Equations {
		rows = append(rows, []interface{}{eq})
	}
	if err = writeRows(f, SheetReactions, rows, header, 5); err != nil {
		return nil, err
	}

	if _, err = f.NewSheet(SheetDiagram); err != nil {
		return nil, err
	}
	rows = [][]interface{}{{"x (m)", "V (kN)", "M (kNm)"}}
	for _, s := range r.Samples {
		rows = append(rows, []interface{}{s.X, s.Shear, s.Moment})
	}
	if err = writeRows(f, SheetDiagram, rows, header, 1); err != nil {
		return nil, err
	}

	if _, err = f.NewSheet(SheetTerms); err != nil {
		return nil, err
	}
	rows = [][]interface{}{{"Diagram", "Coefficient", "Origin (m)", "Exponent"}}
	for _, t := range r.ShearTerms {
		rows = append(rows, []interface{}{"V", t.Coef, t.Origin, t.Exp})
	}
	for _, t := range r.MomentTerms {
		rows = append(rows, []interface{}{"M", t.Coef, t.Origin, t.Exp})
	}
	rows = append(rows, []interface{}{}, []interface{}{"V(x)", r.ShearExpr}, []interface{}{"M(x)", r.MomentExpr})
	if err = writeRows(f, SheetTerms, rows, header, 1); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	ok = true
	return f, nil
}

// writeRows writes rows from A1 down, styling the headerRow'th row
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, header, headerRow int) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}

	first, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(rows[headerRow-1]), headerRow)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(sheet, first, last, header); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "F", 14)
}
