package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// applyStyling is the cosmetic pass: column widths, bold header and TOTAL
// rows, borders around the data block. Callers treat any error here as a
// warning; the data must stay correct without it.
func applyStyling(f *excelize.File, sheet string, dataRows int) error {
	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "C", 16); err != nil {
		return err
	}

	borders := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: borders,
	})
	if err != nil {
		return err
	}
	plain, err := f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", "C1", bold); err != nil {
		return err
	}
	if dataRows > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("C%d", dataRows+1), plain); err != nil {
			return err
		}
	}
	totalRow := dataRows + 2
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("C%d", totalRow), bold)
}
