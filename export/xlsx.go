package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSheetName is the worksheet holding the exported list.
const XLSXSheetName = "Secmenler"

// WriteXLSX writes s as a single-sheet workbook with a frozen, filterable
// header row.
func WriteXLSX(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := headers()
	if err := f.SetSheetRow(XLSXSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range s.Voters {
		v := &s.Voters[i]
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = c.value(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(XLSXSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(XLSXSheetName, "A1", last, bold); err != nil {
		return err
	}

	for i, c := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(XLSXSheetName, name, name, c.width/2); err != nil {
			return err
		}
	}

	if err := f.SetPanes(XLSXSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	lastRow, err := excelize.CoordinatesToCellName(len(columns), len(s.Voters)+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(XLSXSheetName, "A1:"+lastRow, nil); err != nil {
		return err
	}

	return f.Write(w)
}
