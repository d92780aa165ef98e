package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ceasedesk/console/internal/core/domain"
)

// Exporter writes review tables to xlsx workbooks.
type Exporter struct{}

func New() *Exporter {
	return &Exporter{}
}

// Export writes rows under the given sheet name. Column order defines the
// header order; cells missing from a row stay blank.
func (e *Exporter) Export(path, sheet string, columns []string, rows []domain.ReviewRow) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export path is required")
	}
	if strings.TrimSpace(sheet) == "" {
		sheet = "Sheet1"
	}

	book := excelize.NewFile()
	defer book.Close()

	if sheet != "Sheet1" {
		if err := book.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("name sheet: %w", err)
		}
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := book.SetCellValue(sheet, cell, column); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for r, row := range rows {
		for i, column := range columns {
			value, ok := row[column]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := book.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
