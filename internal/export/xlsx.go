// Package export renders resolved invoice lines as an XLSX workbook for
// downstream review. It works purely on in-memory lines; where the rows come
// from and where the bytes go is the caller's concern.
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/shelfscan/shelfscan/internal/entity"
)

const sheet = "Lines"

// LinesXLSX returns an XLSX workbook (as bytes) with one row per resolved
// line.
func LinesXLSX(lines []entity.ResolvedLine, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Barcode", "Name", "Quantity", "Unit", "Unit Price", "Product ID", "Match Score"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for r, line := range lines {
		values := []any{
			line.Barcode,
			line.NameRaw,
			line.Quantity,
			string(line.Unit),
			line.UnitPrice,
			line.Match.ProductID,
			line.Match.Score,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	logger.Debug("xlsx export complete", "rows", len(lines), "bytes", buf.Len())
	return buf.Bytes(), nil
}
