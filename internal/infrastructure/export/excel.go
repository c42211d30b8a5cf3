// Package export serializes the record store into spreadsheet files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"corpsbank/internal/domain/submission"
)

var columns = []string{
	"ID",
	"State Code",
	"Corps Member Name",
	"Sex",
	"Bank Name",
	"Account Number",
	"Phone Number",
	"Callup Number",
	"Name on Call-up Letter",
	"Account Name",
	"Submitted At",
}

// ExcelExporter writes all records into a dated xlsx file.
type ExcelExporter struct {
	dir string
}

func NewExcelExporter(dir string) *ExcelExporter {
	return &ExcelExporter{dir: dir}
}

// Export writes the records to corpsbank_export_<date>.xlsx in the export
// directory and returns the file path.
func (e *ExcelExporter) Export(records []*submission.Submission) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, record := range records {
		values := []interface{}{
			record.ID,
			record.StateCode,
			record.CorpsMemberName,
			record.Sex,
			record.BankName,
			record.AccountNumber,
			record.PhoneNumber,
			record.CallupNumber,
			record.CallupLetterName,
			record.AccountName,
			record.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	filename := fmt.Sprintf("corpsbank_export_%s.xlsx", time.Now().Format("2006-01-02"))
	path := filepath.Join(e.dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export file: %w", err)
	}

	return path, nil
}
