package report

import (
	"fmt"
	"io"

	"github.com/diewo77/go-assets/i18n"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet download metadata.
const (
	XLSXFilename    = "reporte_mantenimiento.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var xlsxColumns = []string{"col.id", "col.name", "col.category", "col.serial", "col.location", "col.status", "col.notes", "col.client"}

var xlsxWidths = []struct {
	from, to string
	width    float64
}{
	{"B", "B", 30},
	{"C", "F", 18},
	{"G", "G", 40},
	{"H", "H", 25},
}

// WriteXLSX writes the selection as a single-sheet workbook. The title and
// subtitle occupy the first two rows, the header row is bold and the status
// column follows the same red/green rule as the PDF.
func WriteXLSX(w io.Writer, sel Selection) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := i18n.T(sel.Lang, "sheet.name")
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	redStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "FF0000"}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	greenStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "008000"}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", sel.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", sel.Subtitle); err != nil {
		return err
	}

	headers := make([]any, len(xlsxColumns))
	for i, code := range xlsxColumns {
		headers[i] = i18n.T(sel.Lang, code)
	}
	if err := f.SetSheetRow(sheet, "A4", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A4", "H4", bold); err != nil {
		return err
	}

	noClient := i18n.T(sel.Lang, "no_client")
	for i := range sel.Records {
		rec := &sel.Records[i]
		rowNum := i + 5
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := []any{rec.ID, rec.Name, rec.Category, rec.SerialOrEmpty(), rec.Location, rec.Status, rec.NotesOrEmpty(), rec.OwnerName(noClient)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		statusCell, err := excelize.CoordinatesToCellName(6, rowNum)
		if err != nil {
			return err
		}
		style := greenStyle
		if StatusColor(rec.Status) == Red {
			style = redStyle
		}
		if err := f.SetCellStyle(sheet, statusCell, statusCell, style); err != nil {
			return err
		}
	}
	for _, cw := range xlsxWidths {
		if err := f.SetColWidth(sheet, cw.from, cw.to, cw.width); err != nil {
			return fmt.Errorf("xlsx column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
