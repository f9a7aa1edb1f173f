// ABOUTME: Excel spreadsheet writer for session exports using excelize
// ABOUTME: Writes one worksheet per export sheet with a bold header row and link cells

package xlsx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"snapfind-api/core/domain"
)

const (
	// ContentType is the MIME type of .xlsx files
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// DefaultFileName is the attachment name offered to clients
	DefaultFileName = "results.xlsx"

	maxSheetName = 31
	linkWidth    = 80
	titleWidth   = 60
)

// Writer implements interfaces.SpreadsheetWriter
type Writer struct {
	fileName string
}

// NewWriter creates a writer; an empty name uses DefaultFileName
func NewWriter(fileName string) *Writer {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Writer{fileName: fileName}
}

// ContentType returns the xlsx MIME type
func (w *Writer) ContentType() string {
	return ContentType
}

// FileName returns the attachment name
func (w *Writer) FileName() string {
	return w.fileName
}

// Write renders the document into xlsx bytes
func (w *Writer) Write(doc domain.ExportDocument) ([]byte, error) {
	if len(doc.Sheets) == 0 {
		return nil, errors.New("export document has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	// A new file starts with "Sheet1"; rename it to the first sheet
	first := sheetName(doc.Sheets[0].Name)
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		return nil, err
	}
	for i, sheet := range doc.Sheets {
		name := sheetName(sheet.Name)
		if i > 0 {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", name, err)
			}
		}
		if err := writeSheet(f, name, sheet, header); err != nil {
			return nil, fmt.Errorf("write sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, sheet domain.ExportSheet, headerStyle int) error {
	for col, title := range sheet.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, title); err != nil {
			return err
		}
		width := titleWidth
		if col == 0 {
			width = linkWidth
		}
		colName, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(name, colName, colName, float64(width)); err != nil {
			return err
		}
	}
	if len(sheet.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(sheet.Columns), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(name, cell, value); err != nil {
				return err
			}
			// The first column holds the result URL
			if c == 0 && isLink(value) {
				if err := f.SetCellHyperLink(name, cell, value, "External"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func isLink(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// sheetName trims names to Excel's limit and replaces forbidden characters
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "Sheet"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}
