// ABOUTME: Export document model handed to spreadsheet writers
// ABOUTME: One named sheet per result bucket

package domain

// ExportSheet is one named table of the export.
type ExportSheet struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ExportDocument is the tabular form of a session's result buckets.
type ExportDocument struct {
	Sheets []ExportSheet
}
