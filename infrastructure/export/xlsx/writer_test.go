package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"snapfind-api/core/domain"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriter_TwoSheets(t *testing.T) {
	doc := domain.ExportDocument{Sheets: []domain.ExportSheet{
		{Name: "General results", Columns: []string{"Link"}, Rows: [][]string{{"https://a.test/1"}, {"https://www.ozon.ru/p/2"}}},
		{Name: "Marketplaces", Columns: []string{"Link"}, Rows: [][]string{{"https://www.ozon.ru/p/2"}}},
	}}

	data, err := NewWriter("").Write(doc)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{"General results", "Marketplaces"}, f.GetSheetList())

	rows, err := f.GetRows("General results")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Link"}, {"https://a.test/1"}, {"https://www.ozon.ru/p/2"}}, rows)

	rows, err = f.GetRows("Marketplaces")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Link"}, {"https://www.ozon.ru/p/2"}}, rows)

	ok, target, err := f.GetCellHyperLink("General results", "A2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://a.test/1", target)
}

func TestWriter_EmptySheetsKeepHeader(t *testing.T) {
	doc := domain.ExportDocument{Sheets: []domain.ExportSheet{
		{Name: "General results", Columns: []string{"Link"}},
		{Name: "Marketplaces", Columns: []string{"Link"}},
	}}

	data, err := NewWriter("").Write(doc)
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows("Marketplaces")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Link"}}, rows)
}

func TestWriter_TitleColumn(t *testing.T) {
	doc := domain.ExportDocument{Sheets: []domain.ExportSheet{
		{Name: "General results", Columns: []string{"Link", "Title"}, Rows: [][]string{{"https://a.test/", "A page"}, {"https://b.test/", ""}}},
	}}

	data, err := NewWriter("").Write(doc)
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows("General results")
	require.NoError(t, err)
	assert.Equal(t, []string{"Link", "Title"}, rows[0])
	assert.Equal(t, []string{"https://a.test/", "A page"}, rows[1])
}

func TestWriter_NoSheets(t *testing.T) {
	_, err := NewWriter("").Write(domain.ExportDocument{})

	assert.Error(t, err)
}

func TestWriter_Metadata(t *testing.T) {
	w := NewWriter("")

	assert.Equal(t, DefaultFileName, w.FileName())
	assert.Equal(t, ContentType, w.ContentType())
	assert.Equal(t, "custom.xlsx", NewWriter("custom.xlsx").FileName())
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "a_b_c", sheetName("a/b:c"))
	assert.Equal(t, "Sheet", sheetName(""))
	assert.Len(t, []rune(sheetName("a very long sheet name that exceeds the limit")), maxSheetName)
}
