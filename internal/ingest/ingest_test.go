package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rune
	}{
		{"comma", "a,b,c", ','},
		{"semicolon", "a;b;c", ';'},
		{"tab", "a\tb\tc", '\t'},
		{"pipe", "a|b|c", '|'},
		{"colon", "a:b:c", ':'},
		{"majority wins", "a,b;c,d,e", ','},
		{"no delimiter falls back to comma", "abc", ','},
		{"tie keeps candidate order", "a,b;c", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffDelimiter(tt.line))
		})
	}
}

func TestReadDelimitedInfersTypes(t *testing.T) {
	path := writeFile(t, "people.csv",
		"name,age,score,joined,active\n"+
			"alice,30,1.5,2024-01-02,true\n"+
			"bob,NA,2.5,2024-02-03,false\n"+
			"carol,41,,2024-03-04,yes\n")

	tab, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, 3, tab.NumRows())
	require.Equal(t, 5, tab.NumCols())

	byName := func(n string) *dataset.Column {
		c, ok := tab.Column(n)
		require.True(t, ok, n)
		return c
	}
	assert.Equal(t, dataset.TypeString, byName("name").Type)
	assert.Equal(t, dataset.TypeNumeric, byName("age").Type)
	assert.Equal(t, dataset.TypeNumeric, byName("score").Type)
	assert.Equal(t, dataset.TypeDatetime, byName("joined").Type)
	assert.Equal(t, dataset.TypeBool, byName("active").Type)

	assert.Equal(t, 1, byName("age").MissingCount())
	assert.Equal(t, 1, byName("score").MissingCount())
}

func TestReadSemicolonDelimited(t *testing.T) {
	path := writeFile(t, "data.csv", "a;b\n1;2\n3;4\n")
	tab, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tab.ColumnNames())
	assert.Equal(t, 2, tab.NumRows())
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, dataset.ErrFileNotFound)
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "data.parquet", "binary")
	_, err := Read(path)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)
}

func TestUniqueNames(t *testing.T) {
	got := uniqueNames([]string{"a", "a", " a ", "b"})
	assert.Equal(t, []string{"a", "a_1", "a_2", "b"}, got)
}

func TestShortRowsPadWithMissing(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")
	tab, err := Read(path)
	require.NoError(t, err)
	b, ok := tab.Column("b")
	require.True(t, ok)
	assert.Equal(t, 1, b.MissingCount())
}

func TestReadSpreadsheetFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"x", "label"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "one"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{2, "two"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tab, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.NumRows())
	x, ok := tab.Column("x")
	require.True(t, ok)
	assert.Equal(t, dataset.TypeNumeric, x.Type)
}

func TestParseCellUnparseableBecomesMissing(t *testing.T) {
	v := ParseCell("not-a-number", dataset.TypeNumeric)
	assert.True(t, v.IsMissing())
}
