package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	return New(quietLogger())
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	age, err := dataset.NewColumn("age", dataset.TypeNumeric,
		[]dataset.Value{dataset.Num(30), dataset.Num(40), dataset.Missing(), dataset.Num(30)})
	require.NoError(t, err)
	city, err := dataset.NewColumn("city", dataset.TypeString,
		[]dataset.Value{dataset.Str("oslo"), dataset.Str("bergen"), dataset.Str("oslo"), dataset.Str("oslo")})
	require.NoError(t, err)
	tab, err := dataset.New(age, city)
	require.NoError(t, err)
	return tab
}

func TestLoadMissingFileLeavesStoreEmpty(t *testing.T) {
	s := setupStore(t)
	err := s.Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, dataset.ErrFileNotFound)
	assert.False(t, s.HasData())
	assert.Empty(t, s.ProcessingLog())
}

func TestLoadUnsupportedExtension(t *testing.T) {
	s := setupStore(t)
	path := filepath.Join(t.TempDir(), "data.db")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	err := s.Load(path)
	require.ErrorIs(t, err, dataset.ErrUnsupportedFormat)
	assert.False(t, s.HasData())
}

func TestLoadSetsDataOriginalAndMetadata(t *testing.T) {
	s := setupStore(t)
	path := writeCSV(t, "a,b\n1,x\n2,y\n2,y\n")
	require.NoError(t, s.Load(path))

	assert.True(t, s.HasData())
	meta := s.Metadata()
	assert.Equal(t, 3, meta.Rows)
	assert.Equal(t, 2, meta.Columns)
	assert.Equal(t, 1, meta.Duplicates)
	require.Len(t, s.ProcessingLog(), 1)
	assert.Contains(t, s.ProcessingLog()[0], path)
}

func TestSwapKeepsMetadataFresh(t *testing.T) {
	s := setupStore(t)
	s.LoadTable(sampleTable(t), "loaded sample")

	snap, err := s.Snapshot()
	require.NoError(t, err)
	smaller := snap.FilterRows([]bool{true, false, true, false})
	s.Swap(smaller, "dropped two rows")

	meta := s.Metadata()
	assert.Equal(t, 2, meta.Rows)
	assert.Equal(t, smaller.NumRows(), meta.Rows)
	assert.Equal(t, smaller.NumCols(), meta.Columns)
	assert.Equal(t, []string{"loaded sample", "dropped two rows"}, s.ProcessingLog())
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := setupStore(t)
	s.LoadTable(sampleTable(t), "loaded sample")

	snap, err := s.Snapshot()
	require.NoError(t, err)
	snap.Columns()[0].Values[0] = dataset.Num(999)

	again, err := s.Snapshot()
	require.NoError(t, err)
	v, _ := again.Columns()[0].Values[0].Float()
	assert.Equal(t, 30.0, v)
}

func TestResetRoundTrip(t *testing.T) {
	s := setupStore(t)
	orig := sampleTable(t)
	s.LoadTable(orig, "loaded sample")

	snap, _ := s.Snapshot()
	s.Swap(snap.FilterRows([]bool{true, false, false, false}), "kept one row")
	require.Equal(t, 1, s.Metadata().Rows)

	s.Reset()
	restored, err := s.Snapshot()
	require.NoError(t, err)
	assert.True(t, restored.Equal(orig))
	assert.Equal(t, 4, s.Metadata().Rows)
}

func TestResetWithoutLoadIsNoop(t *testing.T) {
	s := setupStore(t)
	s.Reset()
	assert.False(t, s.HasData())
	assert.Empty(t, s.ProcessingLog())
}

func TestSummaryAndColumnInfo(t *testing.T) {
	s := setupStore(t)
	s.LoadTable(sampleTable(t), "loaded sample")

	sum := s.Summary()
	assert.Equal(t, 4, sum.Rows)
	assert.Equal(t, 2, sum.Columns)
	assert.Equal(t, 1, sum.NumericColumns)
	assert.Equal(t, 1, sum.CategoricalColumns)
	assert.Equal(t, 1, sum.TotalMissing)
	assert.Equal(t, 1, sum.Duplicates)

	info := s.ColumnInfo()
	require.Contains(t, info, "age")
	require.Contains(t, info, "city")

	age := info["age"]
	assert.True(t, age.IsNumeric)
	require.NotNil(t, age.Numeric)
	assert.InDelta(t, 33.333333, age.Numeric.Mean, 1e-4)
	assert.InDelta(t, 25.0, age.MissingPercent, 1e-9)
	assert.Nil(t, age.TopValues)

	city := info["city"]
	assert.False(t, city.IsNumeric)
	assert.Nil(t, city.Numeric)
	assert.Equal(t, "oslo", city.MostFrequent)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.00 B", FormatBytes(512))
	assert.Equal(t, "2.00 KB", FormatBytes(2048))
	assert.Equal(t, "1.00 MB", FormatBytes(1024*1024))
}
