package sheetpress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/encoder"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/output"
)

func writeWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestEncodeFileNotFound(t *testing.T) {
	_, _, err := Encode(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "load", ee.Stage)
}

func TestEncodeInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0644))

	doc, _, err := Encode(path, DefaultOptions())
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEncodeWorkbookEndToEnd(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		require.NoError(t, err)
		f.SetCellValue("Sheet1", "A1", "Name")
		f.SetCellValue("Sheet1", "B1", "Amount")
		require.NoError(t, f.SetCellStyle("Sheet1", "A1", "B1", bold))
		f.SetCellValue("Sheet1", "A2", "widget")
		f.SetCellValue("Sheet1", "B2", 10)
		f.SetCellValue("Sheet1", "A3", "gadget")
		f.SetCellValue("Sheet1", "B3", 20)
	})

	k := 1
	doc, diags, err := Encode(path, Options{K: &k})
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Contains(t, doc.Sheets, "Sheet1")

	enc := doc.Sheets["Sheet1"]
	assert.Equal(t, []string{"A2"}, enc.Cells["widget"])
	assert.Equal(t, []string{"B2"}, enc.Cells["10"])
	assert.NotEmpty(t, enc.NumericRanges)
	assert.Equal(t, "book.xlsx", doc.FileName)

	m := doc.CompressionMetrics.Sheets["Sheet1"]
	assert.Greater(t, m.OriginalTokens, 0)
	assert.Greater(t, m.FinalTokens, 0)
}

func TestEncodeGridRejectsNegativeK(t *testing.T) {
	m := grid.NewMemory()
	m.SetValue("S", 1, 1, "x")

	k := -1
	_, _, err := EncodeGrid(m, "book.xlsx", Options{K: &k})
	require.Error(t, err)

	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "config", ee.Stage)
}

func TestEncodeGridDeterministic(t *testing.T) {
	build := func() *grid.Memory {
		m := grid.NewMemory()
		m.SetValue("S", 1, 1, "Header")
		m.SetValue("S", 2, 1, "42")
		m.SetValue("S", 2, 2, "Data")
		return m
	}

	doc1, _, err := EncodeGrid(build(), "book.xlsx", DefaultOptions())
	require.NoError(t, err)
	doc2, _, err := EncodeGrid(build(), "book.xlsx", DefaultOptions())
	require.NoError(t, err)

	b1, err := output.Marshal(doc1)
	require.NoError(t, err)
	b2, err := output.Marshal(doc2)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))
}

func TestEffectiveConfig(t *testing.T) {
	assert.Equal(t, encoder.DefaultConfig(), DefaultOptions().EffectiveConfig())

	k := 5
	cfg := Options{K: &k}.EffectiveConfig()
	assert.Equal(t, 5, cfg.K)

	custom := encoder.DefaultConfig()
	custom.MaxRegionSpan = 8
	cfg = Options{Config: &custom}.EffectiveConfig()
	assert.Equal(t, 8, cfg.MaxRegionSpan)
	assert.Equal(t, 2, cfg.K)

	cfg = Options{Config: &custom, K: &k}.EffectiveConfig()
	assert.Equal(t, 5, cfg.K)
	assert.Equal(t, 8, cfg.MaxRegionSpan)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: 3\nmax_region_span: 10\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.K)
	assert.Equal(t, 10, cfg.MaxRegionSpan)
	// Unset fields keep their defaults.
	assert.Equal(t, encoder.DefaultConfig().MinDensity, cfg.MinDensity)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: -2\n"), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
