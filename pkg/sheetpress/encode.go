package sheetpress

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/encoder"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// Encode compresses an xlsx workbook into its encoded document. A load
// failure yields an error and no document; recovered per-cell faults are
// returned as diagnostics next to the document.
func Encode(path string, opts Options) (*models.Document, []encoder.Diagnostic, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, NewEncodeError(path, "load", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	g, err := grid.OpenExcel(path)
	if err != nil {
		return nil, nil, NewEncodeError(path, "load", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer g.Close()

	return EncodeGrid(g, filepath.Base(path), opts)
}

// EncodeGrid compresses any Grid implementation into its encoded
// document.
func EncodeGrid(g grid.Grid, fileName string, opts Options) (*models.Document, []encoder.Diagnostic, error) {
	cfg := opts.EffectiveConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, NewEncodeError(fileName, "config", err)
	}

	doc, diags, err := encoder.EncodeWorkbook(g, fileName, cfg)
	if err != nil {
		return nil, diags, NewEncodeError(fileName, "encode", err)
	}
	return doc, diags, nil
}
