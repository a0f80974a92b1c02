package encoder

import (
	"fmt"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// EncodeSheet runs the compression pipeline over one sheet snapshot and
// returns its encoding plus the token counts at each checkpoint.
func EncodeSheet(s *grid.Sheet, cfg Config, diags *Diagnostics) (models.SheetEncoding, Checkpoints) {
	var cp Checkpoints
	cp.Original = TokenCount(originalCells(s))

	rowAnchors, colAnchors := DetectAnchors(s, cfg)

	keptRows := ExpandNeighborhood(rowAnchors, cfg.K, s.MaxRow)
	keptCols := ExpandNeighborhood(colAnchors, cfg.K, s.MaxCol)
	keptRows, keptCols = CompressHomogeneous(s, keptRows, keptCols)
	cp.AfterAnchor = TokenCount(windowCells(s, keptRows, keptCols))

	index, formats := BuildIndex(s, keptRows, keptCols, diags)
	cells := MergeIndex(index)
	cp.AfterInvertedIndex = TokenCount(cells)

	buckets := SemanticBuckets(s, formats)
	formatRegions := wireRegions(AggregateRegions(s, buckets, cfg.MaxRegionSpan))
	cp.AfterFormat = TokenCount(formatRegions)

	numericRegions := wireRegions(NumericRanges(s, buckets, cfg.MaxRegionSpan))

	enc := models.SheetEncoding{
		StructuralAnchors: models.Anchors{
			Rows:    anchorRows(rowAnchors),
			Columns: anchorColumns(colAnchors),
		},
		Cells:         cells,
		Formats:       formatRegions,
		NumericRanges: numericRegions,
	}
	cp.Final = TokenCount(enc)
	return enc, cp
}

// EncodeWorkbook runs the per-sheet pipeline over every sheet of a grid
// and assembles the document. Empty sheets are skipped; a sheet load
// failure aborts the whole encode with no partial document.
func EncodeWorkbook(g grid.Grid, fileName string, cfg Config) (*models.Document, []Diagnostic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	diags := &Diagnostics{}
	doc := &models.Document{
		FileName: fileName,
		Sheets:   map[string]models.SheetEncoding{},
		CompressionMetrics: models.CompressionMetrics{
			Sheets: map[string]models.SheetMetrics{},
		},
	}

	var overall Checkpoints
	for _, name := range g.SheetNames() {
		s, err := grid.Snapshot(g, name)
		if err != nil {
			return nil, diags.Entries(), fmt.Errorf("load sheet %q: %w", name, err)
		}
		if s.Empty() {
			continue
		}

		enc, cp := EncodeSheet(s, cfg, diags)
		doc.Sheets[name] = enc
		doc.CompressionMetrics.Sheets[name] = cp.Metrics()
		overall.Add(cp)
	}
	doc.CompressionMetrics.Overall = overall.Metrics()
	return doc, diags.Entries(), nil
}

func wireRegions(regions map[SemanticKey][]string) map[string][]string {
	wire := make(map[string][]string, len(regions))
	for key, ranges := range regions {
		wire[key.Wire()] = ranges
	}
	return wire
}

func anchorRows(rows []int) []int {
	if rows == nil {
		return []int{}
	}
	return rows
}

func anchorColumns(cols []int) []string {
	letters := make([]string, 0, len(cols))
	for _, c := range cols {
		letters = append(letters, grid.ColumnLetters(c))
	}
	return letters
}
