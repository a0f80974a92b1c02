package encoder

import (
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/output"
)

// TokenCount measures a structure's size: the byte length of its UTF-8
// JSON serialization with non-ASCII unescaped.
func TokenCount(v any) int {
	b, err := output.Marshal(v)
	if err != nil {
		return 0
	}
	return len(b)
}

// Ratio returns the compression ratio between an original and a
// compressed token count.
func Ratio(original, compressed int) float64 {
	if compressed == 0 {
		return 0
	}
	if original == 0 {
		return 1
	}
	return float64(original) / float64(compressed)
}

// Checkpoints holds the token counts measured after each pipeline stage.
type Checkpoints struct {
	Original           int
	AfterAnchor        int
	AfterInvertedIndex int
	AfterFormat        int
	Final              int
}

// Add accumulates another sheet's checkpoints.
func (c *Checkpoints) Add(o Checkpoints) {
	c.Original += o.Original
	c.AfterAnchor += o.AfterAnchor
	c.AfterInvertedIndex += o.AfterInvertedIndex
	c.AfterFormat += o.AfterFormat
	c.Final += o.Final
}

// Metrics derives the reported token counts and ratios.
func (c Checkpoints) Metrics() models.SheetMetrics {
	return models.SheetMetrics{
		OriginalTokens:           c.Original,
		AfterAnchorTokens:        c.AfterAnchor,
		AfterInvertedIndexTokens: c.AfterInvertedIndex,
		AfterFormatTokens:        c.AfterFormat,
		FinalTokens:              c.Final,
		AnchorRatio:              Ratio(c.Original, c.AfterAnchor),
		InvertedIndexRatio:       Ratio(c.Original, c.AfterInvertedIndex),
		FormatRatio:              Ratio(c.Original, c.AfterFormat),
		OverallRatio:             Ratio(c.Original, c.Final),
	}
}

// originalCells captures the full populated grid as an address -> value
// map, the baseline for every compression ratio.
func originalCells(s *grid.Sheet) map[string]string {
	cells := map[string]string{}
	for r := 1; r <= s.MaxRow; r++ {
		for c := 1; c <= s.MaxCol; c++ {
			rec := s.Cell(r, c)
			if !rec.Empty && rec.Value != "" {
				cells[grid.Address{Row: r, Col: c}.String()] = rec.Value
			}
		}
	}
	return cells
}

// windowCells captures the retained window's populated cells.
func windowCells(s *grid.Sheet, rows, cols []int) map[string]string {
	cells := map[string]string{}
	for _, r := range rows {
		for _, c := range cols {
			rec := s.Cell(r, c)
			if !rec.Empty && rec.Value != "" {
				cells[grid.Address{Row: r, Col: c}.String()] = rec.Value
			}
		}
	}
	return cells
}
