// Package models defines the encoded-document data structures.
package models

// Anchors lists the structural anchor rows and columns of a sheet. Rows
// are 1-based indices; columns use letter notation.
type Anchors struct {
	Rows    []int    `json:"rows"`
	Columns []string `json:"columns"`
}

// SheetEncoding is the compressed encoding of a single sheet.
type SheetEncoding struct {
	StructuralAnchors Anchors             `json:"structural_anchors"`
	Cells             map[string][]string `json:"cells"`
	Formats           map[string][]string `json:"formats"`
	NumericRanges     map[string][]string `json:"numeric_ranges"`
}

// SheetMetrics holds token counts at the pipeline checkpoints and the
// derived compression ratios.
type SheetMetrics struct {
	OriginalTokens           int     `json:"original_tokens"`
	AfterAnchorTokens        int     `json:"after_anchor_tokens"`
	AfterInvertedIndexTokens int     `json:"after_inverted_index_tokens"`
	AfterFormatTokens        int     `json:"after_format_tokens"`
	FinalTokens              int     `json:"final_tokens"`
	AnchorRatio              float64 `json:"anchor_ratio"`
	InvertedIndexRatio       float64 `json:"inverted_index_ratio"`
	FormatRatio              float64 `json:"format_ratio"`
	OverallRatio             float64 `json:"overall_ratio"`
}

// CompressionMetrics aggregates per-sheet metrics. Overall token counts
// are sums across sheets; overall ratios are computed from those sums.
type CompressionMetrics struct {
	Sheets  map[string]SheetMetrics `json:"sheets"`
	Overall SheetMetrics            `json:"overall"`
}

// Document is the full encoding of one workbook.
type Document struct {
	FileName           string                   `json:"file_name"`
	Sheets             map[string]SheetEncoding `json:"sheets"`
	CompressionMetrics CompressionMetrics       `json:"compression_metrics"`
}
