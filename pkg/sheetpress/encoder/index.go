package encoder

import (
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/output"
)

// FormatKey groups retained cells by their full display format. It is a
// comparable value type used directly as a map key; it only becomes a
// JSON string at the document-assembly boundary.
type FormatKey struct {
	Style        grid.Style
	NumberFormat string
	InferredType string
	Category     string
	Merged       bool
	MergedRange  string

	// ErrMsg marks a degraded key substituted after a per-cell
	// extraction fault.
	ErrMsg string
}

// SemanticKey is the coarser grouping key driving format and numeric
// region aggregation: semantic type plus raw number format code.
type SemanticKey struct {
	Type         string
	NumberFormat string
}

// Wire returns the key's serialized JSON form, with object keys in
// sorted order.
func (k SemanticKey) Wire() string {
	return `{"nfs":` + output.JSONString(k.NumberFormat) + `,"type":` + output.JSONString(k.Type) + `}`
}

// BuildIndex walks the retained window and builds the inverted value
// index (stringified value -> addresses, merge-resolved) together with
// the full per-cell format map. Per-cell faults degrade to an
// error-tagged format key and a diagnostic; they never abort the sheet.
func BuildIndex(s *grid.Sheet, rows, cols []int, diags *Diagnostics) (map[string][]grid.Address, map[FormatKey][]grid.Address) {
	index := map[string][]grid.Address{}
	formats := map[FormatKey][]grid.Address{}

	for _, r := range rows {
		for _, c := range cols {
			addr := grid.Address{Row: r, Col: c}
			rec := s.Cell(r, c)

			if rec.Err != nil {
				diags.Record(s.Name, addr.String(), "cell", rec.Err)
				key := FormatKey{ErrMsg: rec.Err.Error()}
				formats[key] = append(formats[key], addr)
				continue
			}

			value := rec.Value
			merged := false
			mergedRange := ""
			if m, ok := s.MergeAt(addr); ok {
				value = s.Cell(m.Start.Row, m.Start.Col).Value
				merged = true
				mergedRange = m.String()
			}
			if value != "" {
				index[value] = append(index[value], addr)
			}

			key := FormatKey{
				Style:        rec.Style,
				NumberFormat: grid.NumberFormatString(rec),
				InferredType: grid.InferType(rec),
				Category:     grid.CategorizeNumberFormat(grid.NumberFormatString(rec), rec),
				Merged:       merged,
				MergedRange:  mergedRange,
			}
			formats[key] = append(formats[key], addr)
		}
	}
	return index, formats
}

// SemanticBuckets re-buckets every indexed cell by its SemanticKey. The
// union of the format map's buckets is sorted row-major first so bucket
// contents have a deterministic order.
func SemanticBuckets(s *grid.Sheet, formats map[FormatKey][]grid.Address) map[SemanticKey][]grid.Address {
	var all []grid.Address
	for _, addrs := range formats {
		all = append(all, addrs...)
	}
	grid.SortAddresses(all)

	buckets := map[SemanticKey][]grid.Address{}
	for _, addr := range all {
		rec := s.Cell(addr.Row, addr.Col)
		key := SemanticKey{
			Type:         grid.SemanticType(rec),
			NumberFormat: grid.NumberFormatString(rec),
		}
		buckets[key] = append(buckets[key], addr)
	}
	return buckets
}
