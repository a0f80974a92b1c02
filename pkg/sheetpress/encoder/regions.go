package encoder

import (
	"sort"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
)

// AggregateRegions partitions each semantic bucket into rectangles via a
// bounded greedy search: for every unprocessed start cell the largest
// valid rectangle up to span x span is kept. The span bound keeps the
// cost predictable; regions larger than the span come out as multiple
// adjacent ranges. Cells claimed by an earlier-processed key are not
// revisited, so ranges across keys never overlap.
func AggregateRegions(s *grid.Sheet, buckets map[SemanticKey][]grid.Address, span int) map[SemanticKey][]string {
	keys := make([]SemanticKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].NumberFormat < keys[j].NumberFormat
	})

	processed := map[grid.Address]bool{}
	regions := make(map[SemanticKey][]string, len(buckets))

	for _, key := range keys {
		addrs := append([]grid.Address(nil), buckets[key]...)
		grid.SortAddresses(addrs)
		members := map[grid.Address]bool{}
		for _, a := range addrs {
			members[a] = true
		}

		for _, start := range addrs {
			if processed[start] {
				continue
			}

			maxWidth := min(span, s.MaxCol-start.Col+1)
			maxHeight := min(span, s.MaxRow-start.Row+1)

			bestW, bestH, bestArea := 1, 1, 1
			for w := 1; w <= maxWidth; w++ {
				for h := 1; h <= maxHeight; h++ {
					if !validRectangle(start, w, h, members, processed) {
						continue
					}
					if w*h > bestArea {
						bestW, bestH, bestArea = w, h, w*h
					}
				}
			}

			end := grid.Address{Row: start.Row + bestH - 1, Col: start.Col + bestW - 1}
			if bestW == 1 && bestH == 1 {
				regions[key] = append(regions[key], start.String())
			} else {
				regions[key] = append(regions[key], start.String()+":"+end.String())
			}
			for r := 0; r < bestH; r++ {
				for c := 0; c < bestW; c++ {
					processed[grid.Address{Row: start.Row + r, Col: start.Col + c}] = true
				}
			}
		}
	}
	return regions
}

func validRectangle(start grid.Address, width, height int, members, processed map[grid.Address]bool) bool {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			a := grid.Address{Row: start.Row + r, Col: start.Col + c}
			if !members[a] || processed[a] {
				return false
			}
		}
	}
	return true
}

// NumericRanges aggregates the numeric-family subset of the semantic
// buckets. When the retained window holds no numeric cells at all it
// falls back to classifying the full grid, so numeric ranges are still
// reported for anchor-sparse sheets.
func NumericRanges(s *grid.Sheet, buckets map[SemanticKey][]grid.Address, span int) map[SemanticKey][]string {
	numeric := map[SemanticKey][]grid.Address{}
	for key, addrs := range buckets {
		if grid.IsNumericFamily(key.Type) {
			numeric[key] = addrs
		}
	}

	if len(numeric) == 0 {
		for r := 1; r <= s.MaxRow; r++ {
			for c := 1; c <= s.MaxCol; c++ {
				rec := s.Cell(r, c)
				if grid.InferType(rec) != grid.InferredNumeric {
					continue
				}
				key := SemanticKey{
					Type:         grid.SemanticType(rec),
					NumberFormat: grid.NumberFormatString(rec),
				}
				numeric[key] = append(numeric[key], grid.Address{Row: r, Col: c})
			}
		}
	}
	return AggregateRegions(s, numeric, span)
}
