package encoder

import (
	"strings"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
)

// CompactRanges partitions an address set into rectangular ranges via a
// greedy row-major sweep: grow each unprocessed cell rightward as far as
// possible, then downward while the whole width stays covered.
//
// Invariant: every input address is covered by exactly one emitted range
// and the union of the ranges equals the input set.
func CompactRanges(addrs []grid.Address) []string {
	if len(addrs) == 0 {
		return nil
	}

	set := map[grid.Address]bool{}
	for _, a := range addrs {
		set[a] = true
	}
	sorted := make([]grid.Address, 0, len(set))
	for a := range set {
		sorted = append(sorted, a)
	}
	grid.SortAddresses(sorted)

	processed := map[grid.Address]bool{}
	var ranges []string

	for _, start := range sorted {
		if processed[start] {
			continue
		}

		width := 1
		for {
			next := grid.Address{Row: start.Row, Col: start.Col + width}
			if !set[next] || processed[next] {
				break
			}
			width++
		}

		height := 1
		for {
			ok := true
			for w := 0; w < width; w++ {
				next := grid.Address{Row: start.Row + height, Col: start.Col + w}
				if !set[next] || processed[next] {
					ok = false
					break
				}
			}
			if !ok {
				break
			}
			height++
		}

		end := grid.Address{Row: start.Row + height - 1, Col: start.Col + width - 1}
		if width == 1 && height == 1 {
			ranges = append(ranges, start.String())
		} else {
			ranges = append(ranges, start.String()+":"+end.String())
		}
		for r := 0; r < height; r++ {
			for w := 0; w < width; w++ {
				processed[grid.Address{Row: start.Row + r, Col: start.Col + w}] = true
			}
		}
	}
	return ranges
}

// MergeIndex converts the inverted value index into its compact range
// form. Blank values are dropped.
func MergeIndex(index map[string][]grid.Address) map[string][]string {
	merged := make(map[string][]string, len(index))
	for value, addrs := range index {
		if strings.TrimSpace(value) == "" {
			continue
		}
		merged[value] = CompactRanges(addrs)
	}
	return merged
}
