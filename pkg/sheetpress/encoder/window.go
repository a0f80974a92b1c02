package encoder

import "github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"

// ExpandNeighborhood widens each anchor index by radius k within
// [1, bound] and returns the sorted union. Radius 0 retains exactly the
// anchors.
func ExpandNeighborhood(anchors []int, k, bound int) []int {
	set := map[int]bool{}
	for _, a := range anchors {
		lo := a - k
		if lo < 1 {
			lo = 1
		}
		hi := a + k
		if hi > bound {
			hi = bound
		}
		for i := lo; i <= hi; i++ {
			set[i] = true
		}
	}
	return sortedKeys(set)
}

// CompressHomogeneous drops retained rows and columns that carry no
// information: at most one distinct value and one distinct number format
// across the retained cross axis. Both axes are judged against the
// pre-compression sets.
func CompressHomogeneous(s *grid.Sheet, rows, cols []int) (keptRows, keptCols []int) {
	for _, r := range rows {
		if !rowHomogeneous(s, r, cols) {
			keptRows = append(keptRows, r)
		}
	}
	for _, c := range cols {
		if !colHomogeneous(s, c, rows) {
			keptCols = append(keptCols, c)
		}
	}
	return keptRows, keptCols
}

func rowHomogeneous(s *grid.Sheet, row int, cols []int) bool {
	values := map[string]bool{}
	formats := map[string]bool{}
	for _, c := range cols {
		rec := s.Cell(row, c)
		values[rec.Value] = true
		formats[grid.NumberFormatString(rec)] = true
	}
	return len(values) <= 1 && len(formats) <= 1
}

func colHomogeneous(s *grid.Sheet, col int, rows []int) bool {
	values := map[string]bool{}
	formats := map[string]bool{}
	for _, r := range rows {
		rec := s.Cell(r, col)
		values[rec.Value] = true
		formats[grid.NumberFormatString(rec)] = true
	}
	return len(values) <= 1 && len(formats) <= 1
}
