package encoder

import (
	"sort"
	"strings"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
)

// profileCell is the per-cell tuple compared when looking for row and
// column boundaries: heterogeneity in value, merge membership or style
// marks a boundary candidate.
type profileCell struct {
	value  string
	merged bool
	style  grid.Style
}

type box struct {
	r1, c1, r2, c2 int
}

func (b box) area() int {
	return (b.r2 - b.r1 + 1) * (b.c2 - b.c1 + 1)
}

// DetectAnchors finds the structural anchor rows and columns of a sheet:
// boundary candidates from profile heterogeneity, rectangular table-box
// candidates, density/header filtering and IoU non-maximum suppression,
// then the union of the surviving box bounds.
//
// When suppression leaves no box at all (a sheet too small or plain to
// carry a detectable header), the raw boundary candidates are used so the
// sheet is still retained.
func DetectAnchors(s *grid.Sheet, cfg Config) (rows, cols []int) {
	if s.Empty() {
		return nil, nil
	}

	headers := headerRows(s, cfg)
	rowCand, colCand := boundaryCandidates(s, headers)

	boxes := enumerateBoxes(rowCand, colCand, cfg.MaxCandidates)
	boxes = filterBoxes(s, boxes, headers, cfg)
	boxes = suppressOverlaps(boxes, headers, cfg)
	if len(boxes) == 0 {
		return rowCand, colCand
	}

	rowSet, colSet := map[int]bool{}, map[int]bool{}
	for _, b := range boxes {
		rowSet[b.r1], rowSet[b.r2] = true, true
		colSet[b.c1], colSet[b.c2] = true, true
	}
	return sortedKeys(rowSet), sortedKeys(colSet)
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// headerRows returns the set of rows classified as headers.
func headerRows(s *grid.Sheet, cfg Config) map[int]bool {
	headers := map[int]bool{}
	for r := 1; r <= s.MaxRow; r++ {
		if isHeaderRow(s, r, cfg) {
			headers[r] = true
		}
	}
	return headers
}

// isHeaderRow applies the header heuristics: a high fraction of bold,
// center-aligned or all-uppercase populated cells.
func isHeaderRow(s *grid.Sheet, row int, cfg Config) bool {
	var populated, bold, centered, texts, allCaps int
	for c := 1; c <= s.MaxCol; c++ {
		rec := s.Cell(row, c)
		if rec.Empty || strings.TrimSpace(rec.Value) == "" {
			continue
		}
		populated++
		if rec.Style.Bold {
			bold++
		}
		if rec.Style.Horizontal == "center" {
			centered++
		}
		if rec.Type == grid.TypeText {
			texts++
			if isAllCaps(rec.Value) {
				allCaps++
			}
		}
	}
	if populated == 0 {
		return false
	}
	if float64(bold)/float64(populated) > cfg.HeaderBoldRatio {
		return true
	}
	if float64(centered)/float64(populated) > cfg.HeaderCenterRatio {
		return true
	}
	return texts > 0 && float64(allCaps)/float64(texts) > cfg.HeaderUppercaseRatio
}

func isAllCaps(s string) bool {
	if len(s) <= 1 {
		return false
	}
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// boundaryCandidates compares adjacent row and column profiles and emits
// both sides of every differing pair. Header rows are excluded from the
// row candidates so a header is never split internally.
func boundaryCandidates(s *grid.Sheet, headers map[int]bool) (rows, cols []int) {
	rowSet := map[int]bool{}
	prev := rowProfile(s, 1)
	for r := 2; r <= s.MaxRow; r++ {
		cur := rowProfile(s, r)
		if !profilesEqual(prev, cur) {
			rowSet[r-1] = true
			rowSet[r] = true
		}
		prev = cur
	}
	for r := range headers {
		delete(rowSet, r)
	}

	colSet := map[int]bool{}
	prevCol := colProfile(s, 1)
	for c := 2; c <= s.MaxCol; c++ {
		cur := colProfile(s, c)
		if !profilesEqual(prevCol, cur) {
			colSet[c-1] = true
			colSet[c] = true
		}
		prevCol = cur
	}
	return sortedKeys(rowSet), sortedKeys(colSet)
}

func rowProfile(s *grid.Sheet, row int) []profileCell {
	profile := make([]profileCell, s.MaxCol)
	for c := 1; c <= s.MaxCol; c++ {
		rec := s.Cell(row, c)
		_, merged := s.MergeAt(grid.Address{Row: row, Col: c})
		profile[c-1] = profileCell{value: rec.Value, merged: merged, style: rec.Style}
	}
	return profile
}

func colProfile(s *grid.Sheet, col int) []profileCell {
	profile := make([]profileCell, s.MaxRow)
	for r := 1; r <= s.MaxRow; r++ {
		rec := s.Cell(r, col)
		_, merged := s.MergeAt(grid.Address{Row: r, Col: col})
		profile[r-1] = profileCell{value: rec.Value, merged: merged, style: rec.Style}
	}
	return profile
}

func profilesEqual(a, b []profileCell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// enumerateBoxes composes every (r1<r2, c1<c2) rectangle from the
// candidate sets, stopping at the cap in row-major enumeration order.
func enumerateBoxes(rows, cols []int, limit int) []box {
	var boxes []box
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			for k := 0; k < len(cols); k++ {
				for l := k + 1; l < len(cols); l++ {
					if len(boxes) >= limit {
						return boxes
					}
					boxes = append(boxes, box{r1: rows[i], c1: cols[k], r2: rows[j], c2: cols[l]})
				}
			}
		}
	}
	return boxes
}

// filterBoxes rejects candidates that are too small, too sparse, or
// contain no header row.
func filterBoxes(s *grid.Sheet, boxes []box, headers map[int]bool, cfg Config) []box {
	populated := populatedPrefix(s)
	var kept []box
	for _, b := range boxes {
		if b.r2-b.r1 < 1 || b.c2-b.c1 < 1 {
			continue
		}
		density := float64(populated.count(b)) / float64(b.area())
		if density < cfg.MinDensity {
			continue
		}
		hasHeader := false
		for r := b.r1; r <= b.r2; r++ {
			if headers[r] {
				hasHeader = true
				break
			}
		}
		if !hasHeader {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// prefixSums holds cumulative populated-cell counts; sums[r][c] counts
// populated cells in the rectangle (1,1)..(r,c).
type prefixSums struct {
	sums [][]int
}

func populatedPrefix(s *grid.Sheet) prefixSums {
	sums := make([][]int, s.MaxRow+1)
	sums[0] = make([]int, s.MaxCol+1)
	for r := 1; r <= s.MaxRow; r++ {
		sums[r] = make([]int, s.MaxCol+1)
		for c := 1; c <= s.MaxCol; c++ {
			n := 0
			if !s.Cell(r, c).Empty {
				n = 1
			}
			sums[r][c] = n + sums[r-1][c] + sums[r][c-1] - sums[r-1][c-1]
		}
	}
	return prefixSums{sums: sums}
}

func (p prefixSums) count(b box) int {
	return p.sums[b.r2][b.c2] - p.sums[b.r1-1][b.c2] - p.sums[b.r2][b.c1-1] + p.sums[b.r1-1][b.c1-1]
}

// boxScore favors boxes whose first rows look like headers, then size.
func boxScore(b box, headers map[int]bool, cfg Config) int {
	score := 0
	top := b.r1 + 2
	if top > b.r2 {
		top = b.r2
	}
	for r := b.r1; r <= top; r++ {
		if headers[r] {
			score += cfg.HeaderScoreWeight
		}
	}
	return score + b.area()
}

// iou computes Intersection-over-Union on inclusive bounding boxes.
func iou(a, b box) float64 {
	r1 := max(a.r1, b.r1)
	c1 := max(a.c1, b.c1)
	r2 := min(a.r2, b.r2)
	c2 := min(a.c2, b.c2)

	inter := max(0, r2-r1+1) * max(0, c2-c1+1)
	union := a.area() + b.area() - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// suppressOverlaps keeps the highest-scored box of every overlapping
// cluster: greedy non-maximum suppression at the configured IoU.
func suppressOverlaps(boxes []box, headers map[int]bool, cfg Config) []box {
	if len(boxes) == 0 {
		return nil
	}

	order := make([]int, len(boxes))
	scores := make([]int, len(boxes))
	for i, b := range boxes {
		order[i] = i
		scores[i] = boxScore(b, headers, cfg)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	var kept []box
	for len(order) > 0 {
		cur := order[0]
		kept = append(kept, boxes[cur])

		var remaining []int
		for _, idx := range order[1:] {
			if iou(boxes[cur], boxes[idx]) < cfg.IoUThreshold {
				remaining = append(remaining, idx)
			}
		}
		order = remaining
	}
	return kept
}
