package grid

// Sheet is an immutable snapshot of one sheet's cells and merge ranges.
// The encoding pipeline reads snapshots only; nothing mutates them after
// construction.
type Sheet struct {
	Name   string
	MaxRow int
	MaxCol int

	cells  [][]CellRecord
	merges []MergeRange
}

// Snapshot materializes a sheet from a Grid. Malformed merge ranges are
// dropped so that their member cells fall back to unmerged handling.
func Snapshot(g Grid, sheet string) (*Sheet, error) {
	maxRow, maxCol, err := g.Dimensions(sheet)
	if err != nil {
		return nil, err
	}

	s := &Sheet{Name: sheet, MaxRow: maxRow, MaxCol: maxCol}
	s.cells = make([][]CellRecord, maxRow)
	for r := 1; r <= maxRow; r++ {
		s.cells[r-1] = make([]CellRecord, maxCol)
		for c := 1; c <= maxCol; c++ {
			rec, err := g.Cell(sheet, r, c)
			if err != nil {
				rec = CellRecord{Empty: true, Type: TypeEmpty, NumberFormat: "General", Err: err}
			}
			s.cells[r-1][c-1] = rec
		}
	}

	merges, err := g.MergeRanges(sheet)
	if err == nil {
		for _, m := range merges {
			if m.Valid() && m.End.Row <= maxRow && m.End.Col <= maxCol {
				s.merges = append(s.merges, m)
			}
		}
	}
	return s, nil
}

// Cell returns the record at (row, col). Out-of-bounds lookups return an
// empty record.
func (s *Sheet) Cell(row, col int) CellRecord {
	if row < 1 || row > s.MaxRow || col < 1 || col > s.MaxCol {
		return CellRecord{Empty: true, Type: TypeEmpty, NumberFormat: "General"}
	}
	return s.cells[row-1][col-1]
}

// Merges returns the sheet's merge ranges.
func (s *Sheet) Merges() []MergeRange {
	return s.merges
}

// MergeAt returns the merge range covering the address, if any.
func (s *Sheet) MergeAt(a Address) (MergeRange, bool) {
	for _, m := range s.merges {
		if m.Contains(a) {
			return m, true
		}
	}
	return MergeRange{}, false
}

// Empty reports whether the sheet should be skipped by the encoder: a
// 1x1 sheet with no value carries nothing worth encoding.
func (s *Sheet) Empty() bool {
	return s.MaxRow <= 1 && s.MaxCol <= 1
}
