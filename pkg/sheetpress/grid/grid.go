// Package grid provides read-only access to spreadsheet cell grids.
package grid

import (
	"fmt"
	"sort"
	"strings"
)

// Address identifies a single cell with 1-based row and column indices.
type Address struct {
	Row int
	Col int
}

// String returns the canonical textual form, e.g. "A1" or "AB12".
func (a Address) String() string {
	return ColumnLetters(a.Col) + fmt.Sprintf("%d", a.Row)
}

// Less reports whether a precedes b in row-major order.
func (a Address) Less(b Address) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// ColumnLetters converts a 1-based column index to letters (1 => "A", 27 => "AA").
func ColumnLetters(col int) string {
	var sb strings.Builder
	for col > 0 {
		col--
		sb.WriteByte(byte('A' + col%26))
		col /= 26
	}
	// Reverse the accumulated letters.
	s := []byte(sb.String())
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}

// ColumnIndex converts column letters to a 1-based index ("A" => 1, "AA" => 27).
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("empty column letters")
	}
	col := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column letters %q", letters)
		}
		col = col*26 + int(r-'A'+1)
	}
	return col, nil
}

// ParseAddress parses a canonical cell reference like "B12".
func ParseAddress(ref string) (Address, error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(ref) {
		return Address{}, fmt.Errorf("invalid cell reference %q", ref)
	}
	col, err := ColumnIndex(ref[:i])
	if err != nil {
		return Address{}, err
	}
	row := 0
	for _, r := range ref[i:] {
		if r < '0' || r > '9' {
			return Address{}, fmt.Errorf("invalid cell reference %q", ref)
		}
		row = row*10 + int(r-'0')
	}
	if row < 1 {
		return Address{}, fmt.Errorf("invalid cell reference %q", ref)
	}
	return Address{Row: row, Col: col}, nil
}

// SortAddresses sorts addresses in row-major order in place.
func SortAddresses(addrs []Address) {
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
}

// MergeRange is a rectangular group of cells sharing the start cell's value.
type MergeRange struct {
	Start Address
	End   Address
}

// Contains reports whether the address lies inside the range.
func (m MergeRange) Contains(a Address) bool {
	return a.Row >= m.Start.Row && a.Row <= m.End.Row &&
		a.Col >= m.Start.Col && a.Col <= m.End.Col
}

// Valid reports whether the range is well formed.
func (m MergeRange) Valid() bool {
	return m.Start.Row >= 1 && m.Start.Col >= 1 &&
		m.End.Row >= m.Start.Row && m.End.Col >= m.Start.Col
}

// String returns the range in "A1:B3" notation.
func (m MergeRange) String() string {
	return m.Start.String() + ":" + m.End.String()
}

// CellType is the storage-level type of a cell value.
type CellType string

const (
	TypeEmpty   CellType = "empty"
	TypeText    CellType = "text"
	TypeNumber  CellType = "number"
	TypeBool    CellType = "bool"
	TypeDate    CellType = "date"
	TypeError   CellType = "error"
	TypeFormula CellType = "formula"
)

// Style holds the display attributes of a cell. All fields are comparable
// so Style values can serve directly as map keys.
type Style struct {
	Bold      bool
	Italic    bool
	Underline string
	FontName  string
	FontSize  float64
	FontColor string

	Horizontal string
	Vertical   string
	WrapText   bool

	BorderLeft   int
	BorderRight  int
	BorderTop    int
	BorderBottom int

	FillPattern int
	FillColor   string
}

// CellRecord is a read-only snapshot of one cell.
type CellRecord struct {
	// Value is the raw stringified cell value; empty when the cell is blank.
	Value string
	// Empty reports whether the cell holds no value.
	Empty bool
	// Type is the storage-level type.
	Type CellType
	// NumberFormat is the raw number format code, "General" when unset.
	NumberFormat string
	// Style holds font, alignment, border and fill attributes.
	Style Style
	// Err records a per-cell extraction fault; the record degrades to its
	// zero value but the cell still participates in the format map.
	Err error
}

// Grid is a read-only view of a workbook's sheets. Implementations must
// use 1-based row and column indices throughout.
type Grid interface {
	SheetNames() []string
	Dimensions(sheet string) (maxRow, maxCol int, err error)
	Cell(sheet string, row, col int) (CellRecord, error)
	MergeRanges(sheet string) ([]MergeRange, error)
}
