package grid

import (
	"fmt"
	"strings"
)

// Memory is an in-memory Grid implementation, useful for tests and for
// embedding callers that already hold tabular data.
type Memory struct {
	order  []string
	sheets map[string]*memorySheet
}

type memorySheet struct {
	maxRow int
	maxCol int
	cells  map[Address]CellRecord
	merges []MergeRange
}

// NewMemory returns an empty in-memory grid.
func NewMemory() *Memory {
	return &Memory{sheets: map[string]*memorySheet{}}
}

// AddSheet registers a sheet with the given dimensions.
func (m *Memory) AddSheet(name string, maxRow, maxCol int) {
	if _, ok := m.sheets[name]; ok {
		return
	}
	m.order = append(m.order, name)
	m.sheets[name] = &memorySheet{maxRow: maxRow, maxCol: maxCol, cells: map[Address]CellRecord{}}
}

// Set stores a full cell record at (row, col), growing the sheet bounds
// as needed.
func (m *Memory) Set(sheet string, row, col int, rec CellRecord) {
	ms, ok := m.sheets[sheet]
	if !ok {
		m.AddSheet(sheet, row, col)
		ms = m.sheets[sheet]
	}
	if rec.NumberFormat == "" {
		rec.NumberFormat = "General"
	}
	if row > ms.maxRow {
		ms.maxRow = row
	}
	if col > ms.maxCol {
		ms.maxCol = col
	}
	ms.cells[Address{Row: row, Col: col}] = rec
}

// SetValue stores a plain value, inferring the storage type from its shape.
func (m *Memory) SetValue(sheet string, row, col int, value string) {
	m.Set(sheet, row, col, CellRecord{
		Value:        value,
		Type:         guessStorageType(value),
		NumberFormat: "General",
	})
}

// Merge adds a merge range to a sheet.
func (m *Memory) Merge(sheet string, mr MergeRange) {
	if ms, ok := m.sheets[sheet]; ok {
		ms.merges = append(ms.merges, mr)
	}
}

// SheetNames returns sheet names in insertion order.
func (m *Memory) SheetNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Dimensions returns the sheet bounds.
func (m *Memory) Dimensions(sheet string) (int, int, error) {
	ms, ok := m.sheets[sheet]
	if !ok {
		return 0, 0, fmt.Errorf("unknown sheet %q", sheet)
	}
	return ms.maxRow, ms.maxCol, nil
}

// Cell returns the record at (row, col); blank cells come back empty.
func (m *Memory) Cell(sheet string, row, col int) (CellRecord, error) {
	ms, ok := m.sheets[sheet]
	if !ok {
		return CellRecord{}, fmt.Errorf("unknown sheet %q", sheet)
	}
	if rec, ok := ms.cells[Address{Row: row, Col: col}]; ok {
		return rec, nil
	}
	return CellRecord{Empty: true, Type: TypeEmpty, NumberFormat: "General"}, nil
}

// MergeRanges returns the sheet's merge ranges.
func (m *Memory) MergeRanges(sheet string) ([]MergeRange, error) {
	ms, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", sheet)
	}
	return ms.merges, nil
}

func guessStorageType(value string) CellType {
	if value == "" {
		return TypeEmpty
	}
	if isNumericString(value) {
		return TypeNumber
	}
	switch strings.ToUpper(value) {
	case "TRUE", "FALSE":
		return TypeBool
	}
	return TypeText
}
