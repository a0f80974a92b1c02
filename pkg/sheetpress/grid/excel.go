package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel is a Grid backed by an xlsx workbook opened with excelize.
type Excel struct {
	f      *excelize.File
	styles map[int]excelStyle
}

type excelStyle struct {
	style  Style
	numFmt string
}

// OpenExcel opens an xlsx workbook as a Grid. The caller must Close it.
func OpenExcel(path string) (*Excel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewExcel(f), nil
}

// NewExcel wraps an already-open excelize file.
func NewExcel(f *excelize.File) *Excel {
	return &Excel{f: f, styles: map[int]excelStyle{}}
}

// Close releases the underlying workbook.
func (e *Excel) Close() error {
	return e.f.Close()
}

// SheetNames returns the workbook's sheet names in workbook order.
func (e *Excel) SheetNames() []string {
	return e.f.GetSheetList()
}

// Dimensions returns the populated bounds of a sheet. A sheet with no
// rows reports 1x1 so the encoder's empty-sheet skip applies.
func (e *Excel) Dimensions(sheet string) (int, int, error) {
	rows, err := e.f.GetRows(sheet)
	if err != nil {
		return 0, 0, err
	}
	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	if maxRow < 1 {
		maxRow = 1
	}
	if maxCol < 1 {
		maxCol = 1
	}
	return maxRow, maxCol, nil
}

// Cell reads one cell. Style extraction faults degrade the record and are
// reported through CellRecord.Err rather than failing the read.
func (e *Excel) Cell(sheet string, row, col int) (CellRecord, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return CellRecord{}, err
	}

	raw, err := e.f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return CellRecord{}, err
	}

	rec := CellRecord{Value: raw, Empty: raw == "", NumberFormat: "General"}

	ct, err := e.f.GetCellType(sheet, axis)
	if err != nil {
		rec.Err = fmt.Errorf("cell type %s: %w", axis, err)
		ct = excelize.CellTypeUnset
	}
	rec.Type = storageType(ct, raw)
	if rec.Type == TypeBool {
		switch raw {
		case "1":
			rec.Value = "TRUE"
		case "0":
			rec.Value = "FALSE"
		}
	}

	styleID, err := e.f.GetCellStyle(sheet, axis)
	if err != nil {
		rec.Err = fmt.Errorf("cell style %s: %w", axis, err)
		return rec, nil
	}
	es, err := e.styleFor(styleID)
	if err != nil {
		rec.Err = fmt.Errorf("cell style %s: %w", axis, err)
		return rec, nil
	}
	rec.Style = es.style
	rec.NumberFormat = es.numFmt
	return rec, nil
}

// MergeRanges returns the sheet's merged cell ranges. Ranges that cannot
// be parsed are dropped; their members fall back to unmerged handling.
func (e *Excel) MergeRanges(sheet string) ([]MergeRange, error) {
	mcs, err := e.f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	var out []MergeRange
	for _, mc := range mcs {
		start, err1 := ParseAddress(mc.GetStartAxis())
		end, err2 := ParseAddress(mc.GetEndAxis())
		if err1 != nil || err2 != nil {
			continue
		}
		mr := MergeRange{Start: start, End: end}
		if mr.Valid() {
			out = append(out, mr)
		}
	}
	return out, nil
}

func storageType(ct excelize.CellType, raw string) CellType {
	switch ct {
	case excelize.CellTypeBool:
		return TypeBool
	case excelize.CellTypeDate:
		return TypeDate
	case excelize.CellTypeError:
		return TypeError
	case excelize.CellTypeFormula:
		return TypeFormula
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return TypeText
	case excelize.CellTypeNumber:
		return TypeNumber
	default:
		// Cells without a type attribute store numbers; anything else
		// that still carries text is treated as text.
		if raw == "" {
			return TypeEmpty
		}
		if isNumericString(raw) {
			return TypeNumber
		}
		return TypeText
	}
}

func (e *Excel) styleFor(id int) (excelStyle, error) {
	if es, ok := e.styles[id]; ok {
		return es, nil
	}
	st, err := e.f.GetStyle(id)
	if err != nil {
		return excelStyle{numFmt: "General"}, err
	}

	var s Style
	if st.Font != nil {
		s.Bold = st.Font.Bold
		s.Italic = st.Font.Italic
		s.Underline = st.Font.Underline
		s.FontName = st.Font.Family
		s.FontSize = st.Font.Size
		s.FontColor = st.Font.Color
	}
	if st.Alignment != nil {
		s.Horizontal = st.Alignment.Horizontal
		s.Vertical = st.Alignment.Vertical
		s.WrapText = st.Alignment.WrapText
	}
	for _, b := range st.Border {
		switch b.Type {
		case "left":
			s.BorderLeft = b.Style
		case "right":
			s.BorderRight = b.Style
		case "top":
			s.BorderTop = b.Style
		case "bottom":
			s.BorderBottom = b.Style
		}
	}
	s.FillPattern = st.Fill.Pattern
	if len(st.Fill.Color) > 0 {
		s.FillColor = st.Fill.Color[0]
	}

	numFmt := "General"
	if st.CustomNumFmt != nil && *st.CustomNumFmt != "" {
		numFmt = *st.CustomNumFmt
	} else if st.NumFmt != 0 {
		numFmt = BuiltinFormatCode(st.NumFmt)
	}

	es := excelStyle{style: s, numFmt: numFmt}
	e.styles[id] = es
	return es, nil
}
