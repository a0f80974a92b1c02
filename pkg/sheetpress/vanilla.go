package sheetpress

import (
	"fmt"
	"strings"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
)

// VanillaEncode produces the uncompressed baseline encoding of a
// workbook: per sheet, one pipe-joined row-major string of
// "<addr>,<value>" pairs. It bypasses compression entirely and exists as
// the reference point for compression ratios.
func VanillaEncode(path string) (map[string]string, error) {
	g, err := grid.OpenExcel(path)
	if err != nil {
		return nil, NewEncodeError(path, "load", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer g.Close()
	return VanillaEncodeGrid(g)
}

// VanillaFirstSheet returns the vanilla content of the workbook's first
// sheet in workbook order, for callers writing a single baseline file.
func VanillaFirstSheet(path string, sheets map[string]string) (string, error) {
	g, err := grid.OpenExcel(path)
	if err != nil {
		return "", NewEncodeError(path, "load", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer g.Close()

	names := g.SheetNames()
	if len(names) == 0 {
		return "", fmt.Errorf("workbook %q has no sheets", path)
	}
	return sheets[names[0]], nil
}

// VanillaEncodeGrid produces the vanilla encoding for any Grid.
func VanillaEncodeGrid(g grid.Grid) (map[string]string, error) {
	out := map[string]string{}
	for _, name := range g.SheetNames() {
		s, err := grid.Snapshot(g, name)
		if err != nil {
			return nil, fmt.Errorf("load sheet %q: %w", name, err)
		}

		lines := make([]string, 0, s.MaxRow)
		for r := 1; r <= s.MaxRow; r++ {
			pairs := make([]string, 0, s.MaxCol)
			for c := 1; c <= s.MaxCol; c++ {
				addr := grid.Address{Row: r, Col: c}
				pairs = append(pairs, addr.String()+","+s.Cell(r, c).Value)
			}
			lines = append(lines, strings.Join(pairs, "|"))
		}
		out[name] = strings.Join(lines, "\n")
	}
	return out, nil
}
