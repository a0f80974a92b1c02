package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
)

func TestExpandNeighborhood(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ExpandNeighborhood([]int{2, 5}, 1, 10))
	assert.Equal(t, []int{1, 2, 3}, ExpandNeighborhood([]int{1}, 2, 10))
	assert.Equal(t, []int{8, 9, 10}, ExpandNeighborhood([]int{10}, 2, 10))
	// Radius 0 retains exactly the anchors.
	assert.Equal(t, []int{3, 7}, ExpandNeighborhood([]int{3, 7}, 0, 10))
	assert.Empty(t, ExpandNeighborhood(nil, 2, 10))
}

func TestExpandNeighborhoodSuperset(t *testing.T) {
	anchors := []int{2, 4, 9}
	expanded := ExpandNeighborhood(anchors, 3, 12)
	set := map[int]bool{}
	for _, i := range expanded {
		set[i] = true
	}
	for _, a := range anchors {
		assert.True(t, set[a], "anchor %d missing from expansion", a)
	}
}

func TestCompressHomogeneous(t *testing.T) {
	m := grid.NewMemory()
	m.SetValue("S", 1, 1, "X")
	m.SetValue("S", 1, 2, "Y")
	for r := 2; r <= 3; r++ {
		m.SetValue("S", r, 1, "0")
		m.SetValue("S", r, 2, "0")
	}
	m.SetValue("S", 4, 1, "1")
	m.SetValue("S", 4, 2, "2")
	s := snap(t, m, "S")

	rows, cols := CompressHomogeneous(s, []int{1, 2, 3, 4}, []int{1, 2})
	assert.Equal(t, []int{1, 4}, rows)
	assert.Equal(t, []int{1, 2}, cols)
}

func TestCompressHomogeneousFormatDifferenceKeepsRow(t *testing.T) {
	m := grid.NewMemory()
	m.Set("S", 1, 1, grid.CellRecord{Value: "0", Type: grid.TypeNumber, NumberFormat: "0.00"})
	m.Set("S", 1, 2, grid.CellRecord{Value: "0", Type: grid.TypeNumber, NumberFormat: "0%"})
	m.SetValue("S", 2, 1, "a")
	m.SetValue("S", 2, 2, "b")
	s := snap(t, m, "S")

	rows, _ := CompressHomogeneous(s, []int{1, 2}, []int{1, 2})
	assert.Equal(t, []int{1, 2}, rows)
}

func TestCompressHomogeneousEmptyWindow(t *testing.T) {
	m := grid.NewMemory()
	m.SetValue("S", 1, 1, "x")
	s := snap(t, m, "S")

	rows, cols := CompressHomogeneous(s, nil, nil)
	assert.Empty(t, rows)
	assert.Empty(t, cols)
}
