package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/grid"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 1.0, Ratio(0, 5))
	assert.Equal(t, 2.0, Ratio(10, 5))
	assert.Equal(t, 0.5, Ratio(5, 10))
}

func TestTokenCountIsSerializedLength(t *testing.T) {
	assert.Equal(t, len(`{"A1":"x"}`), TokenCount(map[string]string{"A1": "x"}))
	// Non-ASCII stays unescaped, so it counts UTF-8 bytes, not \u escapes.
	assert.Equal(t, len(`{"A1":"é"}`), TokenCount(map[string]string{"A1": "é"}))
	assert.Equal(t, len(`{}`), TokenCount(map[string]string{}))
}

func TestCheckpointsMetrics(t *testing.T) {
	cp := Checkpoints{Original: 100, AfterAnchor: 50, AfterInvertedIndex: 25, AfterFormat: 20, Final: 10}
	m := cp.Metrics()
	assert.Equal(t, 100, m.OriginalTokens)
	assert.Equal(t, 2.0, m.AnchorRatio)
	assert.Equal(t, 4.0, m.InvertedIndexRatio)
	assert.Equal(t, 5.0, m.FormatRatio)
	assert.Equal(t, 10.0, m.OverallRatio)
}

func TestCheckpointsAdd(t *testing.T) {
	a := Checkpoints{Original: 10, AfterAnchor: 5, AfterInvertedIndex: 4, AfterFormat: 3, Final: 2}
	b := Checkpoints{Original: 30, AfterAnchor: 15, AfterInvertedIndex: 8, AfterFormat: 6, Final: 4}
	a.Add(b)
	assert.Equal(t, Checkpoints{Original: 40, AfterAnchor: 20, AfterInvertedIndex: 12, AfterFormat: 9, Final: 6}, a)

	// Overall ratios derive from the summed counts, not an average of
	// per-sheet ratios.
	assert.Equal(t, 2.0, a.Metrics().AnchorRatio)
}

func TestOriginalAndWindowCells(t *testing.T) {
	m := grid.NewMemory()
	m.SetValue("S", 1, 1, "a")
	m.SetValue("S", 2, 2, "b")
	m.SetValue("S", 3, 1, "c")
	s := snap(t, m, "S")

	orig := originalCells(s)
	require.Equal(t, map[string]string{"A1": "a", "B2": "b", "A3": "c"}, orig)

	win := windowCells(s, []int{1, 2}, []int{1, 2})
	assert.Equal(t, map[string]string{"A1": "a", "B2": "b"}, win)
}
