package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestViewportScroll(t *testing.T) {
	tests := []struct {
		name             string
		row, col         int
		wantRow, wantCol int
	}{
		{"inside", 3, 5, 0, 0},
		{"last visible row", 9, 0, 0, 0},
		{"scroll down", 10, 0, 1, 0},
		{"far down", 25, 0, 16, 0},
		{"scroll right", 0, 20, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(10, 20)
			v.Scroll(tt.row, tt.col)
			assert.Equal(t, tt.wantRow, v.RowOffset())
			assert.Equal(t, tt.wantCol, v.ColOffset())
		})
	}
}

func TestViewportScrollsBackUp(t *testing.T) {
	v := NewViewport(5, 5)
	v.Scroll(20, 12)
	require.Equal(t, 16, v.RowOffset())
	require.Equal(t, 8, v.ColOffset())

	v.Scroll(17, 9)
	assert.Equal(t, 16, v.RowOffset(), "no scroll while the cursor stays visible")
	assert.Equal(t, 8, v.ColOffset())

	v.Scroll(3, 2)
	assert.Equal(t, 3, v.RowOffset())
	assert.Equal(t, 2, v.ColOffset())
}

func TestViewportResizeFloor(t *testing.T) {
	v := NewViewport(0, -3)
	assert.Equal(t, 1, v.Rows())
	assert.Equal(t, 1, v.Cols())

	v.Scroll(4, 7)
	assert.Equal(t, 4, v.RowOffset())
	assert.Equal(t, 7, v.ColOffset())
}

func TestViewportToScreen(t *testing.T) {
	v := NewViewport(5, 10)
	row, col := v.ToScreen(0, 0)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	v.Scroll(7, 12)
	row, col = v.ToScreen(7, 12)
	assert.Equal(t, 5, row)
	assert.Equal(t, 10, col)
}

func TestViewportScrollIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := NewViewport(rapid.IntRange(1, 50).Draw(rt, "rows"), rapid.IntRange(1, 120).Draw(rt, "cols"))

		positions := rapid.SliceOfN(rapid.IntRange(0, 1000), 2, 20).Draw(rt, "positions")
		for i := 0; i+1 < len(positions); i += 2 {
			row, col := positions[i], positions[i+1]
			v.Scroll(row, col)
			r1, c1 := v.RowOffset(), v.ColOffset()

			require.LessOrEqual(rt, r1, row)
			require.Less(rt, row, r1+v.Rows())
			require.LessOrEqual(rt, c1, col)
			require.Less(rt, col, c1+v.Cols())

			v.Scroll(row, col)
			require.Equal(rt, r1, v.RowOffset())
			require.Equal(rt, c1, v.ColOffset())
		}
	})
}
