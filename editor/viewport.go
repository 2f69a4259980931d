package editor

import "github.com/lixenwraith/linedit/vmath"

// Viewport is the visible window of the document
// Offsets are the first visible row and column; Scroll keeps the cursor inside
type Viewport struct {
	rows, cols int
	rowOff     vmath.Clamped[int]
	colOff     vmath.Clamped[int]
}

// NewViewport creates a viewport of the given text area size scrolled to the origin
func NewViewport(rows, cols int) *Viewport {
	v := &Viewport{
		rowOff: vmath.NewClamped(vmath.Span(0, 1), false),
		colOff: vmath.NewClamped(vmath.Span(0, 1), false),
	}
	v.Resize(rows, cols)
	return v
}

func (v *Viewport) Rows() int      { return v.rows }
func (v *Viewport) Cols() int      { return v.cols }
func (v *Viewport) RowOffset() int { return v.rowOff.Value() }
func (v *Viewport) ColOffset() int { return v.colOff.Value() }

// Resize sets the text area size, never below 1x1
func (v *Viewport) Resize(rows, cols int) {
	v.rows = max(rows, 1)
	v.cols = max(cols, 1)
}

// Scroll moves the offsets the minimum needed for (row, col) to be visible
// Each offset saturates into [pos-size+1, pos], so calling it again is a no-op
func (v *Viewport) Scroll(row, col int) {
	v.rowOff.Bind(vmath.Span(row-v.rows+1, row+1))
	v.colOff.Bind(vmath.Span(col-v.cols+1, col+1))
}

// ToScreen converts a document position to a 1-based terminal position
func (v *Viewport) ToScreen(row, col int) (int, int) {
	return row - v.rowOff.Value() + 1, col - v.colOff.Value() + 1
}
