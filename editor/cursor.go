package editor

import "github.com/lixenwraith/linedit/vmath"

// Shape is the part of a document the cursor needs to stay in bounds
type Shape interface {
	LineCount() int
	LineLength(row int) int
}

// Cursor is a 0-based (row, col) position that never leaves its document
// Rows range over [0, LineCount); columns over [0, LineLength(row)], one past the last code point
type Cursor struct {
	doc Shape
	row vmath.Clamped[int]
	col vmath.Clamped[int]
}

// NewCursor places a cursor at the start of doc
func NewCursor(doc Shape) *Cursor {
	c := &Cursor{
		doc: doc,
		row: vmath.NewClamped(vmath.Span(0, doc.LineCount()), false),
		col: vmath.NewClamped(vmath.Span(0, doc.LineLength(0)), true),
	}
	return c
}

func (c *Cursor) Row() int { return c.row.Value() }
func (c *Cursor) Col() int { return c.col.Value() }

// Clamp rebinds both axes to the document; call after every mutation
func (c *Cursor) Clamp() {
	c.row.Bind(vmath.Span(0, c.doc.LineCount()))
	c.bindCol()
}

func (c *Cursor) bindCol() {
	c.col.Bind(vmath.Span(0, c.doc.LineLength(c.row.Value())))
}

// Left moves one column left, wrapping to the end of the previous line
func (c *Cursor) Left() {
	if c.col.Dec() {
		return
	}
	if c.row.Dec() {
		c.bindCol()
		c.col.ToEnd()
	}
}

// Right moves one column right, wrapping to the start of the next line
func (c *Cursor) Right() {
	if c.col.Inc() {
		return
	}
	if c.row.Inc() {
		c.bindCol()
		c.col.ToStart()
	}
}

// Up moves one row up, pulling the column back if the line is shorter
func (c *Cursor) Up() {
	if c.row.Dec() {
		c.bindCol()
	}
}

// Down moves one row down, pulling the column back if the line is shorter
func (c *Cursor) Down() {
	if c.row.Inc() {
		c.bindCol()
	}
}

// Home moves to column 0
func (c *Cursor) Home() { c.col.ToStart() }

// End moves past the last code point of the line
func (c *Cursor) End() { c.col.ToEnd() }

// PageUp repeats Up n times
func (c *Cursor) PageUp(n int) {
	for i := 0; i < n; i++ {
		c.Up()
	}
}

// PageDown repeats Down n times
func (c *Cursor) PageDown(n int) {
	for i := 0; i < n; i++ {
		c.Down()
	}
}

// SetRow moves to row, saturating into the document, and re-clamps the column
func (c *Cursor) SetRow(row int) {
	c.row.Set(row)
	c.bindCol()
}

// SetCol moves to col, saturating into the current line
func (c *Cursor) SetCol(col int) {
	c.col.Set(col)
}
