// Package buffer holds the editable line model of a document.
//
// A Document is an ordered list of lines, each a sequence of code points.
// It never holds zero lines: an empty document is a single empty line.
// Row arguments are not range-checked beyond a panic; callers keep them valid
// by clamping the cursor against LineCount and LineLength.
package buffer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Document is the line buffer being edited
type Document struct {
	lines [][]rune
}

// New returns a document with a single empty line
func New() *Document {
	return &Document{lines: [][]rune{{}}}
}

// Load builds a document from text, splitting on \n and \r\n
// Undecodable bytes become U+FFFD; a trailing newline does not add an empty last line
func Load(text []byte) *Document {
	if len(text) == 0 {
		return New()
	}

	s := strings.ToValidUTF8(string(text), string(utf8.RuneError))
	parts := strings.Split(s, "\n")
	// "a\nb\n" splits into ["a" "b" ""]; the terminator closes "b", it does not open a line
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	d := &Document{lines: make([][]rune, len(parts))}
	for i, p := range parts {
		d.lines[i] = []rune(strings.TrimSuffix(p, "\r"))
	}
	return d
}

// FromLines builds a document from already split lines
func FromLines(lines ...string) *Document {
	if len(lines) == 0 {
		return New()
	}
	d := &Document{lines: make([][]rune, len(lines))}
	for i, l := range lines {
		d.lines[i] = []rune(l)
	}
	return d
}

// LineCount returns the number of lines, always >= 1
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineLength returns the code point count of a line
func (d *Document) LineLength(row int) int {
	return len(d.line(row))
}

// Line returns the text of a line
func (d *Document) Line(row int) string {
	return string(d.line(row))
}

// Slice returns the code points of a line in [from, to), clipped to the line
func (d *Document) Slice(row, from, to int) []rune {
	l := d.line(row)
	if from < 0 {
		from = 0
	}
	if to > len(l) {
		to = len(l)
	}
	if from >= to {
		return nil
	}
	return l[from:to]
}

// Lines returns a copy of all lines
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i := range d.lines {
		out[i] = d.Line(i)
	}
	return out
}

// Empty reports whether the document is a single empty line
func (d *Document) Empty() bool {
	return len(d.lines) == 1 && len(d.lines[0]) == 0
}

// InsertChar inserts ch at code point offset col of row
// col must be within [0, LineLength(row)]
func (d *Document) InsertChar(row, col int, ch rune) {
	l := d.line(row)
	d.checkCol(row, col, len(l))

	l = append(l, 0)
	copy(l[col+1:], l[col:])
	l[col] = ch
	d.lines[row] = l
}

// SplitLine truncates row at col and inserts the remainder as a new line right after it
// Returns the resulting head and tail text
func (d *Document) SplitLine(row, col int) (head, tail string) {
	l := d.line(row)
	d.checkCol(row, col, len(l))

	rest := make([]rune, len(l)-col)
	copy(rest, l[col:])
	d.lines[row] = l[:col:col]

	d.lines = append(d.lines, nil)
	copy(d.lines[row+2:], d.lines[row+1:])
	d.lines[row+1] = rest

	return string(d.lines[row]), string(rest)
}

// DeleteCharBefore removes the code point before (row, col) and returns the new cursor position
// At column 0 the row is joined onto the end of the previous row; at (0, 0) nothing happens
func (d *Document) DeleteCharBefore(row, col int) (newRow, newCol int) {
	l := d.line(row)
	d.checkCol(row, col, len(l))

	if col > 0 {
		d.lines[row] = append(l[:col-1], l[col:]...)
		return row, col - 1
	}
	if row == 0 {
		return 0, 0
	}

	prev := d.lines[row-1]
	joinAt := len(prev)
	d.lines[row-1] = append(prev, l...)
	d.removeLine(row)
	return row - 1, joinAt
}

// DeleteCharAt removes the code point at (row, col)
// At end of line the next row is joined onto this one; at end of the last row nothing happens
// Returns false when nothing was removed
func (d *Document) DeleteCharAt(row, col int) bool {
	l := d.line(row)
	d.checkCol(row, col, len(l))

	if col < len(l) {
		d.lines[row] = append(l[:col], l[col+1:]...)
		return true
	}
	if row == len(d.lines)-1 {
		return false
	}

	d.lines[row] = append(l, d.lines[row+1]...)
	d.removeLine(row + 1)
	return true
}

// Serialize returns every line terminated by a single newline
func (d *Document) Serialize() []string {
	out := d.Lines()
	for i := range out {
		out[i] += "\n"
	}
	return out
}

// WriteTo streams the serialized document to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range d.Serialize() {
		n, err := io.WriteString(w, l)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the serialized document as one string
func (d *Document) String() string {
	return strings.Join(d.Serialize(), "")
}

func (d *Document) line(row int) []rune {
	if row < 0 || row >= len(d.lines) {
		panic(fmt.Sprintf("buffer: row %d out of range [0, %d)", row, len(d.lines)))
	}
	return d.lines[row]
}

func (d *Document) checkCol(row, col, length int) {
	if col < 0 || col > length {
		panic(fmt.Sprintf("buffer: column %d out of range [0, %d] on row %d", col, length, row))
	}
}

func (d *Document) removeLine(row int) {
	copy(d.lines[row:], d.lines[row+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
}
