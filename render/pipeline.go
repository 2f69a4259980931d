// @focus: #render { pipeline }
// Package render turns editor state into an ordered list of terminal commands.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/linedit/terminal"
)

// Source is the document view the pipeline reads
type Source interface {
	LineCount() int
	Slice(row, from, to int) []rune
}

// Status is the content of the status bar
type Status struct {
	Name     string // File name, empty for an unnamed buffer
	Modified bool
	Message  string
	Row, Col int // 0-based cursor position
	Lines    int
}

// Frame is everything one render cycle needs
// Rows and Cols describe the text area; the status bar, when present, is drawn below it
type Frame struct {
	Doc        Source
	Rows, Cols int
	RowOffset  int
	ColOffset  int
	CursorRow  int // 1-based screen row
	CursorCol  int // 1-based screen column
	Welcome    bool
	Status     *Status
}

// Pipeline holds the presentation settings shared by every frame
type Pipeline struct {
	Welcome string // Banner text shown on new, empty buffers
	Filler  string // Drawn on rows past the end of the document
}

// Build produces the commands that redraw the whole screen for f
func (p *Pipeline) Build(f Frame) []terminal.Command {
	cmds := make([]terminal.Command, 0, 2*f.Rows+12)
	cmds = append(cmds, terminal.HideCursor(), terminal.MoveTo(1, 1))

	var sb strings.Builder
	lineCount := f.Doc.LineCount()

	for y := 0; y < f.Rows; y++ {
		sb.Reset()
		fileRow := y + f.RowOffset

		switch {
		case fileRow < lineCount:
			writeCells(&sb, f.Doc.Slice(fileRow, f.ColOffset, f.ColOffset+f.Cols))
		case f.Welcome && y == f.Rows/3:
			p.writeBanner(&sb, f.Cols)
		default:
			sb.WriteString(p.Filler)
		}

		cmds = append(cmds, terminal.Text(sb.String()), terminal.EraseLine(terminal.EraseFromCursor))
		if y < f.Rows-1 {
			cmds = append(cmds, terminal.Text("\r\n"))
		}
	}

	if f.Status != nil {
		cmds = append(cmds,
			terminal.Text("\r\n"),
			terminal.Background(terminal.BgCyan),
			terminal.Foreground(terminal.FgBlack),
			terminal.Text(statusLine(f.Status, f.Cols)),
			terminal.Background(terminal.BgDefault),
			terminal.Foreground(terminal.FgDefault),
		)
	}

	return append(cmds, terminal.MoveTo(f.CursorRow, f.CursorCol), terminal.ShowCursor())
}

// writeCells writes one screen cell per code point
// Tabs become a space and other C0/C1 control characters a '?'
func writeCells(sb *strings.Builder, rs []rune) {
	for _, r := range rs {
		switch {
		case r == '\t':
			sb.WriteByte(' ')
		case unicode.IsControl(r):
			sb.WriteByte('?')
		default:
			sb.WriteRune(r)
		}
	}
}

// writeBanner centers the welcome text, keeping the filler in the first column
func (p *Pipeline) writeBanner(sb *strings.Builder, cols int) {
	msg := runewidth.Truncate(p.Welcome, cols, "")
	padding := (cols - runewidth.StringWidth(msg)) / 2
	if padding > 0 {
		sb.WriteString(p.Filler)
		padding -= runewidth.StringWidth(p.Filler)
	}
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(msg)
}

// statusLine lays out name and message on the left and the position on the right, padded to cols
func statusLine(s *Status, cols int) string {
	name := s.Name
	if name == "" {
		name = "[No Name]"
	}
	left := runewidth.Truncate(name, 20, "...")
	if s.Modified {
		left += " (modified)"
	}
	if s.Message != "" {
		left += " - " + s.Message
	}
	right := fmt.Sprintf("%d:%d/%d", s.Row+1, s.Col+1, s.Lines)

	left = runewidth.Truncate(left, cols, "")
	gap := cols - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return runewidth.FillRight(left, cols)
	}
	return left + strings.Repeat(" ", gap) + right
}
