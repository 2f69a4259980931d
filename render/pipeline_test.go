package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/linedit/buffer"
	"github.com/lixenwraith/linedit/terminal"
)

func newPipeline() *Pipeline {
	return &Pipeline{Welcome: "hi", Filler: "~"}
}

// rowTexts extracts the Text payload written for each screen row
func rowTexts(cmds []terminal.Command) []string {
	var rows []string
	for i, c := range cmds {
		if c.Kind != terminal.CmdText || c.Text == "\r\n" {
			continue
		}
		if i+1 < len(cmds) && cmds[i+1].Kind == terminal.CmdEraseLine {
			rows = append(rows, c.Text)
		}
	}
	return rows
}

func TestBuildCommandOrder(t *testing.T) {
	f := Frame{
		Doc:       buffer.FromLines("ab", "cd"),
		Rows:      4,
		Cols:      10,
		CursorRow: 2,
		CursorCol: 3,
	}

	got := newPipeline().Build(f)

	eol := terminal.EraseLine(terminal.EraseFromCursor)
	nl := terminal.Text("\r\n")
	want := []terminal.Command{
		terminal.HideCursor(),
		terminal.MoveTo(1, 1),
		terminal.Text("ab"), eol, nl,
		terminal.Text("cd"), eol, nl,
		terminal.Text("~"), eol, nl,
		terminal.Text("~"), eol,
		terminal.MoveTo(2, 3),
		terminal.ShowCursor(),
	}
	assert.Equal(t, want, got)
}

func TestBuildEncodesToANSI(t *testing.T) {
	f := Frame{Doc: buffer.FromLines("x"), Rows: 2, Cols: 5, CursorRow: 1, CursorCol: 2}

	var out bytes.Buffer
	require.NoError(t, terminal.NewWriter(&out).Emit(newPipeline().Build(f)...))
	assert.Equal(t, "\x1b[?25l\x1b[1;1Hx\x1b[0K\r\n~\x1b[0K\x1b[1;2H\x1b[?25h", out.String())
}

func TestBuildHorizontalSlice(t *testing.T) {
	f := Frame{
		Doc:       buffer.FromLines("0123456789", "ab"),
		Rows:      2,
		Cols:      4,
		ColOffset: 3,
		CursorRow: 1,
		CursorCol: 1,
	}
	assert.Equal(t, []string{"3456", ""}, rowTexts(newPipeline().Build(f)))
}

func TestBuildVerticalOffset(t *testing.T) {
	f := Frame{
		Doc:       buffer.FromLines("a", "b", "c", "d"),
		Rows:      3,
		Cols:      4,
		RowOffset: 2,
		CursorRow: 1,
		CursorCol: 1,
	}
	assert.Equal(t, []string{"c", "d", "~"}, rowTexts(newPipeline().Build(f)))
}

func TestBuildWelcomeBanner(t *testing.T) {
	f := Frame{Doc: buffer.New(), Rows: 6, Cols: 10, Welcome: true, CursorRow: 1, CursorCol: 1}
	assert.Equal(t, []string{"", "~", "~   hi", "~", "~", "~"}, rowTexts(newPipeline().Build(f)))

	f.Welcome = false
	assert.Equal(t, []string{"", "~", "~", "~", "~", "~"}, rowTexts(newPipeline().Build(f)))
}

func TestBuildWelcomeBannerTruncated(t *testing.T) {
	p := &Pipeline{Welcome: "linedit -- version 1.0", Filler: "~"}
	f := Frame{Doc: buffer.New(), Rows: 3, Cols: 8, Welcome: true, CursorRow: 1, CursorCol: 1}

	rows := rowTexts(p.Build(f))
	assert.Equal(t, "linedit ", rows[1])
}

func TestBuildControlCharactersTakeOneCell(t *testing.T) {
	f := Frame{Doc: buffer.FromLines("a\tb\x01c\x7fd\u009be\u0085é"), Rows: 1, Cols: 20, CursorRow: 1, CursorCol: 1}
	assert.Equal(t, []string{"a b?c?d?e?é"}, rowTexts(newPipeline().Build(f)))
}

func TestBuildStatusBar(t *testing.T) {
	f := Frame{
		Doc:       buffer.FromLines("a", "b", "c"),
		Rows:      2,
		Cols:      40,
		CursorRow: 1,
		CursorCol: 5,
		Status:    &Status{Name: "a.txt", Modified: true, Message: "saved", Row: 0, Col: 4, Lines: 3},
	}

	cmds := newPipeline().Build(f)

	n := len(cmds)
	require.Greater(t, n, 8)
	assert.Equal(t, terminal.MoveTo(1, 5), cmds[n-2])
	assert.Equal(t, terminal.ShowCursor(), cmds[n-1])

	bar := cmds[n-8 : n-2]
	assert.Equal(t, terminal.Text("\r\n"), bar[0])
	assert.Equal(t, terminal.Background(terminal.BgCyan), bar[1])
	assert.Equal(t, terminal.Foreground(terminal.FgBlack), bar[2])
	assert.Equal(t, "a.txt (modified) - saved"+strings.Repeat(" ", 11)+"1:5/3", bar[3].Text)
	assert.Equal(t, terminal.Background(terminal.BgDefault), bar[4])
	assert.Equal(t, terminal.Foreground(terminal.FgDefault), bar[5])
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		cols int
		want string
	}{
		{"unnamed", Status{Lines: 1}, 20, "[No Name]" + strings.Repeat(" ", 6) + "1:1/1"},
		{"narrow drops position", Status{Name: "file.go", Lines: 1}, 9, "file.go  "},
		{"overflow truncated", Status{Name: "f", Message: "a very long message", Lines: 1}, 10, "f - a very"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusLine(&tt.s, tt.cols)
			assert.Equal(t, tt.want, got)
			assert.Len(t, []rune(got), tt.cols)
		})
	}
}
