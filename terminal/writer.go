// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
)

// Writer is a CommandSink that encodes commands as ANSI escape sequences
// Each Emit call is written in one flush so a frame never reaches the terminal half-drawn
type Writer struct {
	w       *bufio.Writer
	scratch []byte
}

// NewWriter wraps w with an output buffer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       bufio.NewWriterSize(w, 32768),
		scratch: make([]byte, 0, 64),
	}
}

// Emit encodes and flushes cmds
func (o *Writer) Emit(cmds ...Command) error {
	for _, c := range cmds {
		if c.Kind == CmdText {
			if _, err := o.w.WriteString(c.Text); err != nil {
				return err
			}
			continue
		}
		o.scratch = c.AppendANSI(o.scratch[:0])
		if _, err := o.w.Write(o.scratch); err != nil {
			return err
		}
	}
	return o.w.Flush()
}

// writeRaw writes bytes outside the command set (screen mode switches) and flushes
func (o *Writer) writeRaw(seqs ...[]byte) error {
	for _, s := range seqs {
		if _, err := o.w.Write(s); err != nil {
			return err
		}
	}
	return o.w.Flush()
}
