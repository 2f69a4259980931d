// @focus: #sys { term }
// Package terminal provides raw terminal control for a line editor.
//
// Output is a small command set (cursor moves, erase, cursor visibility, raw
// SGR colors) encoded as ANSI CSI sequences by Writer, or replayed onto a cell
// grid by TcellScreen. Input bytes are turned into keys by Decoder, an escape
// sequence state machine that tells a lone ESC from a sequence start using a
// read timeout.
//
// ANSIScreen bypasses terminfo and targets xterm-compatible terminals on
// Linux, macOS and the BSDs. EmergencyReset restores the terminal from crash
// paths where no Screen is reachable.
package terminal
