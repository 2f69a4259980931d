package terminal

import (
	"errors"
	"fmt"
	"strconv"
)

// maxReportLen bounds how many bytes are scanned for a cursor position report
const maxReportLen = 32

// maxReportWaits bounds the empty reads (one escape timeout each) spent waiting for a reply
const maxReportWaits = 20

// farCorner is large enough to push the cursor into the bottom-right cell of any terminal
const farCorner = 999

// QuerySize discovers the terminal size by moving the cursor to the bottom-right
// corner and asking the terminal where it ended up
func QuerySize(sink CommandSink, d *Decoder) (rows, cols int, err error) {
	if err := sink.Emit(CursorForward(farCorner), CursorDown(farCorner), CursorReport()); err != nil {
		return 0, 0, fmt.Errorf("query size: %w", err)
	}
	return d.ReadCursorReport()
}

// ReadCursorReport consumes a cursor position report of the form ESC [ row ; col R
// Bytes preceding the ESC (keys typed before the reply) are discarded
func (d *Decoder) ReadCursorReport() (row, col int, err error) {
	var report []byte
	started := false
	waits := 0

	for i := 0; i < maxReportLen; {
		b, ok, err := d.next(true)
		if err != nil {
			return 0, 0, fmt.Errorf("cursor report: %w", err)
		}
		if !ok {
			if waits++; waits >= maxReportWaits {
				return 0, 0, errors.New("cursor report: terminal did not reply")
			}
			continue
		}
		i++
		if !started {
			started = b == 0x1b
			continue
		}
		if b == 'R' {
			return parseCursorReport(report)
		}
		report = append(report, b)
	}
	return 0, 0, fmt.Errorf("cursor report: no terminator within %d bytes", maxReportLen)
}

// parseCursorReport parses the "[row;col" body of a cursor position report
func parseCursorReport(body []byte) (int, int, error) {
	if len(body) < 4 || body[0] != '[' {
		return 0, 0, fmt.Errorf("cursor report: malformed %q", body)
	}
	body = body[1:]

	sep := -1
	for i, b := range body {
		if b == ';' {
			sep = i
			break
		}
	}
	if sep <= 0 {
		return 0, 0, fmt.Errorf("cursor report: malformed %q", body)
	}

	row, err := strconv.Atoi(string(body[:sep]))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report row: %w", err)
	}
	col, err := strconv.Atoi(string(body[sep+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report col: %w", err)
	}
	if row <= 0 || col <= 0 {
		return 0, 0, fmt.Errorf("cursor report: non-positive position %d;%d", row, col)
	}
	return row, col, nil
}
