// @focus: #sys { io } #input { decode }
package terminal

import (
	"errors"
	"io"
	"log"
	"unicode/utf8"
)

// maxSequenceLen caps how many bytes of an unrecognized CSI sequence are swallowed
const maxSequenceLen = 16

// decodeState is the escape sequence parser position
type decodeState uint8

const (
	stateStart  decodeState = iota // Awaiting the first byte of a key
	stateEscape                    // ESC seen
	stateCSI                       // ESC [ seen
	stateSS3                       // ESC O seen
	stateParam                     // ESC [ followed by parameter bytes
	stateUTF8                      // UTF-8 lead byte seen, collecting continuation bytes
)

// csiFinal maps ESC [ <final> to keys
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps ESC [ <param> ~ to keys
var csiTilde = map[string]Key{
	"1": KeyHome,
	"7": KeyHome,
	"4": KeyEnd,
	"8": KeyEnd,
	"3": KeyDelete,
	"5": KeyPageUp,
	"6": KeyPageDown,
}

// ss3Final maps ESC O <final> to keys
var ss3Final = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// Decoder turns a raw terminal byte stream into keys
//
// A read returning (0, nil) means "nothing yet": at the start of a key the
// decoder retries, inside an escape sequence it ends the sequence. That is how
// a lone ESC is told apart from the start of ESC [ A when the source polls with
// a timeout. io.EOF inside a sequence is treated the same way; any other read
// error is returned to the caller.
type Decoder struct {
	r   io.Reader
	buf [256]byte
	pos int
	end int
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one complete key has been decoded
func (d *Decoder) ReadKey() (Key, error) {
	state := stateStart
	var seq [maxSequenceLen]byte
	n := 0
	need := 0

	for {
		b, ok, err := d.next(state != stateStart)
		if err != nil {
			return KeyUnknown, err
		}

		switch state {
		case stateStart:
			switch {
			case b == 0x1b:
				state = stateEscape
			case b >= 0x80:
				need = utf8SeqLen(b) - 1
				if need <= 0 {
					return Char(utf8.RuneError), nil
				}
				seq[0], n = b, 1
				state = stateUTF8
			default:
				return controlKey(b), nil
			}

		case stateEscape:
			switch {
			case !ok:
				return KeyEscape, nil
			case b == '[':
				state = stateCSI
			case b == 'O':
				state = stateSS3
			case b == 0x1b:
				// ESC ESC: the second one starts the next key
				d.unread()
				return KeyEscape, nil
			default:
				return KeyUnknown, nil
			}

		case stateCSI:
			switch {
			case !ok:
				return KeyUnknown, nil
			case isFinalByte(b):
				if k, found := csiFinal[b]; found {
					return k, nil
				}
				return KeyUnknown, nil
			case isParamByte(b):
				seq[0], n = b, 1
				state = stateParam
			default:
				d.unread()
				return KeyUnknown, nil
			}

		case stateParam:
			switch {
			case !ok:
				return KeyUnknown, nil
			case b == '~':
				if k, found := csiTilde[string(seq[:n])]; found {
					return k, nil
				}
				return KeyUnknown, nil
			case isFinalByte(b):
				return KeyUnknown, nil
			case isParamByte(b):
				if n == len(seq) {
					log.Printf("terminal: dropping oversized CSI sequence %q", seq[:n])
					return KeyUnknown, nil
				}
				seq[n] = b
				n++
			default:
				d.unread()
				return KeyUnknown, nil
			}

		case stateSS3:
			if !ok {
				return KeyUnknown, nil
			}
			if k, found := ss3Final[b]; found {
				return k, nil
			}
			return KeyUnknown, nil

		case stateUTF8:
			if !ok {
				return Char(utf8.RuneError), nil
			}
			if b&0xc0 != 0x80 {
				d.unread()
				return Char(utf8.RuneError), nil
			}
			seq[n] = b
			n++
			if need--; need == 0 {
				r, _ := utf8.DecodeRune(seq[:n])
				return Char(r), nil
			}
		}
	}
}

// next returns the next byte, reading from the source when the buffer is drained
// With inSequence set, an empty read or EOF reports ok=false instead of retrying
func (d *Decoder) next(inSequence bool) (b byte, ok bool, err error) {
	for d.pos >= d.end {
		n, err := d.r.Read(d.buf[:])
		if n > 0 {
			d.pos, d.end = 0, n
			break
		}
		switch {
		case err == nil:
			if inSequence {
				return 0, false, nil
			}
			// Nothing available yet, not EOF: try again
		case errors.Is(err, io.EOF) && inSequence:
			return 0, false, nil
		default:
			return 0, false, err
		}
	}
	b = d.buf[d.pos]
	d.pos++
	return b, true, nil
}

// unread pushes the last byte returned by next back into the buffer
func (d *Decoder) unread() {
	if d.pos > 0 {
		d.pos--
	}
}

// isParamByte reports CSI parameter and intermediate bytes (digits, ';', '?', ' ', ...)
func isParamByte(b byte) bool {
	return b >= 0x20 && b <= 0x3f
}

// isFinalByte reports bytes that terminate a CSI sequence
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}
