package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	in       *scriptedReader
	out      bytes.Buffer
	initErr  error
	writeErr error
	sizeErr  error
	rows     int
	cols     int
	inits    int
	finis    int
	rawState bool
}

func (b *fakeBackend) Init() error {
	b.inits++
	if b.initErr != nil {
		return b.initErr
	}
	b.rawState = true
	return nil
}

func (b *fakeBackend) Fini() {
	b.finis++
	b.rawState = false
}

func (b *fakeBackend) Size() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.rows, b.cols, nil
}

func (b *fakeBackend) Read(p []byte) (int, error) { return b.in.Read(p) }
func (b *fakeBackend) Write(p []byte) (int, error) {
	if b.writeErr != nil {
		return 0, b.writeErr
	}
	return b.out.Write(p)
}

func TestANSIScreenLifecycle(t *testing.T) {
	b := &fakeBackend{in: chunks(), rows: 24, cols: 80}
	s := newANSIScreen(b)

	require.NoError(t, s.Init())
	require.NoError(t, s.Init(), "second Init is a no-op")
	assert.Equal(t, 1, b.inits)
	assert.True(t, b.rawState)
	assert.Contains(t, b.out.String(), "\x1b[?1049h")

	s.Fini()
	s.Fini()
	assert.Equal(t, 1, b.finis, "terminal mode restored exactly once")
	assert.False(t, b.rawState)
	assert.Contains(t, b.out.String(), "\x1b[?1049l")
	assert.Contains(t, b.out.String(), "\x1b[?25h")

	_, err := s.ReadKey()
	require.ErrorIs(t, err, ErrClosed)
}

func TestANSIScreenFiniWithoutInit(t *testing.T) {
	b := &fakeBackend{in: chunks()}
	s := newANSIScreen(b)
	s.Fini()
	assert.Zero(t, b.finis)
	assert.Zero(t, b.out.Len())
}

func TestANSIScreenInitFailure(t *testing.T) {
	b := &fakeBackend{in: chunks(), initErr: errors.New("not a tty")}
	s := newANSIScreen(b)

	require.Error(t, s.Init())
	s.Fini()
	assert.Zero(t, b.finis, "nothing to restore when raw mode was never entered")
}

func TestANSIScreenInitWriteFailureRestoresMode(t *testing.T) {
	errIO := errors.New("input/output error")
	b := &fakeBackend{in: chunks(), writeErr: errIO}
	s := newANSIScreen(b)

	err := s.Init()
	require.ErrorIs(t, err, errIO)
	assert.Equal(t, 1, b.finis)
	assert.False(t, b.rawState, "raw mode left after the failed setup")

	s.Fini()
	assert.Equal(t, 1, b.finis, "Fini after a failed Init does nothing")
}

func TestANSIScreenSize(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		s := newANSIScreen(&fakeBackend{in: chunks(), rows: 30, cols: 100})
		rows, cols := s.Size()
		assert.Equal(t, 30, rows)
		assert.Equal(t, 100, cols)
	})

	t.Run("cursor report fallback", func(t *testing.T) {
		b := &fakeBackend{in: chunks("\x1b[40;120R"), sizeErr: errors.New("no ioctl")}
		rows, cols := newANSIScreen(b).Size()
		assert.Equal(t, 40, rows)
		assert.Equal(t, 120, cols)
		assert.Equal(t, "\x1b[999C\x1b[999B\x1b[6n", b.out.String())
	})

	t.Run("default when nothing answers", func(t *testing.T) {
		b := &fakeBackend{in: chunks(), sizeErr: errors.New("no ioctl")}
		rows, cols := newANSIScreen(b).Size()
		assert.Equal(t, fallbackRows, rows)
		assert.Equal(t, fallbackCols, cols)
	})
}

func TestANSIScreenReadsKeys(t *testing.T) {
	b := &fakeBackend{in: chunks("a\x1b[B")}
	s := newANSIScreen(b)
	require.NoError(t, s.Init())
	defer s.Fini()

	k, err := s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Char('a'), k)

	k, err = s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyDown, k)
}
