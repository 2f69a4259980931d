package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/afero"
)

// Open reads path from fsys into a new document
// A missing file is reported with an error satisfying errors.Is(err, fs.ErrNotExist)
func Open(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d := Load(data)
	log.Printf("buffer: loaded %s (%d lines, %d bytes)", path, d.LineCount(), len(data))
	return d, nil
}

// OpenOrNew behaves like Open but returns an empty document when path does not exist
func OpenOrNew(fsys afero.Fs, path string) (*Document, error) {
	d, err := Open(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("buffer: %s does not exist, starting empty", path)
		return New(), nil
	}
	return d, err
}

// Save writes the serialized document to path, creating or truncating it
// The document itself is never modified, so a failed save leaves it intact
func (d *Document) Save(fsys afero.Fs, path string) (int64, error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("save %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	n, err := d.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("save %s: %w", path, err)
	}

	log.Printf("buffer: wrote %s (%d lines, %d bytes)", path, d.LineCount(), n)
	return n, nil
}
