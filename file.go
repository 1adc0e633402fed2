package csvparser

import (
	"fmt"
	"os"
)

// Open creates a Reader over the named file. The reader owns the file
// handle; Close releases it.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvparser: open %s: %w", path, err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Create creates a Writer over the named file, truncating it if it
// exists. The writer owns the file handle; Close flushes and releases it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csvparser: create %s: %w", path, err)
	}
	return NewWriter(f), nil
}
