package download

import (
	"fmt"
	"os"
)

// DefaultFileMode is used when a Writer creates a new file.
const DefaultFileMode = 0644

// Writer truncates and writes the output file in place. It never creates
// parent directories.
type Writer struct {
	mode os.FileMode
}

func NewWriter(mode os.FileMode) *Writer {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Writer{mode: mode}
}

// Write replaces the contents of path with data. A failure may leave a
// truncated or partial file behind.
func (w *Writer) Write(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteFailed, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
