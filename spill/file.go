package spill

import (
	"io"
	"os"
)

// FileSpill buffers a column in a scratch file instead of memory, for
// encoders configured to favor bounded memory use over speed on very large
// archives.
type FileSpill struct {
	f     *os.File
	total int
}

// NewFileSpill creates a scratch file in dir (the system default temporary
// directory if dir is empty) to back a column spill.
func NewFileSpill(dir string) (*FileSpill, error) {
	f, err := os.CreateTemp(dir, "nafcodec-spill-*")
	if err != nil {
		return nil, err
	}

	return &FileSpill{f: f}, nil
}

var _ Spill = (*FileSpill)(nil)

// Write implements io.Writer.
func (s *FileSpill) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	s.total += n

	return n, err
}

// Len implements Spill.
func (s *FileSpill) Len() int {
	return s.total
}

// Reader implements Spill: it seeks the scratch file back to the start and
// hands out a read-only view. The caller's Close on the returned reader does
// not remove the file; use (*FileSpill).Close for that.
func (s *FileSpill) Reader() (io.ReadCloser, error) {
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return io.NopCloser(s.f), nil
}

// Close closes and removes the scratch file.
func (s *FileSpill) Close() error {
	name := s.f.Name()
	closeErr := s.f.Close()
	removeErr := os.Remove(name)

	if closeErr != nil {
		return closeErr
	}

	return removeErr
}
