package report

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink receives rendered report blocks in order.
type Sink interface {
	WriteBlock(b Block) error
}

// FileWriter writes blocks to a file. The first write of a run truncates the file and
// later writes append, so a failed run leaves the sections written so far.
type FileWriter struct {
	path string

	mu      sync.Mutex
	started bool
}

// NewFileWriter returns a writer for path. Nothing touches the disk until the first block.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the report file location.
func (w *FileWriter) Path() string {
	return w.path
}

// WriteBlock renders b and writes it to the report file.
func (w *FileWriter) WriteBlock(b Block) error {
	if w.path == "" {
		return errors.New("report path is empty")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if !w.started {
		if dir := filepath.Dir(w.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	f, err := os.OpenFile(w.path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, b.Render()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	w.started = true
	return nil
}

// StreamSink writes blocks to an io.Writer such as stdout or a buffer.
type StreamSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStreamSink wraps w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) WriteBlock(b Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, b.Render())
	return err
}
