package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileExtension is the conventional suffix of capture files.
const FileExtension = ".llog"

// FileStats counts what a FileLogger has done since it was opened.
type FileStats struct {
	// Events is the number of records written.
	Events uint64

	// Frames is the number of records that carried raw datagram bytes.
	Frames uint64

	// Bytes is the number of capture bytes appended to the file.
	Bytes uint64

	// Failed is the number of events that could not be written.
	Failed uint64
}

// FileLogger appends CBOR capture records to a file. It is safe for
// concurrent use.
type FileLogger struct {
	path    string
	file    *os.File
	counter *countingWriter
	encoder *cbor.Encoder

	mu     sync.Mutex
	stats  FileStats
	closed bool
}

// NewFileLogger opens path for appending, creating it with mode 0644.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	cw := &countingWriter{f: f}
	return &FileLogger{
		path:    path,
		file:    f,
		counter: cw,
		encoder: NewEncoder(cw),
	}, nil
}

// NewSessionFileLogger opens <dir>/<sessionID>.llog, creating dir if
// needed. A codec's session id therefore names its capture file.
func NewSessionFileLogger(dir, sessionID string) (*FileLogger, error) {
	if sessionID == "" || sessionID != filepath.Base(sessionID) {
		return nil, fmt.Errorf("log: session id %q is not a file name", sessionID)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return NewFileLogger(filepath.Join(dir, sessionID+FileExtension))
}

// Path returns the capture file path.
func (l *FileLogger) Path() string {
	return l.path
}

// Log appends event. Write failures are counted in Stats and never
// reported to the codec. Events logged after Close are dropped.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	before := l.counter.n
	if err := l.encoder.Encode(event); err != nil {
		l.stats.Failed++
		return
	}
	l.stats.Events++
	l.stats.Bytes += l.counter.n - before
	if event.Frame != nil {
		l.stats.Frames++
	}
}

// Stats returns a snapshot of the counters.
func (l *FileLogger) Stats() FileStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Close closes the file. Repeated calls return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// countingWriter tallies bytes that reached the file.
type countingWriter struct {
	f *os.File
	n uint64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	w.n += uint64(n)
	return n, err
}

var _ Logger = (*FileLogger)(nil)
