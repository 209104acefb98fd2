package trace

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Separator is the line written between top level operations.
const Separator = "===================================="

// Sink receives trace output.
type Sink interface {
	// Emit appends line to the current output line. When newline is true
	// the line is terminated.
	Emit(line string, newline bool)

	// Separator writes the separator line.
	Separator()

	// Enabled returns false if the sink discards all output.
	Enabled() bool
}

// Printf formats a complete line and emits it to s.
func Printf(s Sink, format string, args ...interface{}) {
	if !s.Enabled() {
		return
	}

	s.Emit(fmt.Sprintf(format, args...), true)
}

// Println emits a complete line to s.
func Println(s Sink, line string) {
	s.Emit(line, true)
}

type nop struct{}

func (nop) Emit(string, bool) {}
func (nop) Separator()        {}
func (nop) Enabled() bool     { return false }

// Nop is the sink used when tracing is disabled.
var Nop Sink = nop{}

// OrNop returns s or Nop if s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop
	}

	return s
}

// Writer writes trace output to an io.Writer.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewWriter returns a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

// Emit writes line to the underlying writer.
func (t *Writer) Emit(line string, newline bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Trace output is best effort. Only the first failure is kept.
	if t.err != nil {
		return
	}

	if newline {
		line += "\n"
	}

	_, t.err = io.WriteString(t.w, line)
}

// Separator writes the separator line.
func (t *Writer) Separator() {
	t.Emit(Separator, true)
}

// Enabled always returns true.
func (t *Writer) Enabled() bool {
	return true
}

// Err returns the first write error encountered, if any.
func (t *Writer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Recorder keeps trace output in memory.
type Recorder struct {
	lines   []string
	partial strings.Builder
}

// Emit records line. Unterminated output is held until the next newline.
func (r *Recorder) Emit(line string, newline bool) {
	r.partial.WriteString(line)

	if newline {
		r.lines = append(r.lines, r.partial.String())
		r.partial.Reset()
	}
}

// Separator records the separator line.
func (r *Recorder) Separator() {
	r.Emit(Separator, true)
}

// Enabled always returns true.
func (r *Recorder) Enabled() bool {
	return true
}

// Lines returns the completed lines recorded so far.
func (r *Recorder) Lines() []string {
	return append([]string(nil), r.lines...)
}

// String returns the recorded output as it would have been written.
func (r *Recorder) String() string {
	sb := &strings.Builder{}

	for _, line := range r.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(r.partial.String())

	return sb.String()
}

// Reset discards all recorded output.
func (r *Recorder) Reset() {
	r.lines = r.lines[:0]
	r.partial.Reset()
}
