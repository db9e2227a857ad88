package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RejectLogger records data lines that a fixed-width parser refused.
type RejectLogger interface {
	Log(lineNo int, line string, reason error)
}

// NewReject returns a RejectLogger appending one entry per rejected line to
// w. Entries hold a timestamp, the line number, the reason and the quoted
// line. A nil w discards everything. Safe for concurrent use.
func NewReject(w io.Writer) RejectLogger {
	if w == nil {
		return discardRejects{}
	}
	return &rejectWriter{w: w, now: time.Now}
}

type discardRejects struct{}

func (discardRejects) Log(int, string, error) {}

type rejectWriter struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func (r *rejectWriter) Log(lineNo int, line string, reason error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.w, "%s line %d: %v: %q\n", r.now().Format("2006/01/02 15:04:05"), lineNo, reason, line)
}
