package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger handles raw report hex dumps with optional file output.
type RawLogger interface {
	Log(report int, data []byte)
}

// rawLogger implements RawLogger with thread-safe output.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single-line dump of one encoded report: timestamp, report
// index, length and the full payload in hex.
func (r *rawLogger) Log(report int, data []byte) {
	if len(data) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s report %d: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		report,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
