package output

import (
	"bytes"
	"strings"
	"sync"
)

// CaptureBuffer is a goroutine-safe writer that records output for tests.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

func (c *CaptureBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the captured output split on newlines, without a trailing empty line.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}

// CaptureGlobal swaps in a plain printer writing to a fresh buffer, runs fn
// and restores the previous global printer.
func CaptureGlobal(fn func()) string {
	buffer := NewCaptureBuffer()
	previous := GetGlobalPrinter()
	SetGlobalPrinter(NewPrinter(WithWriter(buffer), PlainText()))
	defer SetGlobalPrinter(previous)

	fn()
	return buffer.String()
}
