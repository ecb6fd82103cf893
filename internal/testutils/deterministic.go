// Package testutils provides mocks and deterministic generators for look-and-feel tests.
package testutils

import (
	"fmt"
	"sync"
)

// GenerationSequence yields deterministic UUID-shaped generation stamps:
// 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, ...
type GenerationSequence struct {
	mu      sync.Mutex
	counter uint64
}

// NewGenerationSequence returns a sequence starting at 1.
func NewGenerationSequence() *GenerationSequence {
	return &GenerationSequence{}
}

// Next returns the next stamp. It matches the signature lookandfeel.WithGenerator expects.
func (g *GenerationSequence) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", g.counter, g.counter)
}

// Generation returns the stamp Next produced on its n-th call.
func Generation(n uint64) string {
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", n, n)
}
