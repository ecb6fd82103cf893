// Package lookandfeel implements the two halves of theme sharing between processes: the
// Extractor that snapshots a native provider in the parent, and RemoteLookAndFeel that answers
// the same queries from a received snapshot in a child.
package lookandfeel

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"lookandfeel/internal/logger"
	"lookandfeel/pkg/lnftypes"
)

// refresher is implemented by sources that can re-read the platform after a theme change.
type refresher interface {
	Refresh() error
}

// Extractor builds full snapshots of a native provider and caches the latest one so that
// creating many child processes does not query the platform each time.
//
// The returned table is shared. Callers may read it freely but must not hand it out again
// after the next Invalidate; fetch a fresh one instead.
type Extractor struct {
	source        lnftypes.LookAndFeel
	newGeneration func() string
	log           *log.Logger

	mu          sync.Mutex
	cached      *lnftypes.FullLookAndFeel
	initialized bool
	stale       bool
	extractions int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithGenerator overrides how generation stamps are produced. Tests use it for determinism.
func WithGenerator(fn func() string) ExtractorOption {
	return func(e *Extractor) {
		e.newGeneration = fn
	}
}

// NewExtractor creates an Extractor over source, normally a *NativeLookAndFeel.
func NewExtractor(source lnftypes.LookAndFeel, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		source:        source,
		newGeneration: uuid.NewString,
		log:           logger.NewStyledLogger("extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractCurrent returns the cached table, building it first if there is none. Calls without
// an intervening Invalidate return the same pointer.
//
// Identifiers the source cannot answer are left out of the table. A source that fails to
// initialize or refresh is logged and yields whatever it can still answer.
func (e *Extractor) ExtractCurrent() *lnftypes.FullLookAndFeel {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cached != nil {
		return e.cached
	}

	if !e.initialized {
		if err := e.source.NativeInit(); err != nil {
			e.log.Error("Native initialization failed", "error", err)
		}
		e.initialized = true
	} else if e.stale {
		if r, ok := e.source.(refresher); ok {
			if err := r.Refresh(); err != nil {
				e.log.Warn("Refresh failed, extracting last known values", "error", err)
			}
		}
	}
	e.stale = false

	table := Collect(e.source, e.newGeneration())
	e.cached = table
	e.extractions++

	e.log.Info("Extracted look and feel", "generation", table.Generation(), "entries", table.Len())
	return table
}

// Invalidate drops the cached table. The next ExtractCurrent re-queries the source.
func (e *Extractor) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cached != nil {
		e.log.Debug("Cache invalidated", "generation", e.cached.Generation())
	}
	e.cached = nil
	e.stale = true
}

// Cached returns the cached table without building one.
func (e *Extractor) Cached() (*lnftypes.FullLookAndFeel, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cached, e.cached != nil
}

// Extractions returns how many full extractions have run.
func (e *Extractor) Extractions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.extractions
}

// Source returns the provider the Extractor snapshots.
func (e *Extractor) Source() lnftypes.LookAndFeel {
	return e.source
}
