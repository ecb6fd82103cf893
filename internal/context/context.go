// Package context owns the per-process look-and-feel state: which role the process plays, the
// parent's Extractor, and the single LookAndFeel every query in the process resolves through.
package context

import (
	"errors"
	"fmt"
	"sync"

	"lookandfeel/internal/logger"
	"lookandfeel/internal/lookandfeel"
	"lookandfeel/pkg/lnftypes"
)

// Role is the part a process plays in theme sharing.
type Role int

// Roles.
const (
	RoleUnset Role = iota
	RoleParent
	RoleChild
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleParent:
		return "parent"
	case RoleChild:
		return "child"
	default:
		return "unset"
	}
}

// Errors returned by ProcessContext.
var (
	ErrNotParent   = errors.New("operation requires the parent role")
	ErrNotChild    = errors.New("operation requires the child role")
	ErrNoProvider  = errors.New("no look and feel installed")
	ErrNotReceiver = errors.New("active look and feel does not accept data")
)

// ProcessContext is the lifecycle object holding one process's theme state. It is created at
// startup, configured once for a role, and closed at shutdown.
type ProcessContext struct {
	mu        sync.RWMutex
	role      Role
	extractor *lookandfeel.Extractor
	active    lnftypes.LookAndFeel
	remote    *lookandfeel.RemoteLookAndFeel
}

// New creates a context with no role.
func New() *ProcessContext {
	return &ProcessContext{}
}

// NewParent creates a parent context over a native source.
func NewParent(source lnftypes.LookAndFeel, opts ...lookandfeel.ExtractorOption) *ProcessContext {
	ctx := New()
	ctx.role = RoleParent
	ctx.active = source
	ctx.extractor = lookandfeel.NewExtractor(source, opts...)
	return ctx
}

// NewChild creates a child context that answers from table.
func NewChild(table *lnftypes.FullLookAndFeel) (*ProcessContext, error) {
	ctx := New()
	ctx.role = RoleChild
	if err := ctx.InstallRemote(table); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Role returns the process role.
func (ctx *ProcessContext) Role() Role {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.role
}

// Extractor returns the parent's Extractor, or nil in a child.
func (ctx *ProcessContext) Extractor() *lookandfeel.Extractor {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.extractor
}

// LookAndFeel returns the active provider.
func (ctx *ProcessContext) LookAndFeel() (lnftypes.LookAndFeel, error) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	if ctx.active == nil {
		return nil, ErrNoProvider
	}
	return ctx.active, nil
}

// ExtractCurrent returns the parent's current table.
func (ctx *ProcessContext) ExtractCurrent() (*lnftypes.FullLookAndFeel, error) {
	e := ctx.Extractor()
	if e == nil {
		return nil, ErrNotParent
	}
	return e.ExtractCurrent(), nil
}

// Invalidate forwards a theme-change signal to the parent's Extractor.
func (ctx *ProcessContext) Invalidate() error {
	e := ctx.Extractor()
	if e == nil {
		return ErrNotParent
	}
	e.Invalidate()
	return nil
}

// InstallRemote makes table the process's look and feel. The first call creates the remote
// provider and switches an unset context to the child role; later calls replace its table.
func (ctx *ProcessContext) InstallRemote(table *lnftypes.FullLookAndFeel) error {
	if table == nil {
		return lnftypes.ErrNilTable
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	switch ctx.role {
	case RoleParent:
		return ErrNotChild
	case RoleUnset:
		ctx.role = RoleChild
	}

	if ctx.remote != nil {
		return ctx.remote.SetData(table)
	}

	remote, err := lookandfeel.NewRemoteLookAndFeel(table)
	if err != nil {
		return fmt.Errorf("failed to install look and feel: %w", err)
	}
	ctx.remote = remote
	ctx.active = remote
	logger.Debug("Remote look and feel installed", "role", ctx.role.String())
	return nil
}

// SetData replaces the active provider's table. It fails unless the active provider receives
// data, which only a child's does.
func (ctx *ProcessContext) SetData(table *lnftypes.FullLookAndFeel) error {
	ctx.mu.RLock()
	active := ctx.active
	ctx.mu.RUnlock()

	if active == nil {
		return ErrNoProvider
	}
	receiver, ok := active.(lnftypes.DataReceiver)
	if !ok {
		return ErrNotReceiver
	}
	return receiver.SetData(table)
}

// Close drops all state. The context can be configured again afterwards.
func (ctx *ProcessContext) Close() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.role = RoleUnset
	ctx.extractor = nil
	ctx.active = nil
	ctx.remote = nil
}
