package lookandfeel

import (
	"sync/atomic"

	"lookandfeel/internal/logger"
	"lookandfeel/pkg/lnftypes"
)

// RemoteLookAndFeel answers queries from a table received from the parent process. It never
// touches the platform.
//
// The table pointer is swapped atomically, so a query running concurrently with SetData sees
// either the old table or the new one in full.
type RemoteLookAndFeel struct {
	tables atomic.Pointer[lnftypes.FullLookAndFeel]
}

// NewRemoteLookAndFeel takes over table. A table is required; there is no empty state.
func NewRemoteLookAndFeel(table *lnftypes.FullLookAndFeel) (*RemoteLookAndFeel, error) {
	if table == nil {
		return nil, lnftypes.ErrNilTable
	}
	r := &RemoteLookAndFeel{}
	r.tables.Store(table)
	logger.TableEvent("installed", table.Generation(), table.Len())
	return r, nil
}

// NativeInit is a no-op; remote tables need no platform initialization.
func (r *RemoteLookAndFeel) NativeInit() error {
	return nil
}

// SetData replaces the whole table. The previous table is released.
func (r *RemoteLookAndFeel) SetData(table *lnftypes.FullLookAndFeel) error {
	if table == nil {
		return lnftypes.ErrNilTable
	}
	r.tables.Store(table)
	logger.TableEvent("replaced", table.Generation(), table.Len())
	return nil
}

// Table returns the table currently answering queries.
func (r *RemoteLookAndFeel) Table() *lnftypes.FullLookAndFeel {
	return r.tables.Load()
}

// GetInt implements lnftypes.LookAndFeel.
func (r *RemoteLookAndFeel) GetInt(id lnftypes.IntID) (int32, bool) {
	return r.tables.Load().Int(id)
}

// GetFloat implements lnftypes.LookAndFeel.
func (r *RemoteLookAndFeel) GetFloat(id lnftypes.FloatID) (float32, bool) {
	return r.tables.Load().Float(id)
}

// GetColor implements lnftypes.LookAndFeel.
func (r *RemoteLookAndFeel) GetColor(id lnftypes.ColorID) (lnftypes.Color, bool) {
	return r.tables.Load().Color(id)
}

// GetFont implements lnftypes.LookAndFeel.
func (r *RemoteLookAndFeel) GetFont(id lnftypes.FontID) (lnftypes.Font, bool) {
	f, ok := r.tables.Load().Font(id)
	if !ok || !f.Valid() {
		return lnftypes.Font{}, false
	}
	return f, true
}

// GetPasswordChar implements lnftypes.LookAndFeel.
func (r *RemoteLookAndFeel) GetPasswordChar() uint16 {
	return r.tables.Load().PasswordChar()
}

// GetEchoPassword implements lnftypes.LookAndFeel.
func (r *RemoteLookAndFeel) GetEchoPassword() bool {
	return r.tables.Load().EchoPassword()
}
