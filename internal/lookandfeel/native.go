package lookandfeel

import (
	"sync"

	"lookandfeel/internal/native"
	"lookandfeel/pkg/lnftypes"
)

// NativeLookAndFeel answers queries straight from a native backend. Only processes allowed to
// talk to the platform use it.
type NativeLookAndFeel struct {
	backend native.Backend

	initOnce sync.Once
	initErr  error
}

// NewNativeLookAndFeel wraps backend.
func NewNativeLookAndFeel(backend native.Backend) *NativeLookAndFeel {
	return &NativeLookAndFeel{backend: backend}
}

// Backend returns the wrapped backend.
func (n *NativeLookAndFeel) Backend() native.Backend {
	return n.backend
}

// NativeInit initializes the backend once; later calls return the first result.
func (n *NativeLookAndFeel) NativeInit() error {
	n.initOnce.Do(func() {
		n.initErr = n.backend.Init()
	})
	return n.initErr
}

// Refresh asks the backend to re-read the platform, when it supports that.
func (n *NativeLookAndFeel) Refresh() error {
	if r, ok := n.backend.(native.Refresher); ok {
		return r.Refresh()
	}
	return nil
}

// GetInt implements lnftypes.LookAndFeel.
func (n *NativeLookAndFeel) GetInt(id lnftypes.IntID) (int32, bool) {
	return n.backend.Int(id)
}

// GetFloat implements lnftypes.LookAndFeel. NaN and infinite values are reported as absent.
func (n *NativeLookAndFeel) GetFloat(id lnftypes.FloatID) (float32, bool) {
	v, ok := n.backend.Float(id)
	if !ok || !lnftypes.Finite(v) {
		return 0, false
	}
	return v, true
}

// GetColor implements lnftypes.LookAndFeel.
func (n *NativeLookAndFeel) GetColor(id lnftypes.ColorID) (lnftypes.Color, bool) {
	return n.backend.Color(id)
}

// GetFont implements lnftypes.LookAndFeel. Fonts without a family are reported as absent.
func (n *NativeLookAndFeel) GetFont(id lnftypes.FontID) (lnftypes.Font, bool) {
	f, ok := n.backend.Font(id)
	if !ok || !f.Valid() {
		return lnftypes.Font{}, false
	}
	return f, true
}

// GetPasswordChar implements lnftypes.LookAndFeel.
func (n *NativeLookAndFeel) GetPasswordChar() uint16 {
	if c, ok := n.backend.PasswordChar(); ok && c != 0 {
		return c
	}
	return lnftypes.DefaultPasswordChar
}

// GetEchoPassword implements lnftypes.LookAndFeel.
func (n *NativeLookAndFeel) GetEchoPassword() bool {
	echo, ok := n.backend.EchoPassword()
	return ok && echo
}
