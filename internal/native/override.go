package native

import "lookandfeel/pkg/lnftypes"

// OverrideBackend supplies only the two password scalars, taken from configuration. Stack it
// above a real backend with NewLayeredBackend.
type OverrideBackend struct {
	passwordChar *uint16
	echoPassword *bool
}

// NewOverrideBackend creates an override layer. Nil arguments leave the setting to lower layers.
func NewOverrideBackend(passwordChar *uint16, echoPassword *bool) *OverrideBackend {
	return &OverrideBackend{passwordChar: passwordChar, echoPassword: echoPassword}
}

// Empty reports whether the layer overrides nothing.
func (o *OverrideBackend) Empty() bool {
	return o.passwordChar == nil && o.echoPassword == nil
}

// Name returns "override".
func (o *OverrideBackend) Name() string { return "override" }

// Init is a no-op.
func (o *OverrideBackend) Init() error { return nil }

// Int, Float, Color and Font are never overridden.
func (o *OverrideBackend) Int(lnftypes.IntID) (int32, bool) { return 0, false }
func (o *OverrideBackend) Float(lnftypes.FloatID) (float32, bool) { return 0, false }
func (o *OverrideBackend) Color(lnftypes.ColorID) (lnftypes.Color, bool) { return 0, false }
func (o *OverrideBackend) Font(lnftypes.FontID) (lnftypes.Font, bool) { return lnftypes.Font{}, false }

// PasswordChar returns the configured mask character.
func (o *OverrideBackend) PasswordChar() (uint16, bool) {
	if o.passwordChar == nil {
		return 0, false
	}
	return *o.passwordChar, true
}

// EchoPassword returns the configured echo flag.
func (o *OverrideBackend) EchoPassword() (bool, bool) {
	if o.echoPassword == nil {
		return false, false
	}
	return *o.echoPassword, true
}

// WithOverrides stacks an override layer on base unless it overrides nothing.
func WithOverrides(base Backend, passwordChar *uint16, echoPassword *bool) Backend {
	o := NewOverrideBackend(passwordChar, echoPassword)
	if o.Empty() {
		return base
	}
	return NewLayeredBackend(o, base)
}
