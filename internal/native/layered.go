package native

import (
	"errors"
	"fmt"
	"strings"

	"lookandfeel/pkg/lnftypes"
)

// LayeredBackend asks each layer in order and returns the first answer.
type LayeredBackend struct {
	layers []Backend
}

// NewLayeredBackend stacks layers; earlier layers win.
func NewLayeredBackend(layers ...Backend) *LayeredBackend {
	return &LayeredBackend{layers: layers}
}

// Name lists the layer names, e.g. "layered(terminal,profile)".
func (l *LayeredBackend) Name() string {
	names := make([]string, 0, len(l.layers))
	for _, layer := range l.layers {
		names = append(names, layer.Name())
	}
	return "layered(" + strings.Join(names, ",") + ")"
}

// Init initializes every layer.
func (l *LayeredBackend) Init() error {
	var errs []error
	for _, layer := range l.layers {
		if err := layer.Init(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", layer.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Refresh refreshes every layer that supports it.
func (l *LayeredBackend) Refresh() error {
	var errs []error
	for _, layer := range l.layers {
		r, ok := layer.(Refresher)
		if !ok {
			continue
		}
		if err := r.Refresh(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", layer.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Int implements Backend.
func (l *LayeredBackend) Int(id lnftypes.IntID) (int32, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.Int(id); ok {
			return v, true
		}
	}
	return 0, false
}

// Float implements Backend. NaN and infinite answers fall through to the next layer.
func (l *LayeredBackend) Float(id lnftypes.FloatID) (float32, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.Float(id); ok && lnftypes.Finite(v) {
			return v, true
		}
	}
	return 0, false
}

// Color implements Backend.
func (l *LayeredBackend) Color(id lnftypes.ColorID) (lnftypes.Color, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.Color(id); ok {
			return v, true
		}
	}
	return 0, false
}

// Font implements Backend. Invalid fonts fall through to the next layer.
func (l *LayeredBackend) Font(id lnftypes.FontID) (lnftypes.Font, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.Font(id); ok && v.Valid() {
			return v, true
		}
	}
	return lnftypes.Font{}, false
}

// PasswordChar implements Backend. A zero answer falls through to the next layer.
func (l *LayeredBackend) PasswordChar() (uint16, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.PasswordChar(); ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}

// EchoPassword implements Backend.
func (l *LayeredBackend) EchoPassword() (bool, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.EchoPassword(); ok {
			return v, true
		}
	}
	return false, false
}

// New builds the backend named by kind: "profile", "terminal" or "layered" (terminal over
// profile).
func New(kind string, profileRef string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "profile":
		return NewProfileBackend(profileRef), nil
	case "terminal":
		return NewTerminalBackend(nil), nil
	case "layered":
		return NewLayeredBackend(NewTerminalBackend(nil), NewProfileBackend(profileRef)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected profile, terminal or layered)", kind)
	}
}
