// Package native contains the backends a parent process queries for authoritative
// appearance metrics. Child processes never construct a backend.
package native

import "lookandfeel/pkg/lnftypes"

// Backend answers one query per identifier. A false result means the platform does not
// supply that metric.
type Backend interface {
	Name() string
	Init() error

	Int(id lnftypes.IntID) (int32, bool)
	Float(id lnftypes.FloatID) (float32, bool)
	Color(id lnftypes.ColorID) (lnftypes.Color, bool)
	Font(id lnftypes.FontID) (lnftypes.Font, bool)
	PasswordChar() (uint16, bool)
	EchoPassword() (bool, bool)
}

// Refresher is implemented by backends that can re-read the platform after a theme change.
type Refresher interface {
	Refresh() error
}
