package lnftypes

// LookAndFeel is the query surface every theme provider implements. The native-backed and
// the remote-backed variants satisfy it identically so callers never know which is active.
//
// The Get methods report absence through their boolean result instead of a zero value;
// callers pick their own fallbacks.
type LookAndFeel interface {
	// NativeInit prepares the provider. Providers without native state implement it as a no-op.
	NativeInit() error

	GetInt(id IntID) (int32, bool)
	GetFloat(id FloatID) (float32, bool)
	GetColor(id ColorID) (Color, bool)
	GetFont(id FontID) (Font, bool)

	// GetPasswordChar and GetEchoPassword always answer; they are scalars, not sparse maps.
	GetPasswordChar() uint16
	GetEchoPassword() bool
}

// DataReceiver is implemented by providers whose values arrive from elsewhere and can be
// replaced wholesale.
type DataReceiver interface {
	SetData(table *FullLookAndFeel) error
}

// Service defines the interface for services registered in the service registry.
type Service interface {
	Name() string
	Initialize() error
}
