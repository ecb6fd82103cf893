package testutils

import (
	"sync"

	"lookandfeel/pkg/lnftypes"
)

// MockBackend is an in-memory native backend that counts every call, so tests can tell how
// often the platform was queried.
type MockBackend struct {
	mu sync.Mutex

	ints         map[lnftypes.IntID]int32
	floats       map[lnftypes.FloatID]float32
	colors       map[lnftypes.ColorID]lnftypes.Color
	fonts        map[lnftypes.FontID]lnftypes.Font
	passwordChar *uint16
	echoPassword *bool

	initErr    error
	refreshErr error

	InitCalls    int
	RefreshCalls int
	IntCalls     int
	FloatCalls   int
	ColorCalls   int
	FontCalls    int
}

// NewMockBackend creates an empty backend that supplies nothing.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		ints:   make(map[lnftypes.IntID]int32),
		floats: make(map[lnftypes.FloatID]float32),
		colors: make(map[lnftypes.ColorID]lnftypes.Color),
		fonts:  make(map[lnftypes.FontID]lnftypes.Font),
	}
}

// Name returns "mock".
func (m *MockBackend) Name() string { return "mock" }

// Init records the call and returns the configured error.
func (m *MockBackend) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitCalls++
	return m.initErr
}

// Refresh records the call and returns the configured error.
func (m *MockBackend) Refresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalls++
	return m.refreshErr
}

// SetInitError makes Init fail.
func (m *MockBackend) SetInitError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initErr = err
}

// SetRefreshError makes Refresh fail.
func (m *MockBackend) SetRefreshError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshErr = err
}

// SetInt makes the backend supply id.
func (m *MockBackend) SetInt(id lnftypes.IntID, v int32) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints[id] = v
	return m
}

// SetFloat makes the backend supply id.
func (m *MockBackend) SetFloat(id lnftypes.FloatID, v float32) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats[id] = v
	return m
}

// SetColor makes the backend supply id.
func (m *MockBackend) SetColor(id lnftypes.ColorID, v lnftypes.Color) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.colors[id] = v
	return m
}

// SetFont makes the backend supply id.
func (m *MockBackend) SetFont(id lnftypes.FontID, v lnftypes.Font) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[id] = v
	return m
}

// SetPasswordChar makes the backend supply a password character.
func (m *MockBackend) SetPasswordChar(c uint16) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passwordChar = &c
	return m
}

// SetEchoPassword makes the backend supply the echo flag.
func (m *MockBackend) SetEchoPassword(echo bool) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.echoPassword = &echo
	return m
}

// Reset removes every supplied value. Call counters are kept.
func (m *MockBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = make(map[lnftypes.IntID]int32)
	m.floats = make(map[lnftypes.FloatID]float32)
	m.colors = make(map[lnftypes.ColorID]lnftypes.Color)
	m.fonts = make(map[lnftypes.FontID]lnftypes.Font)
	m.passwordChar = nil
	m.echoPassword = nil
}

// Int implements native.Backend.
func (m *MockBackend) Int(id lnftypes.IntID) (int32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IntCalls++
	v, ok := m.ints[id]
	return v, ok
}

// Float implements native.Backend.
func (m *MockBackend) Float(id lnftypes.FloatID) (float32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FloatCalls++
	v, ok := m.floats[id]
	return v, ok
}

// Color implements native.Backend.
func (m *MockBackend) Color(id lnftypes.ColorID) (lnftypes.Color, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ColorCalls++
	v, ok := m.colors[id]
	return v, ok
}

// Font implements native.Backend.
func (m *MockBackend) Font(id lnftypes.FontID) (lnftypes.Font, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FontCalls++
	v, ok := m.fonts[id]
	return v, ok
}

// PasswordChar implements native.Backend.
func (m *MockBackend) PasswordChar() (uint16, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.passwordChar == nil {
		return 0, false
	}
	return *m.passwordChar, true
}

// EchoPassword implements native.Backend.
func (m *MockBackend) EchoPassword() (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.echoPassword == nil {
		return false, false
	}
	return *m.echoPassword, true
}

// FullPassCalls is the number of Int calls one full extraction makes.
func FullPassCalls() int {
	return len(lnftypes.AllIntIDs())
}

// Snapshot returns counters for assertions.
func (m *MockBackend) Snapshot() (ints, floats, colors, fonts int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.IntCalls, m.FloatCalls, m.ColorCalls, m.FontCalls
}
