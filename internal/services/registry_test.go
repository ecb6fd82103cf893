package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock service for testing
type MockService struct {
	name             string
	initializeCalled bool
	initializeError  error
}

func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

func (m *MockService) Name() string {
	return m.name
}

func (m *MockService) Initialize() error {
	m.initializeCalled = true
	return m.initializeError
}

func TestRegistry_RegisterService(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterService(NewMockService("one")))
	require.NoError(t, registry.RegisterService(NewMockService("two")))

	err := registry.RegisterService(NewMockService("one"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Len(t, registry.GetAllServices(), 2)
}

func TestRegistry_GetService(t *testing.T) {
	registry := NewRegistry()
	svc := NewMockService("one")
	require.NoError(t, registry.RegisterService(svc))

	got, err := registry.GetService("one")
	require.NoError(t, err)
	assert.Same(t, svc, got)

	_, err = registry.GetService("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistry_InitializeAll(t *testing.T) {
	registry := NewRegistry()
	a, b := NewMockService("a"), NewMockService("b")
	require.NoError(t, registry.RegisterService(a))
	require.NoError(t, registry.RegisterService(b))

	require.NoError(t, registry.InitializeAll())
	assert.True(t, a.initializeCalled)
	assert.True(t, b.initializeCalled)
}

func TestRegistry_InitializeAll_WithError(t *testing.T) {
	registry := NewRegistry()
	failing := NewMockService("failing")
	failing.initializeError = errors.New("boom")
	require.NoError(t, registry.RegisterService(failing))

	err := registry.InitializeAll()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize service failing")
}

func TestRegistry_GetAllServicesReturnsCopy(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.RegisterService(NewMockService("one")))

	all := registry.GetAllServices()
	delete(all, "one")

	_, err := registry.GetService("one")
	assert.NoError(t, err)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("svc-%d", i)
			assert.NoError(t, registry.RegisterService(NewMockService(name)))
			_, err := registry.GetService(name)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, registry.GetAllServices(), 20)
}

func TestRegisterDefaults(t *testing.T) {
	original := GetGlobalRegistry()
	t.Cleanup(func() { SetGlobalRegistry(original) })

	registry := NewRegistry()
	SetGlobalRegistry(registry)
	require.NoError(t, RegisterDefaults(registry))
	require.NoError(t, registry.InitializeAll())

	for _, name := range []string{"lookandfeel", "render", "diff"} {
		_, err := registry.GetService(name)
		assert.NoError(t, err, name)
	}

	_, err := GetGlobalLookAndFeelService()
	assert.NoError(t, err)
	_, err = GetGlobalRenderService()
	assert.NoError(t, err)
	_, err = GetGlobalDiffService()
	assert.NoError(t, err)

	assert.Error(t, RegisterDefaults(registry), "registering twice fails")
}

func TestGlobalService_WrongType(t *testing.T) {
	original := GetGlobalRegistry()
	t.Cleanup(func() { SetGlobalRegistry(original) })

	registry := NewRegistry()
	SetGlobalRegistry(registry)
	require.NoError(t, registry.RegisterService(NewMockService("render")))

	_, err := GetGlobalRenderService()
	assert.Error(t, err)
}
