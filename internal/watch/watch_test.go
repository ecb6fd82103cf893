package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("", 0, nil)
	assert.Error(t, err)

	w, err := New("profile.yaml", 0, nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ints: {}\n"), 0o644))

	changed := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() { changed <- struct{}{} })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("ints:\n  ScrollbarWidth: 12\n"), 0o644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.GreaterOrEqual(t, w.Signals(), 1)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	changed := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() { changed <- struct{}{} })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0o644))

	select {
	case <-changed:
		t.Fatal("unrelated file triggered a signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "theme.yaml"), 0, nil)
	require.NoError(t, err)
	assert.Error(t, w.Run(context.Background()))
}
