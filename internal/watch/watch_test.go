package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, file string, rebuild RebuildFunc) *Watcher {
	t.Helper()
	w, err := New([]string{file}, rebuild)
	require.NoError(t, err)
	w.debounceTime = 20 * time.Millisecond
	return w
}

func TestRun_RebuildsAfterWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o600))

	rebuilt := make(chan struct{}, 8)
	w := newTestWatcher(t, file, func(ctx context.Context) error {
		rebuilt <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Let the watcher start before producing events; a burst of writes
	// must settle into a rebuild rather than firing once per event.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte("[]"), 0o600))
	}

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after file change")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRun_ContinuesAfterRebuildFailure(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o600))

	rebuilds := make(chan struct{}, 8)
	first := true
	// The rebuild func only ever runs on Run's goroutine.
	w := newTestWatcher(t, file, func(ctx context.Context) error {
		rebuilds <- struct{}{}
		if first {
			first = false
			return errors.New("broken build")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("[1]"), 0o600))
	select {
	case <-rebuilds:
	case <-time.After(5 * time.Second):
		t.Fatal("first rebuild never ran")
	}

	// The failure above must not stop the loop.
	require.NoError(t, os.WriteFile(file, []byte("[2]"), 0o600))
	select {
	case <-rebuilds:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher stopped after failed rebuild")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
