package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRecordFile(t *testing.T) {
	assert.True(t, isRecordFile("/data/alec.alarms.yaml"))
	assert.True(t, isRecordFile("alec.inventory.YML"))
	assert.True(t, isRecordFile("cluster.situations.json"))
	assert.False(t, isRecordFile("alec.alarms.yaml.swp"))
	assert.False(t, isRecordFile("README"))
}

func TestWatchDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	w := New(dir, func() { calls.Add(1) }).WithDebounce(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "alec.alarms.yaml")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("alarms: []\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), func() {})
	assert.Error(t, w.Watch(context.Background()))
}
