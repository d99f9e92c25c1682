package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchDebouncesChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.json")
	assert.Nil(t, os.WriteFile(path, fixture(t), 0644))

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Watch(ctx, path, 5*time.Millisecond, 50*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
		close(done)
	}()

	// initial run
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)

	// a burst of saves collapses into one run
	base := time.Now().Add(time.Hour)
	for i := 0; i < 3; i++ {
		mt := base.Add(time.Duration(i) * time.Second)
		assert.Nil(t, os.Chtimes(path, mt, mt))
		time.Sleep(10 * time.Millisecond)
	}
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 2 }, time.Second, time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchDropsPendingChangeOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.json")
	assert.Nil(t, os.WriteFile(path, fixture(t), 0644))

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Watch(ctx, path, 5*time.Millisecond, 100*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
		close(done)
	}()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)

	mt := time.Now().Add(time.Hour)
	assert.Nil(t, os.Chtimes(path, mt, mt))
	// let the change be seen but not yet run
	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
