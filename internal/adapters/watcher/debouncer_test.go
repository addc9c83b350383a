package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attune/internal/adapters/watcher"
)

type batchRecorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *batchRecorder) record(paths []string) {
	sort.Strings(paths)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *batchRecorder) all() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/work/a")
		d.Add("/work/b")
		d.Add("/work/a")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.all(), 1)
		assert.Equal(t, []string{"/work/a", "/work/b"}, rec.all()[0])
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/work/a")
		time.Sleep(60 * time.Millisecond)
		d.Add("/work/b")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		// 120ms elapsed but the second Add restarted the window.
		assert.Empty(t, rec.all())

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.all(), 1)
		assert.Equal(t, []string{"/work/a", "/work/b"}, rec.all()[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/work/a")
		time.Sleep(150 * time.Millisecond)
		d.Add("/work/b")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.all(), 2)
		assert.Equal(t, []string{"/work/a"}, rec.all()[0])
		assert.Equal(t, []string{"/work/b"}, rec.all()[1])
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/work/a")
		d.Flush()

		require.Len(t, rec.all(), 1)
		assert.Equal(t, []string{"/work/a"}, rec.all()[0])

		// The stopped timer must not deliver a second batch.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.all(), 1)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	rec := &batchRecorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()
	assert.Empty(t, rec.all())
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(0, rec.record)

		d.Add("/work/a")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.all())

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.all(), 1)
	})
}
