package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsInScheduleOrder(t *testing.T) {
	q := NewQueue()
	var got []string
	q.Schedule(func() { got = append(got, "first") })
	q.Schedule(func() { got = append(got, "second") })

	require.Equal(t, 2, q.Len())
	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, uint64(1), q.Flushes())
}

func TestQueueWorkScheduledDuringFlushRunsAfterwards(t *testing.T) {
	q := NewQueue()
	var got []int
	q.Schedule(func() {
		got = append(got, 1)
		q.Schedule(func() { got = append(got, 3) })
	})
	q.Schedule(func() { got = append(got, 2) })

	assert.Equal(t, 3, q.Flush())
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestQueueReadySignalsOncePerBatch(t *testing.T) {
	q := NewQueue()
	q.Schedule(func() {})
	q.Schedule(func() {})

	select {
	case <-q.Ready():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ready signal")
	}
	select {
	case <-q.Ready():
		t.Fatal("expected a single ready signal for one batch")
	default:
	}

	q.Flush()
	q.Schedule(func() {})
	select {
	case <-q.Ready():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for second ready signal")
	}
}

func TestQueueFlushEmptyIsNoop(t *testing.T) {
	q := NewQueue()
	q.Schedule(nil)
	assert.Equal(t, 0, q.Flush())
	assert.Equal(t, uint64(0), q.Flushes())
}

func TestQueueConcurrentSchedule(t *testing.T) {
	q := NewQueue()
	const workers = 8
	const perWorker = 100

	var mu sync.Mutex
	count := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				q.Schedule(func() {
					mu.Lock()
					count++
					mu.Unlock()
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, q.Flush())
	assert.Equal(t, workers*perWorker, count)
}
