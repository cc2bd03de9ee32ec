package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	require.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	require.True(t, pool.TryEnqueue(&testJob{executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, time.Second, 5*time.Millisecond, "failed jobs do not stop the worker")

	pool.Stop()
	checker.Check(0)
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	// the buffer still has room, so a stopped pool must be checked first
	for range 100 {
		require.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	}
	assert.Zero(t, atomic.LoadInt32(&executed))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	// not started, so nothing drains the queue
	pool := NewPool(1, 1)
	defer pool.Stop()

	var executed int32
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	var cancelled atomic.Bool
	require.True(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})))

	<-started
	pool.Stop()
	assert.True(t, cancelled.Load())
}
