package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(30 * time.Millisecond)
	}()

	checker.Check(0)
	wg.Wait()
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)
	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(1)
}

func TestWaitFor_TimesOut(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	n, ok := waitFor(0, 20*time.Millisecond)

	assert.False(t, ok)
	assert.Positive(t, n)
}

func TestVerifyNone_RunsAfterOtherCleanups(t *testing.T) {
	VerifyNone(t, 0)

	stop := make(chan struct{})
	go func() { <-stop }()
	// registered later, so it runs before the leak check
	t.Cleanup(func() { close(stop) })
}
