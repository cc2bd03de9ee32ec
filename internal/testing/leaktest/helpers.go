// Package leaktest checks that background workers, schedulers and
// publishers release their goroutines on shutdown.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout  = 2 * time.Second
	settleInterval = 10 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline and later compares against it
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlive the
// baseline. Exiting goroutines get a short grace period to unwind.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	after, ok := waitFor(g.before+tolerance, settleTimeout)
	if !ok {
		g.t.Errorf("goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// VerifyNone checks for leaks when the test finishes, after its other
// cleanups have run
func VerifyNone(t testing.TB, tolerance int) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(tolerance) })
}

// waitFor polls until at most target goroutines remain or the timeout passes
func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(settleInterval)
	}
}
