// Package leaktest reports goroutines that outlive the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	drainDelay   = 50 * time.Millisecond
	pollInterval = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and compares it
// on Check.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker lets background goroutines settle and records the
// current count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines are still
// running after a short drain period.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := g.waitAtMost(g.before+tolerance, drainDelay*2)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

func (g *GoroutineChecker) waitAtMost(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if fn left goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	g := &GoroutineChecker{t: t}
	if n := g.waitAtMost(target, timeout); n > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", n, target)
	}
}
