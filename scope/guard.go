// Package scope provides single-shot cleanup guards. A Guard carries a
// callback and runs it at most once, whether explicitly, through defer, or
// through the container's payload-cleanup protocol when a *Guard is the
// live payload of a tagged value being destroyed.
package scope

import "github.com/wippyai/variant"

// Guard runs a callback at most once. Create one with New; Dismiss
// cancels the callback without running it.
type Guard struct {
	fn   func()
	done bool
}

var _ variant.Disposer = (*Guard)(nil)

// New returns a guard armed with fn. A nil fn yields an already-done
// guard.
func New(fn func()) *Guard {
	if fn == nil {
		return &Guard{done: true}
	}
	return &Guard{fn: fn}
}

// Run fires the callback if the guard is still armed. Further calls are
// no-ops, so `defer g.Run()` composes with earlier explicit release. A
// nil guard is a no-op, so a moved-from guard payload destroys cleanly.
func (g *Guard) Run() {
	if g == nil || g.done {
		return
	}
	g.done = true
	fn := g.fn
	g.fn = nil
	if fn != nil {
		fn()
	}
}

// Dismiss disarms the guard without running the callback.
func (g *Guard) Dismiss() {
	if g == nil {
		return
	}
	g.done = true
	g.fn = nil
}

// Done reports whether the guard has fired or been dismissed.
func (g *Guard) Done() bool { return g == nil || g.done }

// Dispose runs the guard. It implements variant.Disposer, so a *Guard
// payload fires exactly once when its containing value is destroyed.
func (g *Guard) Dispose() { g.Run() }
