// Package delegate provides an ordered callback list with subscription
// handles. A Dispatcher invokes its live callbacks in slot order on every
// Notify; subscriptions are removed individually by handle or all at once.
//
// Dispatchers follow the library's single-owner model: there is no
// internal locking, and callbacks must not mutate the dispatcher that is
// notifying them.
package delegate

// Handle identifies a subscription within one Dispatcher. Handles are
// slot indices: freed slots are reused lowest-first, so a handle is only
// meaningful until its subscription is removed.
type Handle uint32

// Invalid is the handle returned for rejected subscriptions. It never
// identifies a live subscription.
const Invalid Handle = ^Handle(0)

// Dispatcher invokes an ordered list of callbacks taking T.
// The zero value is an empty dispatcher ready to use.
type Dispatcher[T any] struct {
	slots []func(T)
}

// Subscribe registers fn and returns its handle. Freed slots are reused
// lowest-first. A nil fn is rejected with Invalid.
func (d *Dispatcher[T]) Subscribe(fn func(T)) Handle {
	if fn == nil {
		return Invalid
	}
	for i, s := range d.slots {
		if s == nil {
			d.slots[i] = fn
			return Handle(i)
		}
	}
	d.slots = append(d.slots, fn)
	return Handle(len(d.slots) - 1)
}

// Unsubscribe removes the subscription h. It reports false when h is
// Invalid, out of range, or already removed.
func (d *Dispatcher[T]) Unsubscribe(h Handle) bool {
	if h == Invalid || int(h) >= len(d.slots) || d.slots[h] == nil {
		return false
	}
	d.slots[h] = nil
	return true
}

// UnsubscribeAll removes every subscription and invalidates all handles.
func (d *Dispatcher[T]) UnsubscribeAll() {
	d.slots = nil
}

// Len returns the number of live subscriptions.
func (d *Dispatcher[T]) Len() int {
	n := 0
	for _, s := range d.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Notify invokes every live callback with v, in slot order.
func (d *Dispatcher[T]) Notify(v T) {
	for _, s := range d.slots {
		if s != nil {
			s(v)
		}
	}
}
