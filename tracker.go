package variant

// Tracker is the payload lifetime hook: when one is installed, every
// payload construction registers a record and every destruction releases
// it, so leaked payloads (constructed but never destroyed) can be reported.
// The memtrack package provides the standard implementation.
type Tracker interface {
	Track(label string) uint64
	Release(id uint64) bool
}

var tracker Tracker

// SetTracker configures the package's lifetime tracker; nil disables
// tracking. Like SetLogger, this must be called before values are created.
func SetTracker(t Tracker) {
	tracker = t
}

func track(label string) uint64 {
	if tracker == nil {
		return 0
	}
	return tracker.Track(label)
}

func release(id uint64) {
	if tracker == nil || id == 0 {
		return
	}
	tracker.Release(id)
}
