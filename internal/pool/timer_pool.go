// Package pool recycles the timers that bound reply reads on streams without read deadlines.
package pool

import (
	"sync"
	"time"
)

var timers sync.Pool

// GetTimer returns a stopped-and-drained timer from the pool, reset to fire after d.
// Hand it back with PutTimer once the read it guards has finished.
func GetTimer(d time.Duration) *time.Timer {
	v := timers.Get()
	if v == nil {
		return time.NewTimer(d)
	}

	t, _ := v.(*time.Timer)
	if t.Reset(d) {
		select {
		case <-t.C:
		default:
		}
	}

	return t
}

// PutTimer stops t, drains a pending expiry and returns it to the pool.
// t must not be used afterwards.
func PutTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	timers.Put(t)
}
