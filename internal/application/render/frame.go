package render

import (
	"sync/atomic"

	"github.com/younwookim/swipesnake/internal/application/system"
)

// Frame hands the latest snapshot from the loop goroutine to a frontend that
// draws on its own thread. Publishing replaces the whole snapshot at once.
type Frame struct {
	latest atomic.Pointer[system.Snapshot]
}

// Publish stores snap as the newest frame. Usable as a loop.RenderFunc.
func (f *Frame) Publish(snap system.Snapshot) {
	f.latest.Store(&snap)
}

// Latest returns the newest snapshot, or false if none was published yet
func (f *Frame) Latest() (system.Snapshot, bool) {
	p := f.latest.Load()
	if p == nil {
		return system.Snapshot{}, false
	}
	return *p, true
}

// Reset drops the stored snapshot
func (f *Frame) Reset() {
	f.latest.Store(nil)
}
