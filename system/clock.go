package system

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

// Clock measures elapsed time from its creation or last restart.
type Clock struct {
	h *foreign.Handle[csfml.Clock]
}

// NewClock starts a clock.
func NewClock(rt *runtime.Runtime) (*Clock, error) {
	h, err := foreign.Acquire[csfml.Clock](rt, rt.API().System.Clock.Create())
	if err != nil {
		return nil, err
	}
	return &Clock{h: h}, nil
}

// Clone copies the clock, including its start point.
func (c *Clock) Clone() (*Clock, error) {
	h, err := foreign.Duplicate(c.h)
	if err != nil {
		return nil, err
	}
	return &Clock{h: h}, nil
}

// ElapsedTime returns the time since the clock started.
func (c *Clock) ElapsedTime() Time {
	return TimeOf(c.h.Runtime().API().System.Clock.GetElapsedTime(c.h.Borrow()))
}

// Restart puts the clock back to zero and returns the time elapsed before.
func (c *Clock) Restart() Time {
	return TimeOf(c.h.Runtime().API().System.Clock.Restart(c.h.BorrowMut()))
}

// Close destroys the clock.
func (c *Clock) Close() error {
	return c.h.Close()
}

// Sleep blocks the calling goroutine for d.
func Sleep(rt *runtime.Runtime, d Time) {
	rt.API().System.Sleep(d.C())
}
