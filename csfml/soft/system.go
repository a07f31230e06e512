package soft

import (
	"time"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const kindClock = "sfClock"

type clockState struct {
	start time.Time
}

func (b *Backend) bindSystem() {
	s := &b.api.System
	s.Clock.Create = func() ffi.Ptr {
		return b.create(kindClock, &clockState{start: b.now()})
	}
	s.Clock.Copy = func(p ffi.Ptr) ffi.Ptr {
		c, ok := lookup[*clockState](b, p, kindClock)
		if !ok {
			return ffi.Null
		}
		cp := *c
		return b.copyOf(kindClock, &cp)
	}
	s.Clock.Destroy = func(p ffi.Ptr) { b.destroy(kindClock, p) }
	s.Clock.GetElapsedTime = func(p ffi.Ptr) csfml.Time {
		c, ok := lookup[*clockState](b, p, kindClock)
		if !ok {
			return csfml.Time{}
		}
		return csfml.Time{Microseconds: b.now().Sub(c.start).Microseconds()}
	}
	s.Clock.Restart = func(p ffi.Ptr) csfml.Time {
		c, ok := lookup[*clockState](b, p, kindClock)
		if !ok {
			return csfml.Time{}
		}
		now := b.now()
		elapsed := now.Sub(c.start)
		c.start = now
		return csfml.Time{Microseconds: elapsed.Microseconds()}
	}
	s.Sleep = func(t csfml.Time) {
		if t.Microseconds > 0 {
			time.Sleep(time.Duration(t.Microseconds) * time.Microsecond)
		}
	}
}
