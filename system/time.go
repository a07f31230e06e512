package system

import (
	"time"

	"github.com/wippyai/gosfml/csfml"
)

// Time is a span of time with microsecond precision.
type Time struct {
	us int64
}

// Zero is the empty span.
var Zero Time

// Seconds builds a span from seconds.
func Seconds(s float32) Time { return Time{us: int64(float64(s) * 1_000_000)} }

// Milliseconds builds a span from milliseconds.
func Milliseconds(ms int32) Time { return Time{us: int64(ms) * 1_000} }

// Microseconds builds a span from microseconds.
func Microseconds(us int64) Time { return Time{us: us} }

// FromDuration truncates d to microseconds.
func FromDuration(d time.Duration) Time { return Time{us: d.Microseconds()} }

// AsSeconds returns the span in seconds.
func (t Time) AsSeconds() float32 { return float32(float64(t.us) / 1_000_000) }

// AsMilliseconds returns the span in whole milliseconds.
func (t Time) AsMilliseconds() int32 { return int32(t.us / 1_000) }

// AsMicroseconds returns the span in microseconds.
func (t Time) AsMicroseconds() int64 { return t.us }

// Duration converts to a time.Duration.
func (t Time) Duration() time.Duration { return time.Duration(t.us) * time.Microsecond }

func (t Time) Add(o Time) Time { return Time{us: t.us + o.us} }
func (t Time) Sub(o Time) Time { return Time{us: t.us - o.us} }

func (t Time) String() string { return t.Duration().String() }

// C converts to the library's representation.
func (t Time) C() csfml.Time { return csfml.Time{Microseconds: t.us} }

// TimeOf converts from the library's representation.
func TimeOf(t csfml.Time) Time { return Time{us: t.Microseconds} }
