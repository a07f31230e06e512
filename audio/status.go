package audio

import "github.com/wippyai/gosfml/csfml"

// Status is the playback state of a sound, music or stream.
type Status int32

const (
	Stopped = Status(csfml.StatusStopped)
	Paused  = Status(csfml.StatusPaused)
	Playing = Status(csfml.StatusPlaying)
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}
