package audio

import (
	"sync"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

const deviceClaim = "audio-device"

// Device is the audio output of a runtime. It is claimed once: a second
// OpenDevice fails with errors.ErrClaimed until the first Device is closed.
type Device struct {
	rt       *runtime.Runtime
	release  func()
	once     sync.Once
	listener Listener
}

func OpenDevice(rt *runtime.Runtime) (*Device, error) {
	release, err := rt.Claim(deviceClaim)
	if err != nil {
		return nil, err
	}
	d := &Device{rt: rt, release: release}
	d.listener.api = &rt.API().Audio.Listener
	return d, nil
}

// Listener returns the point of view sounds are heard from.
func (d *Device) Listener() *Listener {
	return &d.listener
}

// RecorderAvailable reports whether the system has a capture device.
func (d *Device) RecorderAvailable() bool {
	return IsRecorderAvailable(d.rt)
}

// Close gives the device back so it can be opened again. The Listener stops
// working: using it afterwards panics.
func (d *Device) Close() error {
	d.once.Do(func() {
		d.listener.api = nil
		d.release()
	})
	return nil
}

// Listener is the position and orientation of the ear, plus the master
// volume.
type Listener struct {
	api *csfml.ListenerAPI
}

func (l *Listener) table() *csfml.ListenerAPI {
	if l.api == nil {
		panic(gerrors.Released("sfListener"))
	}
	return l.api
}

// SetGlobalVolume sets the master volume in [0, 100].
func (l *Listener) SetGlobalVolume(volume float32) {
	l.table().SetGlobalVolume(volume)
}

func (l *Listener) GlobalVolume() float32 {
	return l.table().GetGlobalVolume()
}

func (l *Listener) SetPosition(p system.Vector3f) {
	l.table().SetPosition(csfml.Vector3f(p))
}

func (l *Listener) Position() system.Vector3f {
	return system.Vector3f(l.table().GetPosition())
}

// SetDirection sets the forward vector. The default looks down -Z.
func (l *Listener) SetDirection(d system.Vector3f) {
	l.table().SetDirection(csfml.Vector3f(d))
}

func (l *Listener) Direction() system.Vector3f {
	return system.Vector3f(l.table().GetDirection())
}

// SetUpVector sets the up vector. The default is +Y.
func (l *Listener) SetUpVector(u system.Vector3f) {
	l.table().SetUpVector(csfml.Vector3f(u))
}

func (l *Listener) UpVector() system.Vector3f {
	return system.Vector3f(l.table().GetUpVector())
}
