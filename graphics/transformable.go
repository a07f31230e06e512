package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/system"
)

type borrower interface {
	Borrow() ffi.Ptr
	BorrowMut() ffi.Ptr
}

// transformable provides position, rotation, scale and origin to the
// drawables that embed it.
type transformable struct {
	tf *csfml.TransformableAPI
	h  borrower
}

func (t transformable) Position() system.Vector2f {
	return system.Vector2f(t.tf.GetPosition(t.h.Borrow()))
}

func (t transformable) SetPosition(p system.Vector2f) {
	t.tf.SetPosition(t.h.BorrowMut(), csfml.Vector2f(p))
}

// Rotation returns the angle in degrees, in [0, 360).
func (t transformable) Rotation() float32 {
	return t.tf.GetRotation(t.h.Borrow())
}

func (t transformable) SetRotation(angle float32) {
	t.tf.SetRotation(t.h.BorrowMut(), angle)
}

func (t transformable) Scale() system.Vector2f {
	return system.Vector2f(t.tf.GetScale(t.h.Borrow()))
}

func (t transformable) SetScale(s system.Vector2f) {
	t.tf.SetScale(t.h.BorrowMut(), csfml.Vector2f(s))
}

// Origin is the local point that position, rotation and scale refer to.
func (t transformable) Origin() system.Vector2f {
	return system.Vector2f(t.tf.GetOrigin(t.h.Borrow()))
}

func (t transformable) SetOrigin(o system.Vector2f) {
	t.tf.SetOrigin(t.h.BorrowMut(), csfml.Vector2f(o))
}

// Move offsets the position.
func (t transformable) Move(offset system.Vector2f) {
	t.tf.Move(t.h.BorrowMut(), csfml.Vector2f(offset))
}

// Rotate adds angle degrees to the rotation.
func (t transformable) Rotate(angle float32) {
	t.tf.Rotate(t.h.BorrowMut(), angle)
}

// Transform returns the combined local-to-world transform.
func (t transformable) Transform() Transform {
	return TransformOf(t.tf.GetTransform(t.h.Borrow()))
}
