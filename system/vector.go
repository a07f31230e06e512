package system

import "github.com/wippyai/gosfml/csfml"

// Vector2f is a 2D vector of float32 components.
type Vector2f csfml.Vector2f

// Vector2i is a 2D vector of int32 components.
type Vector2i csfml.Vector2i

// Vector2u is a 2D vector of uint32 components.
type Vector2u csfml.Vector2u

// Vector3f is a 3D vector of float32 components.
type Vector3f csfml.Vector3f

func (v Vector2f) Add(o Vector2f) Vector2f  { return Vector2f{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector2f) Sub(o Vector2f) Vector2f  { return Vector2f{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vector2f) Scale(k float32) Vector2f { return Vector2f{X: v.X * k, Y: v.Y * k} }
func (v Vector2i) Add(o Vector2i) Vector2i  { return Vector2i{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector2i) Sub(o Vector2i) Vector2i  { return Vector2i{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vector2u) Add(o Vector2u) Vector2u  { return Vector2u{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector3f) Add(o Vector3f) Vector3f  { return Vector3f{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }
func (v Vector3f) Scale(k float32) Vector3f { return Vector3f{X: v.X * k, Y: v.Y * k, Z: v.Z * k} }
func (v Vector2u) Vector2f() Vector2f       { return Vector2f{X: float32(v.X), Y: float32(v.Y)} }
func (v Vector2i) Vector2f() Vector2f       { return Vector2f{X: float32(v.X), Y: float32(v.Y)} }
