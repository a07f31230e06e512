package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

// Drawable is implemented by the objects a RenderTarget can draw: Text,
// Sprite, Shape, CircleShape, RectangleShape and ConvexShape.
type Drawable interface {
	draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates)
}

// BlendFactor selects a term of the blending equation.
type BlendFactor int32

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
)

// BlendEquation combines the source and destination terms.
type BlendEquation int32

const (
	EquationAdd BlendEquation = iota
	EquationSubtract
	EquationReverseSubtract
)

// BlendMode describes how drawn pixels mix with the target.
type BlendMode struct {
	ColorSrcFactor BlendFactor
	ColorDstFactor BlendFactor
	ColorEquation  BlendEquation
	AlphaSrcFactor BlendFactor
	AlphaDstFactor BlendFactor
	AlphaEquation  BlendEquation
}

// Predefined blend modes.
var (
	BlendAlpha    = BlendMode{FactorSrcAlpha, FactorOneMinusSrcAlpha, EquationAdd, FactorOne, FactorOneMinusSrcAlpha, EquationAdd}
	BlendAdd      = BlendMode{FactorSrcAlpha, FactorOne, EquationAdd, FactorOne, FactorOne, EquationAdd}
	BlendMultiply = BlendMode{FactorDstColor, FactorZero, EquationAdd, FactorDstColor, FactorZero, EquationAdd}
	BlendNone     = BlendMode{FactorOne, FactorZero, EquationAdd, FactorOne, FactorZero, EquationAdd}
)

func (m BlendMode) c() csfml.BlendMode {
	return csfml.BlendMode{
		ColorSrcFactor: int32(m.ColorSrcFactor),
		ColorDstFactor: int32(m.ColorDstFactor),
		ColorEquation:  int32(m.ColorEquation),
		AlphaSrcFactor: int32(m.AlphaSrcFactor),
		AlphaDstFactor: int32(m.AlphaDstFactor),
		AlphaEquation:  int32(m.AlphaEquation),
	}
}

// RenderStates overrides how one draw call is rendered.
type RenderStates struct {
	BlendMode BlendMode
	Transform Transform
	// Texture replaces the drawable's own texture when set.
	Texture *Texture
}

// DefaultRenderStates returns alpha blending, the identity transform and no
// texture override.
func DefaultRenderStates() RenderStates {
	return RenderStates{BlendMode: BlendAlpha, Transform: Identity()}
}

// c converts the states for one call. The texture, if any, is borrowed for
// that call only.
func (s RenderStates) c() csfml.RenderStates {
	out := csfml.RenderStates{
		BlendMode: s.BlendMode.c(),
		Transform: s.Transform.C(),
	}
	if s.Texture != nil {
		out.Texture = s.Texture.h.Borrow()
	}
	return out
}
