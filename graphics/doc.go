// Package graphics wraps csfml-graphics: images, textures, fonts and the
// drawables that use them.
//
// Drawables borrow the resources they display. A Text keeps its Font and a
// Sprite or shape keeps its Texture until the binding is replaced, cleared
// or the drawable is closed, and closing a resource that is still borrowed
// fails with errors.ErrOutstandingBorrow:
//
//	font, err := graphics.NewFontFromMemory(rt, ttf)
//	if err != nil {
//		return err
//	}
//	text, err := graphics.NewTextInit(rt, "hello", font, 24)
//	if err != nil {
//		return err
//	}
//	_ = font.Close() // fails, text still uses the font
//	_ = text.Close()
//	_ = font.Close() // destroys the font
//
// Custom shapes take their outline from a ShapeImpl the library calls back
// into, which requires a backend that supports callbacks.
//
// RenderWindow and RenderTexture are both a RenderTarget. The texture of a
// RenderTexture belongs to it: Close on that texture fails with
// errors.ErrNotOwner, and the render texture cannot be closed while
// drawables still use the texture.
package graphics
