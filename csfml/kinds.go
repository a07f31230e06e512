package csfml

import "github.com/wippyai/gosfml/ffi"

// Resource kinds. Each is a zero-size marker naming the C type and the
// destructor (and copy, where the library offers one) that go with it.
type (
	Image               struct{}
	Texture             struct{}
	Font                struct{}
	Text                struct{}
	Sprite              struct{}
	Shape               struct{}
	CircleShape         struct{}
	RectangleShape      struct{}
	ConvexShape         struct{}
	RenderWindow        struct{}
	RenderTexture       struct{}
	Window              struct{}
	Clock               struct{}
	SoundBuffer         struct{}
	Sound               struct{}
	Music               struct{}
	SoundStream         struct{}
	SoundRecorder       struct{}
	SoundBufferRecorder struct{}
)

func (Image) KindName() string                 { return "sfImage" }
func (Image) Destroy(api *API, p ffi.Ptr)      { api.Graphics.Image.Destroy(p) }
func (Image) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.Graphics.Image.Copy(p) }

func (Texture) KindName() string                 { return "sfTexture" }
func (Texture) Destroy(api *API, p ffi.Ptr)      { api.Graphics.Texture.Destroy(p) }
func (Texture) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.Graphics.Texture.Copy(p) }

func (Font) KindName() string                 { return "sfFont" }
func (Font) Destroy(api *API, p ffi.Ptr)      { api.Graphics.Font.Destroy(p) }
func (Font) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.Graphics.Font.Copy(p) }

func (Text) KindName() string                 { return "sfText" }
func (Text) Destroy(api *API, p ffi.Ptr)      { api.Graphics.Text.Destroy(p) }
func (Text) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.Graphics.Text.Copy(p) }

func (Sprite) KindName() string                 { return "sfSprite" }
func (Sprite) Destroy(api *API, p ffi.Ptr)      { api.Graphics.Sprite.Destroy(p) }
func (Sprite) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.Graphics.Sprite.Copy(p) }

func (Shape) KindName() string            { return "sfShape" }
func (Shape) Destroy(api *API, p ffi.Ptr) { api.Graphics.Shape.Destroy(p) }

func (CircleShape) KindName() string            { return "sfCircleShape" }
func (CircleShape) Destroy(api *API, p ffi.Ptr) { api.Graphics.CircleShape.Destroy(p) }
func (CircleShape) Copy(api *API, p ffi.Ptr) ffi.Ptr {
	return api.Graphics.CircleShape.Copy(p)
}

func (RectangleShape) KindName() string            { return "sfRectangleShape" }
func (RectangleShape) Destroy(api *API, p ffi.Ptr) { api.Graphics.RectangleShape.Destroy(p) }
func (RectangleShape) Copy(api *API, p ffi.Ptr) ffi.Ptr {
	return api.Graphics.RectangleShape.Copy(p)
}

func (ConvexShape) KindName() string            { return "sfConvexShape" }
func (ConvexShape) Destroy(api *API, p ffi.Ptr) { api.Graphics.ConvexShape.Destroy(p) }
func (ConvexShape) Copy(api *API, p ffi.Ptr) ffi.Ptr {
	return api.Graphics.ConvexShape.Copy(p)
}

func (RenderTexture) KindName() string            { return "sfRenderTexture" }
func (RenderTexture) Destroy(api *API, p ffi.Ptr) { api.Graphics.RenderTexture.Destroy(p) }

func (RenderWindow) KindName() string            { return "sfRenderWindow" }
func (RenderWindow) Destroy(api *API, p ffi.Ptr) { api.Graphics.RenderWindow.Destroy(p) }

func (Window) KindName() string            { return "sfWindow" }
func (Window) Destroy(api *API, p ffi.Ptr) { api.Window.Window.Destroy(p) }

func (Clock) KindName() string                 { return "sfClock" }
func (Clock) Destroy(api *API, p ffi.Ptr)      { api.System.Clock.Destroy(p) }
func (Clock) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.System.Clock.Copy(p) }

func (SoundBuffer) KindName() string            { return "sfSoundBuffer" }
func (SoundBuffer) Destroy(api *API, p ffi.Ptr) { api.Audio.SoundBuffer.Destroy(p) }
func (SoundBuffer) Copy(api *API, p ffi.Ptr) ffi.Ptr {
	return api.Audio.SoundBuffer.Copy(p)
}

func (Sound) KindName() string                 { return "sfSound" }
func (Sound) Destroy(api *API, p ffi.Ptr)      { api.Audio.Sound.Destroy(p) }
func (Sound) Copy(api *API, p ffi.Ptr) ffi.Ptr { return api.Audio.Sound.Copy(p) }

func (Music) KindName() string            { return "sfMusic" }
func (Music) Destroy(api *API, p ffi.Ptr) { api.Audio.Music.Destroy(p) }

func (SoundStream) KindName() string            { return "sfSoundStream" }
func (SoundStream) Destroy(api *API, p ffi.Ptr) { api.Audio.SoundStream.Destroy(p) }

func (SoundRecorder) KindName() string            { return "sfSoundRecorder" }
func (SoundRecorder) Destroy(api *API, p ffi.Ptr) { api.Audio.SoundRecorder.Destroy(p) }

func (SoundBufferRecorder) KindName() string { return "sfSoundBufferRecorder" }
func (SoundBufferRecorder) Destroy(api *API, p ffi.Ptr) {
	api.Audio.SoundBufferRecorder.Destroy(p)
}
