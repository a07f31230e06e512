package csfml

import (
	"unsafe"

	"github.com/wippyai/gosfml/ffi"
)

// API is the function table of the CSFML libraries.
type API struct {
	System   SystemAPI   `sym:"" lib:"system"`
	Window   WindowAPI   `sym:"" lib:"window"`
	Graphics GraphicsAPI `sym:"" lib:"graphics"`
	Audio    AudioAPI    `sym:"" lib:"audio"`

	// Memory reads data the library returns by address.
	Memory Memory

	// NewCallback makes a Go function callable from the library.
	// Backends that cannot call back into Go return an Unsupported error.
	NewCallback func(fn any) (Callback, error)

	missing []string
}

// SystemAPI is csfml-system.
type SystemAPI struct {
	Clock ClockAPI   `sym:"sfClock_"`
	Sleep func(Time) `sym:"sfSleep"`
}

type ClockAPI struct {
	Create         func() ffi.Ptr        `sym:"create"`
	Copy           func(ffi.Ptr) ffi.Ptr `sym:"copy"`
	Destroy        func(ffi.Ptr)         `sym:"destroy"`
	GetElapsedTime func(ffi.Ptr) Time    `sym:"getElapsedTime"`
	Restart        func(ffi.Ptr) Time    `sym:"restart"`
}

// WindowAPI is csfml-window.
type WindowAPI struct {
	Window    WindowFuncs  `sym:"sfWindow_"`
	Mouse     MouseAPI     `sym:"sfMouse_"`
	Keyboard  KeyboardAPI  `sym:"sfKeyboard_"`
	VideoMode VideoModeAPI `sym:"sfVideoMode_"`
}

// WindowFuncs covers sfWindow. The same shape is shared by sfRenderWindow.
type WindowFuncs struct {
	CreateUnicode          func(mode VideoMode, title *uint32, style uint32, settings *ContextSettings) ffi.Ptr `sym:"createUnicode"`
	Destroy                func(ffi.Ptr)                                                                        `sym:"destroy"`
	Close                  func(ffi.Ptr)                                                                        `sym:"close"`
	IsOpen                 func(ffi.Ptr) ffi.Bool                                                               `sym:"isOpen"`
	PollEvent              func(ffi.Ptr, *Event) ffi.Bool                                                       `sym:"pollEvent"`
	WaitEvent              func(ffi.Ptr, *Event) ffi.Bool                                                       `sym:"waitEvent"`
	Display                func(ffi.Ptr)                                                                        `sym:"display"`
	SetUnicodeTitle        func(ffi.Ptr, *uint32)                                                               `sym:"setUnicodeTitle"`
	SetVisible             func(ffi.Ptr, ffi.Bool)                                                              `sym:"setVisible"`
	SetVerticalSyncEnabled func(ffi.Ptr, ffi.Bool)                                                              `sym:"setVerticalSyncEnabled"`
	SetKeyRepeatEnabled    func(ffi.Ptr, ffi.Bool)                                                              `sym:"setKeyRepeatEnabled"`
	SetMouseCursorVisible  func(ffi.Ptr, ffi.Bool)                                                              `sym:"setMouseCursorVisible"`
	SetFramerateLimit      func(ffi.Ptr, uint32)                                                                `sym:"setFramerateLimit"`
	GetSize                func(ffi.Ptr) Vector2u                                                               `sym:"getSize"`
	SetSize                func(ffi.Ptr, Vector2u)                                                              `sym:"setSize"`
	GetPosition            func(ffi.Ptr) Vector2i                                                               `sym:"getPosition"`
	SetPosition            func(ffi.Ptr, Vector2i)                                                              `sym:"setPosition"`
	GetSettings            func(ffi.Ptr) ContextSettings                                                        `sym:"getSettings"`
	SetActive              func(ffi.Ptr, ffi.Bool) ffi.Bool                                                     `sym:"setActive"`
	SetIcon                func(window ffi.Ptr, width, height uint32, pixels unsafe.Pointer)                    `sym:"setIcon" rgba:"true"`
	RequestFocus           func(ffi.Ptr)                                                                        `sym:"requestFocus"`
	HasFocus               func(ffi.Ptr) ffi.Bool                                                               `sym:"hasFocus"`
	SetJoystickThreshold   func(ffi.Ptr, float32)                                                               `sym:"setJoystickThreshold"`
	SetMouseCursorGrabbed  func(ffi.Ptr, ffi.Bool)                                                              `sym:"setMouseCursorGrabbed"`
}

type MouseAPI struct {
	GetPosition func(relativeTo ffi.Ptr) Vector2i      `sym:"getPosition"`
	SetPosition func(pos Vector2i, relativeTo ffi.Ptr) `sym:"setPosition"`
}

type KeyboardAPI struct {
	IsKeyPressed func(key int32) ffi.Bool `sym:"isKeyPressed"`
}

type VideoModeAPI struct {
	GetDesktopMode func() VideoMode              `sym:"getDesktopMode"`
	IsValid        func(mode VideoMode) ffi.Bool `sym:"isValid"`
}

// GraphicsAPI is csfml-graphics.
type GraphicsAPI struct {
	Image          ImageAPI          `sym:"sfImage_"`
	Texture        TextureAPI        `sym:"sfTexture_"`
	Font           FontAPI           `sym:"sfFont_"`
	Text           TextAPI           `sym:"sfText_"`
	Sprite         SpriteAPI         `sym:"sfSprite_"`
	Shape          ShapeAPI          `sym:"sfShape_"`
	CircleShape    CircleShapeAPI    `sym:"sfCircleShape_"`
	RectangleShape RectangleShapeAPI `sym:"sfRectangleShape_"`
	ConvexShape    ConvexShapeAPI    `sym:"sfConvexShape_"`
	RenderWindow   RenderWindowAPI   `sym:"sfRenderWindow_"`
	RenderTexture  RenderTextureAPI  `sym:"sfRenderTexture_"`
}

type ImageAPI struct {
	Create              func(width, height uint32) ffi.Ptr                        `sym:"create"`
	CreateFromColor     func(width, height uint32, color Color) ffi.Ptr           `sym:"createFromColor"`
	CreateFromPixels    func(width, height uint32, pixels unsafe.Pointer) ffi.Ptr `sym:"createFromPixels" rgba:"true"`
	CreateFromFile      func(path string) ffi.Ptr                                 `sym:"createFromFile"`
	CreateFromMemory    func(data unsafe.Pointer, size uintptr) ffi.Ptr           `sym:"createFromMemory"`
	Copy                func(ffi.Ptr) ffi.Ptr                                     `sym:"copy"`
	Destroy             func(ffi.Ptr)                                             `sym:"destroy"`
	SaveToFile          func(img ffi.Ptr, path string) ffi.Bool                   `sym:"saveToFile"`
	GetSize             func(ffi.Ptr) Vector2u                                    `sym:"getSize"`
	SetPixel            func(img ffi.Ptr, x, y uint32, color Color)               `sym:"setPixel"`
	GetPixel            func(img ffi.Ptr, x, y uint32) Color                      `sym:"getPixel"`
	GetPixelsPtr        func(ffi.Ptr) ffi.Ptr                                     `sym:"getPixelsPtr"`
	FlipHorizontally    func(ffi.Ptr)                                             `sym:"flipHorizontally"`
	FlipVertically      func(ffi.Ptr)                                             `sym:"flipVertically"`
	CreateMaskFromColor func(img ffi.Ptr, color Color, alpha uint8)               `sym:"createMaskFromColor"`
}

type TextureAPI struct {
	Create           func(width, height uint32) ffi.Ptr                             `sym:"create"`
	CreateFromImage  func(img ffi.Ptr, area *IntRect) ffi.Ptr                       `sym:"createFromImage"`
	CreateFromFile   func(path string, area *IntRect) ffi.Ptr                       `sym:"createFromFile"`
	CreateFromMemory func(data unsafe.Pointer, size uintptr, area *IntRect) ffi.Ptr `sym:"createFromMemory"`
	Copy             func(ffi.Ptr) ffi.Ptr                                          `sym:"copy"`
	Destroy          func(ffi.Ptr)                                                  `sym:"destroy"`
	GetSize          func(ffi.Ptr) Vector2u                                         `sym:"getSize"`
	CopyToImage      func(ffi.Ptr) ffi.Ptr                                          `sym:"copyToImage"`
	SetSmooth        func(ffi.Ptr, ffi.Bool)                                        `sym:"setSmooth"`
	IsSmooth         func(ffi.Ptr) ffi.Bool                                         `sym:"isSmooth"`
	SetRepeated      func(ffi.Ptr, ffi.Bool)                                        `sym:"setRepeated"`
	IsRepeated       func(ffi.Ptr) ffi.Bool                                         `sym:"isRepeated"`
	UpdateFromImage  func(tex, img ffi.Ptr, x, y uint32)                            `sym:"updateFromImage"`
}

type FontAPI struct {
	CreateFromFile   func(path string) ffi.Ptr                       `sym:"createFromFile"`
	CreateFromMemory func(data unsafe.Pointer, size uintptr) ffi.Ptr `sym:"createFromMemory" retain:"true"`
	Copy             func(ffi.Ptr) ffi.Ptr                           `sym:"copy"`
	Destroy          func(ffi.Ptr)                                   `sym:"destroy"`
	// GetInfo returns sfFontInfo, whose only member is the family name;
	// it travels in a single register as a const char*.
	GetInfo        func(ffi.Ptr) ffi.Ptr                   `sym:"getInfo"`
	GetLineSpacing func(font ffi.Ptr, size uint32) float32 `sym:"getLineSpacing"`
}

// TransformableAPI is the sfTransformable surface every drawable repeats
// under its own prefix.
type TransformableAPI struct {
	SetPosition  func(ffi.Ptr, Vector2f) `sym:"setPosition"`
	GetPosition  func(ffi.Ptr) Vector2f  `sym:"getPosition"`
	SetRotation  func(ffi.Ptr, float32)  `sym:"setRotation"`
	GetRotation  func(ffi.Ptr) float32   `sym:"getRotation"`
	SetScale     func(ffi.Ptr, Vector2f) `sym:"setScale"`
	GetScale     func(ffi.Ptr) Vector2f  `sym:"getScale"`
	SetOrigin    func(ffi.Ptr, Vector2f) `sym:"setOrigin"`
	GetOrigin    func(ffi.Ptr) Vector2f  `sym:"getOrigin"`
	Move         func(ffi.Ptr, Vector2f) `sym:"move"`
	Rotate       func(ffi.Ptr, float32)  `sym:"rotate"`
	GetTransform func(ffi.Ptr) Transform `sym:"getTransform"`
}

type TextAPI struct {
	TransformableAPI

	Create           func() ffi.Ptr           `sym:"create"`
	Copy             func(ffi.Ptr) ffi.Ptr    `sym:"copy"`
	Destroy          func(ffi.Ptr)            `sym:"destroy"`
	SetUnicodeString func(ffi.Ptr, *uint32)   `sym:"setUnicodeString"`
	GetUnicodeString func(ffi.Ptr) ffi.Ptr    `sym:"getUnicodeString"`
	SetFont          func(text, font ffi.Ptr) `sym:"setFont"`
	GetFont          func(ffi.Ptr) ffi.Ptr    `sym:"getFont"`
	SetCharacterSize func(ffi.Ptr, uint32)    `sym:"setCharacterSize"`
	GetCharacterSize func(ffi.Ptr) uint32     `sym:"getCharacterSize"`
	SetStyle         func(ffi.Ptr, uint32)    `sym:"setStyle"`
	GetStyle         func(ffi.Ptr) uint32     `sym:"getStyle"`
	SetFillColor     func(ffi.Ptr, Color)     `sym:"setFillColor"`
	GetFillColor     func(ffi.Ptr) Color      `sym:"getFillColor"`
	GetLocalBounds   func(ffi.Ptr) FloatRect  `sym:"getLocalBounds"`
	GetGlobalBounds  func(ffi.Ptr) FloatRect  `sym:"getGlobalBounds"`
}

type SpriteAPI struct {
	TransformableAPI

	Create          func() ffi.Ptr                                    `sym:"create"`
	Copy            func(ffi.Ptr) ffi.Ptr                             `sym:"copy"`
	Destroy         func(ffi.Ptr)                                     `sym:"destroy"`
	SetTexture      func(sprite, texture ffi.Ptr, resetRect ffi.Bool) `sym:"setTexture"`
	GetTexture      func(ffi.Ptr) ffi.Ptr                             `sym:"getTexture"`
	SetTextureRect  func(ffi.Ptr, IntRect)                            `sym:"setTextureRect"`
	GetTextureRect  func(ffi.Ptr) IntRect                             `sym:"getTextureRect"`
	SetColor        func(ffi.Ptr, Color)                              `sym:"setColor"`
	GetColor        func(ffi.Ptr) Color                               `sym:"getColor"`
	GetLocalBounds  func(ffi.Ptr) FloatRect                           `sym:"getLocalBounds"`
	GetGlobalBounds func(ffi.Ptr) FloatRect                           `sym:"getGlobalBounds"`
}

// ShapeAPI covers sfShape, whose geometry comes from two callbacks.
type ShapeAPI struct {
	TransformableAPI

	Create              func(getPointCount, getPoint Callback, user uintptr) ffi.Ptr `sym:"create"`
	Destroy             func(ffi.Ptr)                                                `sym:"destroy"`
	Update              func(ffi.Ptr)                                                `sym:"update"`
	GetPointCount       func(ffi.Ptr) uintptr                                        `sym:"getPointCount"`
	GetPoint            func(shape ffi.Ptr, index uintptr) Vector2f                  `sym:"getPoint"`
	SetTexture          func(shape, texture ffi.Ptr, resetRect ffi.Bool)             `sym:"setTexture"`
	GetTexture          func(ffi.Ptr) ffi.Ptr                                        `sym:"getTexture"`
	SetTextureRect      func(ffi.Ptr, IntRect)                                       `sym:"setTextureRect"`
	GetTextureRect      func(ffi.Ptr) IntRect                                        `sym:"getTextureRect"`
	SetFillColor        func(ffi.Ptr, Color)                                         `sym:"setFillColor"`
	GetFillColor        func(ffi.Ptr) Color                                          `sym:"getFillColor"`
	SetOutlineColor     func(ffi.Ptr, Color)                                         `sym:"setOutlineColor"`
	GetOutlineColor     func(ffi.Ptr) Color                                          `sym:"getOutlineColor"`
	SetOutlineThickness func(ffi.Ptr, float32)                                       `sym:"setOutlineThickness"`
	GetOutlineThickness func(ffi.Ptr) float32                                        `sym:"getOutlineThickness"`
	GetLocalBounds      func(ffi.Ptr) FloatRect                                      `sym:"getLocalBounds"`
	GetGlobalBounds     func(ffi.Ptr) FloatRect                                      `sym:"getGlobalBounds"`
}

type CircleShapeAPI struct {
	TransformableAPI

	Create          func() ffi.Ptr                                   `sym:"create"`
	Copy            func(ffi.Ptr) ffi.Ptr                            `sym:"copy"`
	Destroy         func(ffi.Ptr)                                    `sym:"destroy"`
	SetRadius       func(ffi.Ptr, float32)                           `sym:"setRadius"`
	GetRadius       func(ffi.Ptr) float32                            `sym:"getRadius"`
	SetPointCount   func(ffi.Ptr, uintptr)                           `sym:"setPointCount"`
	GetPointCount   func(ffi.Ptr) uintptr                            `sym:"getPointCount"`
	GetPoint        func(shape ffi.Ptr, index uintptr) Vector2f      `sym:"getPoint"`
	SetTexture      func(shape, texture ffi.Ptr, resetRect ffi.Bool) `sym:"setTexture"`
	GetTexture      func(ffi.Ptr) ffi.Ptr                            `sym:"getTexture"`
	SetTextureRect  func(ffi.Ptr, IntRect)                           `sym:"setTextureRect"`
	GetTextureRect  func(ffi.Ptr) IntRect                            `sym:"getTextureRect"`
	SetFillColor    func(ffi.Ptr, Color)                             `sym:"setFillColor"`
	GetFillColor    func(ffi.Ptr) Color                              `sym:"getFillColor"`
	GetLocalBounds  func(ffi.Ptr) FloatRect                          `sym:"getLocalBounds"`
	GetGlobalBounds func(ffi.Ptr) FloatRect                          `sym:"getGlobalBounds"`
}

// RectangleShapeAPI covers sfRectangleShape. GetPoint reads the four
// corners, starting top-left.
type RectangleShapeAPI struct {
	TransformableAPI

	Create              func() ffi.Ptr                                   `sym:"create"`
	Copy                func(ffi.Ptr) ffi.Ptr                            `sym:"copy"`
	Destroy             func(ffi.Ptr)                                    `sym:"destroy"`
	SetSize             func(ffi.Ptr, Vector2f)                          `sym:"setSize"`
	GetSize             func(ffi.Ptr) Vector2f                           `sym:"getSize"`
	GetPointCount       func(ffi.Ptr) uintptr                            `sym:"getPointCount"`
	GetPoint            func(shape ffi.Ptr, index uintptr) Vector2f      `sym:"getPoint"`
	SetTexture          func(shape, texture ffi.Ptr, resetRect ffi.Bool) `sym:"setTexture"`
	GetTexture          func(ffi.Ptr) ffi.Ptr                            `sym:"getTexture"`
	SetTextureRect      func(ffi.Ptr, IntRect)                           `sym:"setTextureRect"`
	GetTextureRect      func(ffi.Ptr) IntRect                            `sym:"getTextureRect"`
	SetFillColor        func(ffi.Ptr, Color)                             `sym:"setFillColor"`
	GetFillColor        func(ffi.Ptr) Color                              `sym:"getFillColor"`
	SetOutlineColor     func(ffi.Ptr, Color)                             `sym:"setOutlineColor"`
	GetOutlineColor     func(ffi.Ptr) Color                              `sym:"getOutlineColor"`
	SetOutlineThickness func(ffi.Ptr, float32)                           `sym:"setOutlineThickness"`
	GetOutlineThickness func(ffi.Ptr) float32                            `sym:"getOutlineThickness"`
	GetLocalBounds      func(ffi.Ptr) FloatRect                          `sym:"getLocalBounds"`
	GetGlobalBounds     func(ffi.Ptr) FloatRect                          `sym:"getGlobalBounds"`
}

// ConvexShapeAPI covers sfConvexShape, whose points are set one by one.
type ConvexShapeAPI struct {
	TransformableAPI

	Create              func() ffi.Ptr                                   `sym:"create"`
	Copy                func(ffi.Ptr) ffi.Ptr                            `sym:"copy"`
	Destroy             func(ffi.Ptr)                                    `sym:"destroy"`
	SetPointCount       func(ffi.Ptr, uintptr)                           `sym:"setPointCount"`
	GetPointCount       func(ffi.Ptr) uintptr                            `sym:"getPointCount"`
	SetPoint            func(shape ffi.Ptr, index uintptr, p Vector2f)   `sym:"setPoint"`
	GetPoint            func(shape ffi.Ptr, index uintptr) Vector2f      `sym:"getPoint"`
	SetTexture          func(shape, texture ffi.Ptr, resetRect ffi.Bool) `sym:"setTexture"`
	GetTexture          func(ffi.Ptr) ffi.Ptr                            `sym:"getTexture"`
	SetTextureRect      func(ffi.Ptr, IntRect)                           `sym:"setTextureRect"`
	GetTextureRect      func(ffi.Ptr) IntRect                            `sym:"getTextureRect"`
	SetFillColor        func(ffi.Ptr, Color)                             `sym:"setFillColor"`
	GetFillColor        func(ffi.Ptr) Color                              `sym:"getFillColor"`
	SetOutlineColor     func(ffi.Ptr, Color)                             `sym:"setOutlineColor"`
	GetOutlineColor     func(ffi.Ptr) Color                              `sym:"getOutlineColor"`
	SetOutlineThickness func(ffi.Ptr, float32)                           `sym:"setOutlineThickness"`
	GetOutlineThickness func(ffi.Ptr) float32                            `sym:"getOutlineThickness"`
	GetLocalBounds      func(ffi.Ptr) FloatRect                          `sym:"getLocalBounds"`
	GetGlobalBounds     func(ffi.Ptr) FloatRect                          `sym:"getGlobalBounds"`
}

// RenderTargetAPI is the drawing surface sfRenderWindow and sfRenderTexture
// both offer under their own prefix.
type RenderTargetAPI struct {
	Clear              func(ffi.Ptr, Color)                               `sym:"clear"`
	Display            func(ffi.Ptr)                                      `sym:"display"`
	GetSize            func(ffi.Ptr) Vector2u                             `sym:"getSize"`
	DrawText           func(target, text ffi.Ptr, states *RenderStates)   `sym:"drawText"`
	DrawSprite         func(target, sprite ffi.Ptr, states *RenderStates) `sym:"drawSprite"`
	DrawShape          func(target, shape ffi.Ptr, states *RenderStates)  `sym:"drawShape"`
	DrawCircleShape    func(target, shape ffi.Ptr, states *RenderStates)  `sym:"drawCircleShape"`
	DrawConvexShape    func(target, shape ffi.Ptr, states *RenderStates)  `sym:"drawConvexShape"`
	DrawRectangleShape func(target, shape ffi.Ptr, states *RenderStates)  `sym:"drawRectangleShape"`
}

type RenderWindowAPI struct {
	RenderTargetAPI

	CreateUnicode          func(mode VideoMode, title *uint32, style uint32, settings *ContextSettings) ffi.Ptr `sym:"createUnicode"`
	Destroy                func(ffi.Ptr)                                                                        `sym:"destroy"`
	Close                  func(ffi.Ptr)                                                                        `sym:"close"`
	IsOpen                 func(ffi.Ptr) ffi.Bool                                                               `sym:"isOpen"`
	PollEvent              func(ffi.Ptr, *Event) ffi.Bool                                                       `sym:"pollEvent"`
	WaitEvent              func(ffi.Ptr, *Event) ffi.Bool                                                       `sym:"waitEvent"`
	SetFramerateLimit      func(ffi.Ptr, uint32)                                                                `sym:"setFramerateLimit"`
	SetVerticalSyncEnabled func(ffi.Ptr, ffi.Bool)                                                              `sym:"setVerticalSyncEnabled"`
	SetUnicodeTitle        func(ffi.Ptr, *uint32)                                                               `sym:"setUnicodeTitle"`
}

// RenderTextureAPI covers sfRenderTexture. GetTexture returns a texture the
// render texture owns.
type RenderTextureAPI struct {
	RenderTargetAPI

	Create         func(width, height uint32, depthBuffer ffi.Bool) ffi.Ptr `sym:"create"`
	Destroy        func(ffi.Ptr)                                            `sym:"destroy"`
	SetActive      func(ffi.Ptr, ffi.Bool) ffi.Bool                         `sym:"setActive"`
	GetTexture     func(ffi.Ptr) ffi.Ptr                                    `sym:"getTexture"`
	SetSmooth      func(ffi.Ptr, ffi.Bool)                                  `sym:"setSmooth"`
	IsSmooth       func(ffi.Ptr) ffi.Bool                                   `sym:"isSmooth"`
	SetRepeated    func(ffi.Ptr, ffi.Bool)                                  `sym:"setRepeated"`
	IsRepeated     func(ffi.Ptr) ffi.Bool                                   `sym:"isRepeated"`
	GenerateMipmap func(ffi.Ptr) ffi.Bool                                   `sym:"generateMipmap"`
}

// AudioAPI is csfml-audio.
type AudioAPI struct {
	SoundBuffer         SoundBufferAPI         `sym:"sfSoundBuffer_"`
	Sound               SoundAPI               `sym:"sfSound_"`
	Music               MusicAPI               `sym:"sfMusic_"`
	SoundStream         SoundStreamAPI         `sym:"sfSoundStream_"`
	SoundRecorder       SoundRecorderAPI       `sym:"sfSoundRecorder_"`
	SoundBufferRecorder SoundBufferRecorderAPI `sym:"sfSoundBufferRecorder_"`
	Listener            ListenerAPI            `sym:"sfListener_"`
}

type SoundBufferAPI struct {
	CreateFromFile    func(path string) ffi.Ptr                                                       `sym:"createFromFile"`
	CreateFromMemory  func(data unsafe.Pointer, size uintptr) ffi.Ptr                                 `sym:"createFromMemory"`
	CreateFromSamples func(samples unsafe.Pointer, count uint64, channels, sampleRate uint32) ffi.Ptr `sym:"createFromSamples" elem:"2"`
	Copy              func(ffi.Ptr) ffi.Ptr                                                           `sym:"copy"`
	Destroy           func(ffi.Ptr)                                                                   `sym:"destroy"`
	SaveToFile        func(buf ffi.Ptr, path string) ffi.Bool                                         `sym:"saveToFile"`
	GetSamples        func(ffi.Ptr) ffi.Ptr                                                           `sym:"getSamples"`
	GetSampleCount    func(ffi.Ptr) uint64                                                            `sym:"getSampleCount"`
	GetSampleRate     func(ffi.Ptr) uint32                                                            `sym:"getSampleRate"`
	GetChannelCount   func(ffi.Ptr) uint32                                                            `sym:"getChannelCount"`
	GetDuration       func(ffi.Ptr) Time                                                              `sym:"getDuration"`
}

type SoundAPI struct {
	Create           func() ffi.Ptr           `sym:"create"`
	Copy             func(ffi.Ptr) ffi.Ptr    `sym:"copy"`
	Destroy          func(ffi.Ptr)            `sym:"destroy"`
	Play             func(ffi.Ptr)            `sym:"play"`
	Pause            func(ffi.Ptr)            `sym:"pause"`
	Stop             func(ffi.Ptr)            `sym:"stop"`
	SetBuffer        func(sound, buf ffi.Ptr) `sym:"setBuffer"`
	GetBuffer        func(ffi.Ptr) ffi.Ptr    `sym:"getBuffer"`
	GetStatus        func(ffi.Ptr) int32      `sym:"getStatus"`
	SetLoop          func(ffi.Ptr, ffi.Bool)  `sym:"setLoop"`
	GetLoop          func(ffi.Ptr) ffi.Bool   `sym:"getLoop"`
	SetVolume        func(ffi.Ptr, float32)   `sym:"setVolume"`
	GetVolume        func(ffi.Ptr) float32    `sym:"getVolume"`
	SetPitch         func(ffi.Ptr, float32)   `sym:"setPitch"`
	GetPitch         func(ffi.Ptr) float32    `sym:"getPitch"`
	SetPlayingOffset func(ffi.Ptr, Time)      `sym:"setPlayingOffset"`
	GetPlayingOffset func(ffi.Ptr) Time       `sym:"getPlayingOffset"`
}

type MusicAPI struct {
	CreateFromFile   func(path string) ffi.Ptr                       `sym:"createFromFile"`
	CreateFromMemory func(data unsafe.Pointer, size uintptr) ffi.Ptr `sym:"createFromMemory" retain:"true"`
	Destroy          func(ffi.Ptr)                                   `sym:"destroy"`
	Play             func(ffi.Ptr)                                   `sym:"play"`
	Pause            func(ffi.Ptr)                                   `sym:"pause"`
	Stop             func(ffi.Ptr)                                   `sym:"stop"`
	GetStatus        func(ffi.Ptr) int32                             `sym:"getStatus"`
	GetDuration      func(ffi.Ptr) Time                              `sym:"getDuration"`
	SetLoop          func(ffi.Ptr, ffi.Bool)                         `sym:"setLoop"`
	GetLoop          func(ffi.Ptr) ffi.Bool                          `sym:"getLoop"`
	GetChannelCount  func(ffi.Ptr) uint32                            `sym:"getChannelCount"`
	GetSampleRate    func(ffi.Ptr) uint32                            `sym:"getSampleRate"`
}

type SoundStreamAPI struct {
	Create           func(onGetData, onSeek Callback, channels, sampleRate uint32, user uintptr) ffi.Ptr `sym:"create"`
	Destroy          func(ffi.Ptr)                                                                       `sym:"destroy"`
	Play             func(ffi.Ptr)                                                                       `sym:"play"`
	Pause            func(ffi.Ptr)                                                                       `sym:"pause"`
	Stop             func(ffi.Ptr)                                                                       `sym:"stop"`
	GetStatus        func(ffi.Ptr) int32                                                                 `sym:"getStatus"`
	GetChannelCount  func(ffi.Ptr) uint32                                                                `sym:"getChannelCount"`
	GetSampleRate    func(ffi.Ptr) uint32                                                                `sym:"getSampleRate"`
	SetPlayingOffset func(ffi.Ptr, Time)                                                                 `sym:"setPlayingOffset"`
	GetPlayingOffset func(ffi.Ptr) Time                                                                  `sym:"getPlayingOffset"`
}

type SoundRecorderAPI struct {
	Create        func(onStart, onProcess, onStop Callback, user uintptr) ffi.Ptr `sym:"create"`
	Destroy       func(ffi.Ptr)                                                   `sym:"destroy"`
	Start         func(rec ffi.Ptr, sampleRate uint32) ffi.Bool                   `sym:"start"`
	Stop          func(ffi.Ptr)                                                   `sym:"stop"`
	GetSampleRate func(ffi.Ptr) uint32                                            `sym:"getSampleRate"`
	IsAvailable   func() ffi.Bool                                                 `sym:"isAvailable"`
}

type SoundBufferRecorderAPI struct {
	Create        func() ffi.Ptr                                `sym:"create"`
	Destroy       func(ffi.Ptr)                                 `sym:"destroy"`
	Start         func(rec ffi.Ptr, sampleRate uint32) ffi.Bool `sym:"start"`
	Stop          func(ffi.Ptr)                                 `sym:"stop"`
	GetSampleRate func(ffi.Ptr) uint32                          `sym:"getSampleRate"`
	// GetBuffer returns a buffer owned by the recorder.
	GetBuffer func(ffi.Ptr) ffi.Ptr `sym:"getBuffer"`
}

type ListenerAPI struct {
	SetGlobalVolume func(float32)   `sym:"setGlobalVolume"`
	GetGlobalVolume func() float32  `sym:"getGlobalVolume"`
	SetPosition     func(Vector3f)  `sym:"setPosition"`
	GetPosition     func() Vector3f `sym:"getPosition"`
	SetDirection    func(Vector3f)  `sym:"setDirection"`
	GetDirection    func() Vector3f `sym:"getDirection"`
	SetUpVector     func(Vector3f)  `sym:"setUpVector"`
	GetUpVector     func() Vector3f `sym:"getUpVector"`
}
