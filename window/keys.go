package window

import (
	"github.com/wippyai/gosfml/runtime"
)

// Key is a keyboard key code.
type Key int32

const (
	KeyUnknown Key = iota - 1
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyEscape
	KeyLControl
	KeyLShift
	KeyLAlt
	KeyLSystem
	KeyRControl
	KeyRShift
	KeyRAlt
	KeyRSystem
	KeyMenu
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyComma
	KeyPeriod
	KeyQuote
	KeySlash
	KeyBackslash
	KeyTilde
	KeyEqual
	KeyHyphen
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyPause
	KeyCount
)

// MouseButton identifies a mouse button.
type MouseButton int32

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2
)

// IsKeyPressed reports whether key is held down right now.
func IsKeyPressed(rt *runtime.Runtime, key Key) bool {
	return rt.API().Window.Keyboard.IsKeyPressed(int32(key)).Go()
}
