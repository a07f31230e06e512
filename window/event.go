package window

import (
	"math"
	"unicode/utf8"

	"github.com/wippyai/gosfml/csfml"
)

// Event is one of the concrete event types below.
type Event interface {
	isEvent()
}

type (
	Closed      struct{}
	LostFocus   struct{}
	GainedFocus struct{}

	Resized struct {
		Width  uint32
		Height uint32
	}

	TextEntered struct {
		Unicode rune
	}

	KeyPressed  KeyEvent
	KeyReleased KeyEvent

	MouseWheelMoved struct {
		Delta int32
		X, Y  int32
	}

	MouseWheelScrolled struct {
		Wheel MouseWheel
		Delta float32
		X, Y  int32
	}

	MouseButtonPressed  MouseButtonEvent
	MouseButtonReleased MouseButtonEvent

	MouseMoved struct {
		X, Y int32
	}

	MouseEntered struct{}
	MouseLeft    struct{}

	JoystickButtonPressed  JoystickButtonEvent
	JoystickButtonReleased JoystickButtonEvent

	JoystickMoved struct {
		JoystickID uint32
		Axis       JoystickAxis
		Position   float32
	}

	JoystickConnected    JoystickConnectEvent
	JoystickDisconnected JoystickConnectEvent

	TouchBegan TouchEvent
	TouchMoved TouchEvent
	TouchEnded TouchEvent

	SensorChanged struct {
		Sensor  SensorType
		X, Y, Z float32
	}
)

// KeyEvent carries a key and the modifier state.
type KeyEvent struct {
	Code    Key
	Alt     bool
	Control bool
	Shift   bool
	System  bool
}

// MouseButtonEvent carries a button and the cursor position.
type MouseButtonEvent struct {
	Button MouseButton
	X, Y   int32
}

type JoystickButtonEvent struct {
	JoystickID uint32
	Button     uint32
}

type JoystickConnectEvent struct {
	JoystickID uint32
}

type TouchEvent struct {
	Finger uint32
	X, Y   int32
}

type (
	MouseWheel   int32
	JoystickAxis int32
	SensorType   int32
)

func (Closed) isEvent()                 {}
func (Resized) isEvent()                {}
func (LostFocus) isEvent()              {}
func (GainedFocus) isEvent()            {}
func (TextEntered) isEvent()            {}
func (KeyPressed) isEvent()             {}
func (KeyReleased) isEvent()            {}
func (MouseWheelMoved) isEvent()        {}
func (MouseWheelScrolled) isEvent()     {}
func (MouseButtonPressed) isEvent()     {}
func (MouseButtonReleased) isEvent()    {}
func (MouseMoved) isEvent()             {}
func (MouseEntered) isEvent()           {}
func (MouseLeft) isEvent()              {}
func (JoystickButtonPressed) isEvent()  {}
func (JoystickButtonReleased) isEvent() {}
func (JoystickMoved) isEvent()          {}
func (JoystickConnected) isEvent()      {}
func (JoystickDisconnected) isEvent()   {}
func (TouchBegan) isEvent()             {}
func (TouchMoved) isEvent()             {}
func (TouchEnded) isEvent()             {}
func (SensorChanged) isEvent()          {}

func i32(u uint32) int32    { return int32(u) }
func f32(u uint32) float32  { return math.Float32frombits(u) }
func b(u uint32) bool       { return u != 0 }
func u32(v int32) uint32    { return uint32(v) }
func bits(f float32) uint32 { return math.Float32bits(f) }
func flag(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// Decode converts a raw library event. It reports false for event types it
// does not know and for text events that carry an invalid code point.
func Decode(raw csfml.Event) (Event, bool) {
	d := raw.Data
	switch raw.Type {
	case csfml.EvtClosed:
		return Closed{}, true
	case csfml.EvtResized:
		return Resized{Width: d[0], Height: d[1]}, true
	case csfml.EvtLostFocus:
		return LostFocus{}, true
	case csfml.EvtGainedFocus:
		return GainedFocus{}, true
	case csfml.EvtTextEntered:
		r := rune(d[0])
		if d[0] > utf8.MaxRune || !utf8.ValidRune(r) {
			return nil, false
		}
		return TextEntered{Unicode: r}, true
	case csfml.EvtKeyPressed:
		return KeyPressed(keyEvent(d)), true
	case csfml.EvtKeyReleased:
		return KeyReleased(keyEvent(d)), true
	case csfml.EvtMouseWheelMoved:
		return MouseWheelMoved{Delta: i32(d[0]), X: i32(d[1]), Y: i32(d[2])}, true
	case csfml.EvtMouseWheelScrolled:
		return MouseWheelScrolled{Wheel: MouseWheel(i32(d[0])), Delta: f32(d[1]), X: i32(d[2]), Y: i32(d[3])}, true
	case csfml.EvtMouseButtonPressed:
		return MouseButtonPressed(mouseButtonEvent(d)), true
	case csfml.EvtMouseButtonReleased:
		return MouseButtonReleased(mouseButtonEvent(d)), true
	case csfml.EvtMouseMoved:
		return MouseMoved{X: i32(d[0]), Y: i32(d[1])}, true
	case csfml.EvtMouseEntered:
		return MouseEntered{}, true
	case csfml.EvtMouseLeft:
		return MouseLeft{}, true
	case csfml.EvtJoystickButtonPressed:
		return JoystickButtonPressed{JoystickID: d[0], Button: d[1]}, true
	case csfml.EvtJoystickButtonReleased:
		return JoystickButtonReleased{JoystickID: d[0], Button: d[1]}, true
	case csfml.EvtJoystickMoved:
		return JoystickMoved{JoystickID: d[0], Axis: JoystickAxis(i32(d[1])), Position: f32(d[2])}, true
	case csfml.EvtJoystickConnected:
		return JoystickConnected{JoystickID: d[0]}, true
	case csfml.EvtJoystickDisconnected:
		return JoystickDisconnected{JoystickID: d[0]}, true
	case csfml.EvtTouchBegan:
		return TouchBegan(touchEvent(d)), true
	case csfml.EvtTouchMoved:
		return TouchMoved(touchEvent(d)), true
	case csfml.EvtTouchEnded:
		return TouchEnded(touchEvent(d)), true
	case csfml.EvtSensorChanged:
		return SensorChanged{Sensor: SensorType(i32(d[0])), X: f32(d[1]), Y: f32(d[2]), Z: f32(d[3])}, true
	}
	return nil, false
}

func keyEvent(d [5]uint32) KeyEvent {
	return KeyEvent{Code: Key(i32(d[0])), Alt: b(d[1]), Control: b(d[2]), Shift: b(d[3]), System: b(d[4])}
}

func mouseButtonEvent(d [5]uint32) MouseButtonEvent {
	return MouseButtonEvent{Button: MouseButton(i32(d[0])), X: i32(d[1]), Y: i32(d[2])}
}

func touchEvent(d [5]uint32) TouchEvent {
	return TouchEvent{Finger: d[0], X: i32(d[1]), Y: i32(d[2])}
}

// Encode is the inverse of Decode.
func Encode(ev Event) csfml.Event {
	var raw csfml.Event
	d := &raw.Data
	switch e := ev.(type) {
	case Closed:
		raw.Type = csfml.EvtClosed
	case Resized:
		raw.Type = csfml.EvtResized
		d[0], d[1] = e.Width, e.Height
	case LostFocus:
		raw.Type = csfml.EvtLostFocus
	case GainedFocus:
		raw.Type = csfml.EvtGainedFocus
	case TextEntered:
		raw.Type = csfml.EvtTextEntered
		d[0] = uint32(e.Unicode)
	case KeyPressed:
		raw.Type = csfml.EvtKeyPressed
		encodeKey(d, KeyEvent(e))
	case KeyReleased:
		raw.Type = csfml.EvtKeyReleased
		encodeKey(d, KeyEvent(e))
	case MouseWheelMoved:
		raw.Type = csfml.EvtMouseWheelMoved
		d[0], d[1], d[2] = u32(e.Delta), u32(e.X), u32(e.Y)
	case MouseWheelScrolled:
		raw.Type = csfml.EvtMouseWheelScrolled
		d[0], d[1], d[2], d[3] = u32(int32(e.Wheel)), bits(e.Delta), u32(e.X), u32(e.Y)
	case MouseButtonPressed:
		raw.Type = csfml.EvtMouseButtonPressed
		d[0], d[1], d[2] = u32(int32(e.Button)), u32(e.X), u32(e.Y)
	case MouseButtonReleased:
		raw.Type = csfml.EvtMouseButtonReleased
		d[0], d[1], d[2] = u32(int32(e.Button)), u32(e.X), u32(e.Y)
	case MouseMoved:
		raw.Type = csfml.EvtMouseMoved
		d[0], d[1] = u32(e.X), u32(e.Y)
	case MouseEntered:
		raw.Type = csfml.EvtMouseEntered
	case MouseLeft:
		raw.Type = csfml.EvtMouseLeft
	case JoystickButtonPressed:
		raw.Type = csfml.EvtJoystickButtonPressed
		d[0], d[1] = e.JoystickID, e.Button
	case JoystickButtonReleased:
		raw.Type = csfml.EvtJoystickButtonReleased
		d[0], d[1] = e.JoystickID, e.Button
	case JoystickMoved:
		raw.Type = csfml.EvtJoystickMoved
		d[0], d[1], d[2] = e.JoystickID, u32(int32(e.Axis)), bits(e.Position)
	case JoystickConnected:
		raw.Type = csfml.EvtJoystickConnected
		d[0] = e.JoystickID
	case JoystickDisconnected:
		raw.Type = csfml.EvtJoystickDisconnected
		d[0] = e.JoystickID
	case TouchBegan:
		raw.Type = csfml.EvtTouchBegan
		d[0], d[1], d[2] = e.Finger, u32(e.X), u32(e.Y)
	case TouchMoved:
		raw.Type = csfml.EvtTouchMoved
		d[0], d[1], d[2] = e.Finger, u32(e.X), u32(e.Y)
	case TouchEnded:
		raw.Type = csfml.EvtTouchEnded
		d[0], d[1], d[2] = e.Finger, u32(e.X), u32(e.Y)
	case SensorChanged:
		raw.Type = csfml.EvtSensorChanged
		d[0], d[1], d[2], d[3] = u32(int32(e.Sensor)), bits(e.X), bits(e.Y), bits(e.Z)
	default:
		raw.Type = csfml.EvtCount
	}
	return raw
}

func encodeKey(d *[5]uint32, k KeyEvent) {
	d[0], d[1], d[2], d[3], d[4] = u32(int32(k.Code)), flag(k.Alt), flag(k.Control), flag(k.Shift), flag(k.System)
}
