// Package window opens OS windows and reads their events.
//
// Events arrive from the library as a tagged union; Decode turns them into
// one of the concrete types implementing Event. PollEvent skips events it
// cannot decode, so a caller's loop
//
//	for ev, ok := w.PollEvent(); ok; ev, ok = w.PollEvent() {
//		switch ev := ev.(type) {
//		case window.Closed:
//			w.CloseWindow()
//		case window.KeyPressed:
//			_ = ev.Code
//		}
//	}
//
// only sees well-formed events.
package window
