package camera

// WheelNotch is the scroll delta of one mouse wheel notch, the unit browsers
// report wheel travel in.
const WheelNotch = 100.0

// PointerSample is one frame of polled pointer state. Wheel counts notches,
// positive away from the user.
type PointerSample struct {
	X, Y     float64
	Pressed  bool
	Released bool
	Wheel    float64
}

// Route delivers a polled sample as drag and scroll events. Window systems
// that poll instead of queueing events call it once per frame.
func Route(in Input, p PointerSample) {
	if p.Pressed {
		in.DragStart(p.X, p.Y)
	} else {
		in.DragMove(p.X, p.Y)
	}
	if p.Released {
		in.DragEnd()
	}
	if p.Wheel != 0 {
		in.Scroll(-p.Wheel * WheelNotch)
	}
}
