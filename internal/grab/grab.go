// Package grab implements the mouse move/resize interaction state
// machine: Idle until a passively-grabbed button press lands on a
// non-tiled window, then Pressed until button release.
package grab

import "github.com/1broseidon/yaxwm/internal/geometry"

// Button distinguishes the two grabbed buttons; every other button
// press is ignored by the FSM.
type Button uint8

const (
	Button1 Button = 1 // move
	Button3 Button = 3 // resize
)

// State is an explicit tagged state rather than a nullable struct:
// Idle carries nothing, Pressed carries every field the Motion
// transition needs. This mirrors how interaction states are modeled
// elsewhere in this codebase (an explicit phase type, not optional
// fields bolted onto one struct).
type State struct {
	pressed bool
	button  Button
	target  uint32 // xproto.Window, kept opaque here to avoid an xgb import
	geom0   geometry.Area
	rootX0  int32
	rootY0  int32
}

// Idle is the zero value: no button currently held.
var Idle = State{}

// IsPressed reports whether a button is currently held.
func (s State) IsPressed() bool {
	return s.pressed
}

// Press transitions Idle -> Pressed, snapshotting the target's current
// geometry and the root pointer position at press time. Only Button1
// and Button3 are meaningful; any other button is the caller's
// responsibility to filter before calling Press (spec: only Mod4+1 and
// Mod4+3 are grabbed passively at setup).
func Press(button Button, target uint32, geom0 geometry.Area, rootX0, rootY0 int32) State {
	return State{
		pressed: true,
		button:  button,
		target:  target,
		geom0:   geom0,
		rootX0:  rootX0,
		rootY0:  rootY0,
	}
}

// Target returns the window being moved or resized. Only meaningful
// when IsPressed is true.
func (s State) Target() uint32 {
	return s.target
}

// Delta is the result of a MotionNotify while Pressed: either a new
// top-left position (move, Button1) or a new size (resize, Button3).
// Exactly one of the two is populated; Move indicates which.
type Delta struct {
	Move bool
	X, Y uint16
	W, H uint16
}

// Motion computes the Delta for a MotionNotify at (rootX, rootY)
// while Pressed. The caller applies Delta to the X window itself;
// this function only does the arithmetic. ok is false for any button
// other than Button1/Button3, meaning the caller should no-op.
func (s State) Motion(rootX, rootY int32) (Delta, bool) {
	if !s.pressed {
		return Delta{}, false
	}

	dx := rootX - s.rootX0
	dy := rootY - s.rootY0

	switch s.button {
	case Button1:
		return Delta{Move: true, X: offset(s.geom0.X, dx), Y: offset(s.geom0.Y, dy)}, true
	case Button3:
		return Delta{Move: false, W: offset(s.geom0.W, dx), H: offset(s.geom0.H, dy)}, true
	default:
		return Delta{}, false
	}
}

// Release transitions back to Idle unconditionally.
func Release() State {
	return Idle
}

// offset applies a signed delta to an unsigned base, clamping at zero
// rather than wrapping, since window coordinates and sizes cannot go
// negative on the wire.
func offset(base uint16, delta int32) uint16 {
	v := int32(base) + delta
	if v < 0 {
		return 0
	}
	if v > int32(^uint16(0)) {
		return ^uint16(0)
	}
	return uint16(v)
}
