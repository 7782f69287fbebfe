package grab

import (
	"testing"

	"github.com/1broseidon/yaxwm/internal/geometry"
)

func TestIdleIsNotPressed(t *testing.T) {
	if Idle.IsPressed() {
		t.Fatal("zero value State must not be Pressed")
	}
	if _, ok := Idle.Motion(10, 10); ok {
		t.Fatal("Motion on Idle must report not-ok")
	}
}

func TestPressThenMoveComputesDelta(t *testing.T) {
	geom0 := geometry.New(100, 100, 200, 150)
	s := Press(Button1, 42, geom0, 50, 50)

	if !s.IsPressed() || s.Target() != 42 {
		t.Fatalf("Press() = %+v, want pressed target 42", s)
	}

	d, ok := s.Motion(60, 45)
	if !ok {
		t.Fatal("Motion should succeed while Pressed")
	}
	if !d.Move || d.X != 110 || d.Y != 95 {
		t.Fatalf("Motion delta = %+v, want move to (110,95)", d)
	}
}

func TestPressThenResizeComputesDelta(t *testing.T) {
	geom0 := geometry.New(0, 0, 400, 300)
	s := Press(Button3, 7, geom0, 0, 0)

	d, ok := s.Motion(50, -20)
	if !ok {
		t.Fatal("Motion should succeed while Pressed")
	}
	if d.Move || d.W != 450 || d.H != 280 {
		t.Fatalf("Motion delta = %+v, want resize to (450,280)", d)
	}
}

func TestMotionClampsAtZero(t *testing.T) {
	geom0 := geometry.New(10, 10, 50, 50)
	s := Press(Button1, 1, geom0, 0, 0)

	d, ok := s.Motion(-1000, -1000)
	if !ok {
		t.Fatal("Motion should succeed while Pressed")
	}
	if d.X != 0 || d.Y != 0 {
		t.Fatalf("Motion delta = %+v, want clamped to (0,0)", d)
	}
}

func TestOtherButtonIsNoOp(t *testing.T) {
	geom0 := geometry.New(0, 0, 100, 100)
	s := Press(Button(2), 1, geom0, 0, 0)

	if _, ok := s.Motion(10, 10); ok {
		t.Fatal("Motion with a non-Button1/3 press should report not-ok")
	}
}

func TestReleaseReturnsToIdle(t *testing.T) {
	geom0 := geometry.New(0, 0, 100, 100)
	s := Press(Button1, 1, geom0, 0, 0)
	s = Release()

	if s.IsPressed() {
		t.Fatal("Release() must return to Idle")
	}
}
