// Package geometry implements the pure rectangle arithmetic the tiler
// is built on: containment, padding, and the binary split that drives
// recursive tiling.
package geometry

// Area is an axis-aligned rectangle in screen coordinates.
type Area struct {
	X, Y, W, H uint16
}

// New returns an Area with the given origin and size.
func New(x, y, w, h uint16) Area {
	return Area{X: x, Y: y, W: w, H: h}
}

// Contains reports whether (px, py) falls inside the area: x <= px <
// x+w and y <= py < y+h. The original implementation this is grounded
// on compared self.y >= self.y (always true) where it meant y >= self.y;
// that bug is not reproduced here.
func (a Area) Contains(px, py uint16) bool {
	return px >= a.X && py >= a.Y && px < a.X+a.W && py < a.Y+a.H
}

// Padding shrinks an Area's usable region on each side.
type Padding struct {
	Top, Bottom, Left, Right uint16
}

// Pad shrinks a by the given padding, saturating at zero rather than
// wrapping if the padding exceeds the area's extent.
func (a Area) Pad(p Padding) Area {
	return Area{
		X: a.X + p.Left,
		Y: a.Y + p.Top,
		W: satSub(satSub(a.W, p.Left), p.Right),
		H: satSub(satSub(a.H, p.Top), p.Bottom),
	}
}

// Split cuts the longer axis in half (ties split horizontally, i.e.
// the height is cut into a top and a bottom half), returning the first half as a new Area
// and mutating the receiver in place to the complementary half. The two
// halves tile the original exactly: no gap, no overlap.
func (a *Area) Split() Area {
	orig := *a

	if orig.W > orig.H {
		left := Area{X: orig.X, Y: orig.Y, W: orig.W / 2, H: orig.H}
		*a = Area{X: orig.X + orig.W/2, Y: orig.Y, W: orig.W - orig.W/2, H: orig.H}
		return left
	}

	top := Area{X: orig.X, Y: orig.Y, W: orig.W, H: orig.H / 2}
	*a = Area{X: orig.X, Y: orig.Y + orig.H/2, W: orig.W, H: orig.H - orig.H/2}
	return top
}

func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
