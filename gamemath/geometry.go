package gamemath

import (
	"math"

	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Center returns the midpoint of an object's rectangle.
func Center(obj *resolv.Object) dmath.Vec2 {
	return dmath.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2)
}

// SetCenter moves an object so its rectangle is centered on (x, y).
func SetCenter(obj *resolv.Object, x, y float64) {
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
}

// IsOnScreen reports, per axis, whether the rectangle's edges lie within
// [0, width] and [0, height].
func IsOnScreen(obj *resolv.Object, width, height float64) (x, y bool) {
	x = obj.X >= 0 && obj.X+obj.W <= width
	y = obj.Y >= 0 && obj.Y+obj.H <= height
	return x, y
}

// FullyOnScreen is IsOnScreen with both axes required.
func FullyOnScreen(obj *resolv.Object, width, height float64) bool {
	x, y := IsOnScreen(obj, width, height)
	return x && y
}

// DirectionTo returns the unit vector from the center of from to the center
// of to. Coincident centers yield straight down.
func DirectionTo(from, to *resolv.Object) dmath.Vec2 {
	a, b := Center(from), Center(to)
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return dmath.NewVec2(0, 1)
	}
	return dmath.NewVec2(dx/n, dy/n)
}

// Overlaps reports strict rectangle intersection; shared edges do not count.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// RotatedBounds returns the size of the axis-aligned box enclosing a w x h
// rectangle rotated by angle radians.
func RotatedBounds(w, h, angle float64) (float64, float64) {
	c, s := math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle))
	return w*c + h*s, w*s + h*c
}
