package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func rectAt(cx, cy, w, h float64) *resolv.Object {
	o := resolv.NewObject(0, 0, w, h)
	SetCenter(o, cx, cy)
	return o
}

func TestIsOnScreen(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		wantX      bool
		wantY      bool
	}{
		{"inside", 10, 10, 20, 20, true, true},
		{"touching edges", 0, 0, 100, 50, true, true},
		{"left out", -1, 10, 20, 20, false, true},
		{"right out", 90, 10, 20, 20, false, true},
		{"top out", 10, -5, 20, 20, true, false},
		{"bottom out", 10, 40, 20, 20, true, false},
		{"both out", -10, -10, 20, 20, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := IsOnScreen(resolv.NewObject(tt.x, tt.y, tt.w, tt.h), 100, 50)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestDirectionToIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := rectAt(rng.Float64()*1100, rng.Float64()*650, 60, 60)
		b := rectAt(rng.Float64()*1100, rng.Float64()*650, 20, 20)
		if Center(a) == Center(b) {
			continue
		}
		d := DirectionTo(a, b)
		assert.InDelta(t, 1.0, math.Hypot(d.X, d.Y), 1e-9)
	}
}

func TestDirectionToStraightDown(t *testing.T) {
	bomb := rectAt(100, 0, 20, 20)
	player := rectAt(100, 100, 60, 60)
	d := DirectionTo(bomb, player)
	assert.InDelta(t, 0.0, d.X, 1e-12)
	assert.InDelta(t, 1.0, d.Y, 1e-12)
}

func TestDirectionToCoincidentCenters(t *testing.T) {
	a := rectAt(300, 300, 10, 10)
	b := rectAt(300, 300, 80, 80)
	d := DirectionTo(a, b)
	assert.Equal(t, 0.0, d.X)
	assert.Equal(t, 1.0, d.Y)
}

func TestOverlapsIsStrict(t *testing.T) {
	a := resolv.NewObject(0, 0, 10, 10)
	assert.True(t, Overlaps(a, resolv.NewObject(9, 9, 10, 10)))
	assert.False(t, Overlaps(a, resolv.NewObject(10, 0, 10, 10)), "shared vertical edge")
	assert.False(t, Overlaps(a, resolv.NewObject(0, 10, 10, 10)), "shared horizontal edge")
	assert.True(t, Overlaps(a, resolv.NewObject(2, 2, 3, 3)), "contained")
}

func TestRotatedBounds(t *testing.T) {
	w, h := RotatedBounds(40, 12, 0)
	assert.InDelta(t, 40, w, 1e-9)
	assert.InDelta(t, 12, h, 1e-9)

	w, h = RotatedBounds(40, 12, math.Pi/2)
	assert.InDelta(t, 12, w, 1e-9)
	assert.InDelta(t, 40, h, 1e-9)
}
