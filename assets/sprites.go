package assets

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Face selects the bird's expression.
type Face int

const (
	FaceNormal Face = iota
	FaceJoy
	FaceSad
)

// BirdSize is the edge of the square bird sprite.
const BirdSize = 60

var (
	birdBody   = color.RGBA{R: 255, G: 214, B: 64, A: 255}
	birdBeak   = color.RGBA{R: 240, G: 120, B: 30, A: 255}
	birdEye    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	birdCheek  = color.RGBA{R: 255, G: 130, B: 150, A: 255}
	tearColor  = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	deathBody  = color.RGBA{R: 60, G: 50, B: 70, A: 255}
	deathEye   = color.RGBA{R: 230, G: 30, B: 30, A: 255}
	ufoHull    = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	ufoDome    = color.RGBA{R: 120, G: 220, B: 255, A: 200}
	bossBody   = color.RGBA{R: 110, G: 30, B: 40, A: 255}
	bossHorn   = color.RGBA{R: 230, G: 220, B: 200, A: 255}
	beamCore   = color.RGBA{R: 230, G: 255, B: 255, A: 255}
	beamGlow   = color.RGBA{R: 80, G: 230, B: 255, A: 220}
	blastOuter = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	blastInner = color.RGBA{R: 255, G: 240, B: 80, A: 255}
)

var spriteCache = map[string]*ebiten.Image{}

func cached(key string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := spriteCache[key]; ok {
		return img
	}
	img := build()
	spriteCache[key] = img
	return img
}

// Bird returns the player sprite looking along the sign pair (dx, dy).
func Bird(dx, dy int, face Face) *ebiten.Image {
	key := fmt.Sprintf("bird/%d/%d/%d", dx, dy, face)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(BirdSize, BirdSize)
		c := float32(BirdSize) / 2
		vector.FillCircle(img, c, c, c-6, birdBody, true)

		ux, uy := float32(dx), float32(dy)
		if dx == 0 && dy == 0 {
			ux = 1
		}
		if n := float32(math.Hypot(float64(ux), float64(uy))); n > 0 {
			ux, uy = ux/n, uy/n
		}
		// beak
		vector.StrokeLine(img, c+ux*(c-14), c+uy*(c-14), c+ux*(c-1), c+uy*(c-1), 8, birdBeak, true)

		// eye sits slightly toward the facing side and above center
		ex, ey := c+ux*8, c+uy*8-8
		switch face {
		case FaceJoy:
			vector.StrokeLine(img, ex-5, ey+2, ex, ey-3, 3, birdEye, true)
			vector.StrokeLine(img, ex, ey-3, ex+5, ey+2, 3, birdEye, true)
			vector.FillCircle(img, ex-ux*14, ey+12, 5, birdCheek, true)
		case FaceSad:
			vector.StrokeLine(img, ex-5, ey-3, ex+5, ey+3, 3, birdEye, true)
			vector.FillCircle(img, ex, ey+9, 3, tearColor, true)
		default:
			vector.FillCircle(img, ex, ey, 4, birdEye, true)
		}
		return img
	})
}

// Beam returns the horizontal beam sprite; callers rotate it.
func Beam(length, girth float64) *ebiten.Image {
	key := fmt.Sprintf("beam/%v/%v", length, girth)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(int(length), int(girth))
		vector.FillRect(img, 0, 0, float32(length), float32(girth), beamGlow, false)
		vector.FillRect(img, 2, float32(girth)/3, float32(length)-4, float32(girth)/3, beamCore, false)
		return img
	})
}

// Bomb returns a filled circle of the given radius and color.
func Bomb(radius int, clr color.RGBA) *ebiten.Image {
	key := fmt.Sprintf("bomb/%d/%d/%d/%d", radius, clr.R, clr.G, clr.B)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(2*radius, 2*radius)
		vector.FillCircle(img, float32(radius), float32(radius), float32(radius), clr, true)
		return img
	})
}

// Explosion returns one of the two flicker frames.
func Explosion(frame, w, h int) *ebiten.Image {
	key := fmt.Sprintf("explosion/%d/%d/%d", frame%2, w, h)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		cx, cy := float32(w)/2, float32(h)/2
		r := float32(min(w, h)) / 2
		outer, inner := blastOuter, blastInner
		if frame%2 == 1 {
			outer, inner = inner, outer
			r *= 0.85
		}
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			vector.StrokeLine(img, cx, cy, cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)), 6, outer, true)
		}
		vector.FillCircle(img, cx, cy, r*0.6, outer, true)
		vector.FillCircle(img, cx, cy, r*0.35, inner, true)
		return img
	})
}

// DeathBird returns the patrol enemy sprite looking left; callers mirror it.
func DeathBird(w, h int) *ebiten.Image {
	key := fmt.Sprintf("deathbird/%d/%d", w, h)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		cx, cy := float32(w)/2, float32(h)/2+5
		vector.FillCircle(img, cx, cy, float32(min(w, h))/2-4, deathBody, true)
		vector.StrokeLine(img, cx-float32(w)/2+12, cy, cx-float32(w)/2+1, cy, 7, birdBeak, true)
		vector.FillCircle(img, cx-8, cy-9, 4, deathEye, true)
		vector.StrokeLine(img, cx-14, cy-18, cx-2, cy-14, 3, deathEye, true)
		return img
	})
}

// Saucer returns the flying enemy sprite.
func Saucer(w, h int) *ebiten.Image {
	key := fmt.Sprintf("saucer/%d/%d", w, h)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		fw, fh := float32(w), float32(h)
		vector.FillCircle(img, fw/2, fh*0.45, fh*0.35, ufoDome, true)
		vector.FillRect(img, 0, fh*0.5, fw, fh*0.3, ufoHull, true)
		vector.FillCircle(img, fw*0.2, fh*0.85, 4, deathEye, true)
		vector.FillCircle(img, fw*0.5, fh*0.85, 4, blastInner, true)
		vector.FillCircle(img, fw*0.8, fh*0.85, 4, deathEye, true)
		return img
	})
}

// Boss returns the boss sprite.
func Boss(w, h int) *ebiten.Image {
	key := fmt.Sprintf("boss/%d/%d", w, h)
	return cached(key, func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		fw, fh := float32(w), float32(h)
		vector.FillCircle(img, fw/2, fh*0.58, fh*0.42, bossBody, true)
		vector.StrokeLine(img, fw*0.3, fh*0.3, fw*0.18, fh*0.02, 10, bossHorn, true)
		vector.StrokeLine(img, fw*0.7, fh*0.3, fw*0.82, fh*0.02, 10, bossHorn, true)
		vector.FillCircle(img, fw*0.4, fh*0.5, 10, blastInner, true)
		vector.FillCircle(img, fw*0.6, fh*0.5, 10, blastInner, true)
		vector.FillRect(img, fw*0.35, fh*0.72, fw*0.3, 8, birdEye, false)
		return img
	})
}
