// Package glyph rasterizes the heart shape drawn by the card's particles
// and overlays.
package glyph

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// heartPath is a heart outline in unit coordinates, as cubic segments
// starting from the notch at (0.5, 0.3).
var heartPath = [][6]float32{
	{0.5, 0.27, 0.45, 0.15, 0.25, 0.15},
	{0.0, 0.15, 0.0, 0.4, 0.0, 0.4},
	{0.0, 0.55, 0.2, 0.77, 0.5, 0.95},
	{0.8, 0.77, 1.0, 0.55, 1.0, 0.4},
	{1.0, 0.4, 1.0, 0.15, 0.75, 0.15},
	{0.6, 0.15, 0.5, 0.27, 0.5, 0.3},
}

// Heart returns a size×size coverage mask of a heart. Sizes below 1 are
// treated as 1.
func Heart(size int) *image.Alpha {
	if size < 1 {
		size = 1
	}
	s := float32(size)
	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Src
	z.MoveTo(0.5*s, 0.3*s)
	for _, c := range heartPath {
		z.CubeTo(c[0]*s, c[1]*s, c[2]*s, c[3]*s, c[4]*s, c[5]*s)
	}
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
