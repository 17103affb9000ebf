// Package raster draws lines and rectangles into RGBA images.
package raster

import (
	"image"
	"image/color"
	"math"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) using a DDA walk.
// Pixels outside the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		SetPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		SetPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

// SetPixel writes col at (x, y) when it lies inside the image.
func SetPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// DrawRect outlines the rectangle with corners (x0, y0) and (x1, y1).
func DrawRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	DrawLine(img, x0, y0, x1, y0, col)
	DrawLine(img, x1, y0, x1, y1, col)
	DrawLine(img, x1, y1, x0, y1, col)
	DrawLine(img, x0, y1, x0, y0, col)
}

// FillRect fills the rectangle with corners (x0, y0) and (x1, y1), inclusive.
func FillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			SetPixel(img, x, y, col)
		}
	}
}
