// seehuhn.de/go/writegraph - render drawings of planar graphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas draws anti-aliased shapes and text onto an RGBA image.
//
// Coordinates are in pixels, with the origin in the top-left corner of the
// image and y increasing downwards.  Pixel (x, y) covers the unit square
// [x, x+1]×[y, y+1].
package canvas

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/writegraph/raster"
)

// Canvas is an RGBA image together with a rasteriser.  The image starts
// out fully transparent.
type Canvas struct {
	// Observe, if set, is called for every shape drawn by Fill and Stroke,
	// before the shape is rasterised.  Text is not reported.
	Observe func(op *Op)

	img *image.RGBA
	r   *raster.Rasteriser
}

// Op describes a single fill or stroke operation.
type Op struct {
	Path *path.Data

	// Stroke is true for outlines, false for filled shapes.
	Stroke bool

	// EvenOdd selects the even-odd rule for fills.
	EvenOdd bool

	// Width and Cap are set for outlines.
	Width float64
	Cap   graphics.LineCapStyle

	Paint Paint
}

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		img: img,
		r:   raster.NewRasteriser(clip),
	}
}

// Image returns the underlying image.  The canvas keeps drawing into the
// returned image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Fill paints the interior of p.
func (c *Canvas) Fill(p *path.Data, evenOdd bool, paint Paint) {
	if c.Observe != nil {
		c.Observe(&Op{Path: p, EvenOdd: evenOdd, Paint: paint})
	}
	c.r.Reset(c.clip())
	if evenOdd {
		c.r.FillEvenOdd(p, c.compositor(paint))
	} else {
		c.r.FillNonZero(p, c.compositor(paint))
	}
}

// Stroke paints the outline of p with the given line width and cap style.
// Corners use miter joins.
func (c *Canvas) Stroke(p *path.Data, width float64, lineCap graphics.LineCapStyle, paint Paint) {
	if c.Observe != nil {
		c.Observe(&Op{Path: p, Stroke: true, Width: width, Cap: lineCap, Paint: paint})
	}
	c.r.Reset(c.clip())
	c.r.Width = width
	c.r.Cap = lineCap
	c.r.Stroke(p, c.compositor(paint))
}

func (c *Canvas) clip() rect.Rect {
	b := c.img.Rect
	return rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
}

// compositor returns a callback which blends paint into the image,
// weighted by coverage, using the Porter-Duff "source over" operator.
func (c *Canvas) compositor(paint Paint) raster.EmitFunc {
	img := c.img
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			src := paint.At(xMin+i, y)
			a := float32(src.A) / 255 * min(cov, 1)
			if a == 0 {
				continue
			}
			px := row[4*i : 4*i+4 : 4*i+4]
			blend(px, src, a)
		}
	}
}

// blend composites the straight-alpha colour src with effective opacity a
// over the premultiplied pixel px.
func blend(px []uint8, src color.NRGBA, a float32) {
	keep := 1 - a
	px[0] = to8(float32(src.R)*a + float32(px[0])*keep)
	px[1] = to8(float32(src.G)*a + float32(px[1])*keep)
	px[2] = to8(float32(src.B)*a + float32(px[2])*keep)
	px[3] = to8(255*a + float32(px[3])*keep)
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
