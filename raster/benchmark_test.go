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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// The benchmarks draw a vertex marker: a filled disc with a thin ring.

var benchSizes = []int{8, 40, 400}

func BenchmarkRasteriserVertex(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dpx", size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size + 2), URy: float64(size + 2)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size+2, size+2))

			c := float64(size)/2 + 1
			disc := circlePath(c, c, float64(size)/2, false)
			write := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, v := range coverage {
					row[i] = uint8(v * 255)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(disc, write)
				r.Cap = graphics.LineCapSquare
				r.Stroke(disc, write)
			}
		})
	}
}

func BenchmarkVectorVertex(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dpx", size), func(b *testing.B) {
			n := size + 2
			z := vector.NewRasterizer(n, n)
			dst := image.NewAlpha(image.Rect(0, 0, n, n))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size)/2 + 1
			radius := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(n, n)
				addCircleToVector(z, c, c, radius)
				z.Draw(dst, dst.Bounds(), src, image.Point{})

				// x/image/vector has no stroker: approximate the ring by
				// an annulus
				z.Reset(n, n)
				addCircleToVector(z, c, c, radius+0.5)
				addCircleToVector(z, c, c, -(radius - 0.5))
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addCircleToVector adds a circle to z.  A negative radius reverses the
// orientation.
func addCircleToVector(z *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	s := float32(1)
	if radius < 0 {
		s, radius = -1, -radius
	}
	kr := k * radius
	z.MoveTo(cx+radius, cy)
	z.CubeTo(cx+radius, cy+s*kr, cx+kr, cy+s*radius, cx, cy+s*radius)
	z.CubeTo(cx-kr, cy+s*radius, cx-radius, cy+s*kr, cx-radius, cy)
	z.CubeTo(cx-radius, cy-s*kr, cx-kr, cy-s*radius, cx, cy-s*radius)
	z.CubeTo(cx+kr, cy-s*radius, cx+radius, cy-s*kr, cx+radius, cy)
	z.ClosePath()
}

// BenchmarkStrokeEdge measures a thick edge, drawn as a stroked line.
func BenchmarkStrokeEdge(b *testing.B) {
	clip := rect.Rect{URx: 200, URy: 200}
	r := NewRasteriser(clip)
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 20}).
		LineTo(vec.Vec2{X: 190, Y: 170})
	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 3.2
		r.Stroke(line, func(y, xMin int, coverage []float32) {})
	}
}
