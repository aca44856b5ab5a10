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

package canvas

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// bezierCircle is the control point distance for a quarter circle of
// radius 1 approximated by a cubic Bézier curve.
const bezierCircle = 0.5522847498

// Ellipse returns the closed path of the ellipse inscribed in the box with
// top-left corner (x, y), width w and height h.
func Ellipse(x, y, w, h float64) *path.Data {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	kx, ky := bezierCircle*rx, bezierCircle*ry
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}).
		CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}).
		CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy}).
		Close()
}

// Polygon returns the closed path through the given points.
func Polygon(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	if len(pts) > 0 {
		p.Close()
	}
	return p
}

// FillEllipse fills the ellipse inscribed in the box (x, y, w, h).
// Nothing is drawn if w or h is not positive.
func (c *Canvas) FillEllipse(x, y, w, h float64, paint Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Fill(Ellipse(x, y, w, h), false, paint)
}

// DrawEllipse draws a one pixel wide outline of the ellipse (x, y, w, h).
// The pen is centred on pixel centres, so that the outline touches the
// pixels x through x+w and y through y+h.
func (c *Canvas) DrawEllipse(x, y, w, h float64, paint Paint) {
	if w < 0 || h < 0 {
		return
	}
	c.Stroke(Ellipse(x+0.5, y+0.5, w, h), 1, graphics.LineCapSquare, paint)
}

// FillPolygon fills the polygon through pts, using the even-odd rule.
func (c *Canvas) FillPolygon(pts []vec.Vec2, paint Paint) {
	if len(pts) < 3 {
		return
	}
	c.Fill(Polygon(pts), true, paint)
}

// DrawLine draws a one pixel wide line between the centres of the pixels
// (x0, y0) and (x1, y1).  Both end pixels are included.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, paint Paint) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: float64(x0) + 0.5, Y: float64(y0) + 0.5}).
		LineTo(vec.Vec2{X: float64(x1) + 0.5, Y: float64(y1) + 0.5})
	c.Stroke(line, 1, graphics.LineCapSquare, paint)
}
