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

// Package layout maps the model coordinates of a graph drawing onto a
// rectangular area of the output image.
//
// The mapping first rotates the drawing, then scales it uniformly so that
// it fits the area, centres it, and finally snaps every coordinate to a
// fine grid.  Snapping makes the output independent of tiny rounding
// differences between equivalent inputs.
package layout

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/writegraph/graph"
)

// ErrAreaTooSmall is returned by [Map] when the target area has zero width
// or zero height.
var ErrAreaTooSmall = errors.New("layout: target area is empty")

// ErrCoordinates is returned when vertex coordinates are not finite, or
// are too far apart to be scaled into the target area.
var ErrCoordinates = errors.New("layout: vertex coordinates out of range")

// Rotation returns the matrix which rotates by the given angle, in
// degrees, counter-clockwise in model space.  Angles are reduced modulo
// 360 and multiples of 90 degrees give exact results.
func Rotation(degrees float64) matrix.Matrix {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}

	var sin, cos float64
	switch a {
	case 0:
		sin, cos = 0, 1
	case 90:
		sin, cos = 1, 0
	case 180:
		sin, cos = 0, -1
	case 270:
		sin, cos = -1, 0
	default:
		sin, cos = math.Sincos(a * math.Pi / 180)
	}
	return matrix.Matrix{cos, sin, -sin, cos, 0, 0}
}

func apply(m matrix.Matrix, x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// Bounds returns the bounding box of the vertex coordinates after rotation.
func Bounds(g *graph.Graph, rotation float64) (rect.Rect, error) {
	if g.Order() == 0 {
		return rect.Rect{}, graph.ErrEmptyGraph
	}
	m := Rotation(rotation)

	v0 := &g.Vertices[0]
	p := apply(m, v0.X, v0.Y)
	box := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for i := range g.Vertices {
		v := &g.Vertices[i]
		if !finite(v.X) || !finite(v.Y) {
			return rect.Rect{}, fmt.Errorf("vertex %d at (%g, %g): %w", v.Number, v.X, v.Y, ErrCoordinates)
		}
		p := apply(m, v.X, v.Y)
		box.LLx = min(box.LLx, p.X)
		box.URx = max(box.URx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URy = max(box.URy, p.Y)
	}
	return box, nil
}

// axis describes one direction of the target area.  The image y axis
// points down while the model y axis points up, so an axis may be
// reversed.
type axis struct {
	sign   float64 // +1 or -1
	lo, hi float64
}

func newAxis(from, to float64) axis {
	if from <= to {
		return axis{sign: 1, lo: from, hi: to}
	}
	return axis{sign: -1, lo: to, hi: from}
}

func (a axis) length() float64 {
	return a.hi - a.lo
}

// Map computes the image position of every vertex of g.  The result is
// indexed like g.Vertices.
//
// The area gives the positions of the extreme vertices: model x runs from
// area.LLx to area.URx, and model y runs from area.LLy to area.URy.  For
// image coordinates, where y grows downwards, area.LLy is normally the
// larger of the two y values.
//
// The drawing is scaled uniformly to fit the area and centred in the
// direction where it is too small.  If all vertices coincide, they are
// placed in the centre of the area.
func Map(g *graph.Graph, rotation float64, area rect.Rect) ([]vec.Vec2, error) {
	box, err := Bounds(g, rotation)
	if err != nil {
		return nil, err
	}

	hor := newAxis(area.LLx, area.URx)
	ver := newAxis(area.LLy, area.URy)
	horRng := hor.length()
	verRng := ver.length()
	if !(horRng > 0) || !(verRng > 0) || math.IsInf(horRng, 0) || math.IsInf(verRng, 0) {
		return nil, ErrAreaTooSmall
	}

	res := make([]vec.Vec2, g.Order())

	xr := box.URx - box.LLx
	yr := box.URy - box.LLy
	if !finite(xr) || !finite(yr) {
		return nil, fmt.Errorf("bounding box %gx%g: %w", xr, yr, ErrCoordinates)
	}
	if xr == 0 && yr == 0 {
		centre := vec.Vec2{X: (hor.lo + hor.hi) / 2, Y: (ver.lo + ver.hi) / 2}
		for i := range res {
			res[i] = centre
		}
		return res, nil
	}

	// delta is the grid size for the final coordinates
	var delta float64
	if xr == 0 || yr == 0 {
		delta = max(xr/verRng, yr/horRng) / 1e6
	} else {
		delta = min(xr/horRng, yr/verRng) / 1e6
	}
	scale := max(delta, min(horRng/(xr+delta), verRng/(yr+delta)))
	if !finite(scale) || !(scale > 0) {
		return nil, fmt.Errorf("scale %g: %w", scale, ErrCoordinates)
	}

	horOffset := (box.LLx+box.URx+delta*hor.sign)/2*scale*hor.sign - horRng/2 - hor.lo
	verOffset := (box.LLy+box.URy+delta*ver.sign)/2*scale*ver.sign - verRng/2 - ver.lo

	m := Rotation(rotation)
	for i := range g.Vertices {
		v := &g.Vertices[i]
		p := apply(m, v.X, v.Y)
		q := vec.Vec2{
			X: snap(p.X*scale*hor.sign-horOffset-hor.lo, delta) + hor.lo,
			Y: snap(p.Y*scale*ver.sign-verOffset-ver.lo, delta) + ver.lo,
		}
		if !finite(q.X) || !finite(q.Y) {
			return nil, fmt.Errorf("vertex %d: %w", v.Number, ErrCoordinates)
		}
		res[i] = q
	}
	return res, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// snap rounds x to a multiple of delta, rounding halves up.
func snap(x, delta float64) float64 {
	return math.Floor(x/delta+0.5) * delta
}
