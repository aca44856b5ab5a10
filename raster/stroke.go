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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a subpath, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by +90°
}

func newSegment(a, b vec.Vec2) (strokeSegment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return strokeSegment{}, false
	}
	t := d.Mul(1 / l)
	return strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// strokeSubpath locates a subpath inside Rasteriser.segs.
type strokeSubpath struct {
	start, end int
	closed     bool
}

// Stroke fills the outline of p, using the current Width, Cap and
// MiterLimit.  Corners use miter joins.  Subpaths which consist of a
// single point are drawn as an axis-aligned square for square caps.
// Nothing is drawn if Width is not positive.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.flattenForStroke(p)

	r.startEdges()
	d := r.Width / 2
	for _, sp := range r.subpaths {
		r.strokeSubpath(r.segs[sp.start:sp.end], sp.closed, d)
	}
	for _, pt := range r.dots {
		r.strokeDot(pt, d)
	}
	r.rasterise(fillNonZero, emit)
}

// flattenForStroke converts p into straight segments, split by subpath.
func (r *Rasteriser) flattenForStroke(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0
	drawn := false
	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.subpaths = append(r.subpaths, strokeSubpath{first, len(r.segs), closed})
		case drawn:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		drawn = false
	}
	line := func(a, b vec.Vec2) {
		if seg, ok := newSegment(a, b); ok {
			r.segs = append(r.segs, seg)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			line(current, p.Coords[k])
			current = p.Coords[k]
			drawn = true
			k++
		case path.CmdQuadTo:
			c1, c2 := quadControls(current, p.Coords[k], p.Coords[k+1])
			r.flattenCubic(current, c1, c2, p.Coords[k+1], line)
			current = p.Coords[k+1]
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			current = p.Coords[k+2]
			drawn = true
			k += 3
		case path.CmdClose:
			line(current, start)
			current = start
			drawn = true
			finish(true)
		}
	}
	finish(false)
}

// strokeSubpath appends the outline of one subpath to the edge list.
// An open subpath gives one polygon: the left side forwards, the end cap,
// the right side backwards and the start cap.  A closed subpath gives two
// loops of opposite orientation.
func (r *Rasteriser) strokeSubpath(segs []strokeSegment, closed bool, d float64) {
	r.reversed = r.reversed[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		r.reversed = append(r.reversed, strokeSegment{
			A: s.B, B: s.A,
			T: s.T.Mul(-1), N: s.N.Mul(-1),
		})
	}

	r.outline = r.outline[:0]
	r.addSide(segs, closed, d)
	if closed {
		r.flushOutline()
		r.addSide(r.reversed, true, d)
		r.flushOutline()
		return
	}
	last := segs[len(segs)-1]
	r.addCap(last.B, last.T, d)
	r.addSide(r.reversed, false, d)
	first := r.reversed[len(r.reversed)-1]
	r.addCap(first.B, first.T, d)
	r.flushOutline()
}

// addSide appends the offset points on the +N side of segs, including
// the joins between consecutive segments.
func (r *Rasteriser) addSide(segs []strokeSegment, closed bool, d float64) {
	for i := range segs {
		seg := &segs[i]
		r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)), seg.B.Add(seg.N.Mul(d)))

		var next *strokeSegment
		switch {
		case i+1 < len(segs):
			next = &segs[i+1]
		case closed:
			next = &segs[0]
		default:
			continue
		}
		r.addJoin(seg, next, d)
	}
}

// addJoin appends the corner between seg and next on the +N side.
func (r *Rasteriser) addJoin(seg, next *strokeSegment, d float64) {
	P := seg.B
	sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	cosTheta := seg.T.Dot(next.T)

	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}
	if sinTheta > 0 {
		// inner side: pivot through the corner point
		r.outline = append(r.outline, P)
		return
	}

	// the miter is dropped, leaving a bevel, if it is too long
	h := (1 + cosTheta) / 2
	if h <= 0 {
		return
	}
	ratio := 1 / math.Sqrt(h)
	if ratio > r.MiterLimit {
		return
	}
	bisector := seg.N.Add(next.N)
	bisector = bisector.Mul(1 / bisector.Length())
	r.outline = append(r.outline, P.Add(bisector.Mul(d*ratio)))
}

// addCap appends the cap at P, where t points away from the stroke.  The
// outline is expected to end at P+N*d and continues at P-N*d.
func (r *Rasteriser) addCap(P, t vec.Vec2, d float64) {
	if r.Cap != graphics.LineCapSquare {
		return
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}
	ext := t.Mul(d)
	r.outline = append(r.outline,
		P.Add(n.Mul(d)).Add(ext),
		P.Sub(n.Mul(d)).Add(ext))
}

// strokeDot draws a subpath without direction.  Only square caps give a
// visible mark.
func (r *Rasteriser) strokeDot(P vec.Vec2, d float64) {
	if r.Cap != graphics.LineCapSquare {
		return
	}
	r.outline = append(r.outline[:0],
		vec.Vec2{X: P.X - d, Y: P.Y - d},
		vec.Vec2{X: P.X + d, Y: P.Y - d},
		vec.Vec2{X: P.X + d, Y: P.Y + d},
		vec.Vec2{X: P.X - d, Y: P.Y + d})
	r.flushOutline()
}

// flushOutline turns r.outline into a closed polygon in the edge list.
func (r *Rasteriser) flushOutline() {
	pts := r.outline
	if len(pts) >= 3 {
		for i := range pts {
			r.addEdge(pts[i], pts[(i+1)%len(pts)])
		}
	}
	r.outline = r.outline[:0]
}
