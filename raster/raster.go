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

// Package raster converts paths into anti-aliased pixel coverage.
//
// A [Rasteriser] computes, for every pixel touched by a filled or stroked
// path, the fraction of the pixel area which lies inside the path.  The
// coverage values are handed to a callback one scanline at a time; the
// caller decides how to composite them.
//
// All coordinates are device pixels, with pixel (x, y) covering the unit
// square [x, x+1]×[y, y+1].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  coverage[i] belongs to
// pixel (xMin+i, y).  The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to coverage values.  Internal buffers are kept
// between calls, so that a single Rasteriser can be used for many paths
// without allocations.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip limits the output to an integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the shape of the ends of open subpaths.  Only butt and square
	// caps are supported.
	Cap graphics.LineCapStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	// Corners exceeding the limit are bevelled.
	MiterLimit float64

	// paths with a bounding box area below this many pixels are
	// accumulated in a 2D buffer, larger paths use an active edge list
	smallPathThreshold int

	cover     []float32
	area      []float32
	rowActive []bool
	edges     []edge
	active    []int

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64

	// stroke buffers
	segs     []strokeSegment
	subpaths []strokeSubpath
	dots     []vec.Vec2
	reversed []strokeSegment
	outline  []vec.Vec2
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.  All
// other parameters are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.MiterLimit = defaultMiterLimit
	r.smallPathThreshold = smallPathThreshold
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit EmitFunc) {
	r.startEdges()
	r.collectPathEdges(p)
	r.rasterise(rule, emit)
}

// rasterise turns the collected edge list into coverage.
func (r *Rasteriser) rasterise(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.deviceBBox()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillBuffered(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectPathEdges flattens p and appends its edges, in device space, to
// r.edges.  Open subpaths are closed implicitly.
func (r *Rasteriser) collectPathEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			c1, c2 := quadControls(current, p.Coords[k], p.Coords[k+1])
			r.flattenCubic(current, c1, c2, p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge appends the segment from a to b.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = a.X, a.X
		r.bboxYMin, r.bboxYMax = a.Y, a.Y
		r.bboxEmpty = false
	}
	r.bboxXMin = min(r.bboxXMin, a.X, b.X)
	r.bboxXMax = max(r.bboxXMax, a.X, b.X)
	r.bboxYMin = min(r.bboxYMin, a.Y, b.Y)
	r.bboxYMax = max(r.bboxYMax, a.Y, b.Y)
}

// deviceBBox returns the pixel range touched by the collected edges,
// clamped to the clip rectangle.
func (r *Rasteriser) deviceBBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// quadControls returns the control points of the cubic Bézier curve
// which traces the same curve as the quadratic one through p0, p1, p2.
func quadControls(p0, p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2) {
	return p0.Add(p1.Sub(p0).Mul(2.0 / 3)), p2.Add(p1.Sub(p2).Mul(2.0 / 3))
}

// flattenCubic approximates a cubic Bézier curve by line segments.  The
// number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage is accumulated in two per-pixel buffers.  An edge crossing pixel
// column x of a scanline adds its signed vertical extent dy to cover[x],
// and dy*(1-f) to area[x], where f is the mean horizontal position of the
// crossing inside the pixel.  Integrating a scanline from left to right,
// the signed area inside pixel x is
//
//	sum(cover[0:x]) + area[x].
//
// Edges to the left of the bounding box are folded into column 0.

// accumulate adds the contribution of e to scanline y.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= xMax:
		return
	case pixLeft == pixRight:
		addCrossing(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addCrossing(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// addCrossing records the part of e between lo and hi, which lies inside
// pixel column pix.
func addCrossing(e *edge, lo, hi float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate converts one scanline of cover/area values into coverage,
// in place in cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if rule == fillEvenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// emitTrimmed passes the non-zero part of a scanline to emit.
func emitTrimmed(y, xMin int, coverage []float32, emit EmitFunc) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo < hi {
		emit(y, xMin+lo, coverage[lo:hi])
	}
}

// fillBuffered accumulates all edges into a buffer covering the whole
// bounding box, then integrates the rows.
func (r *Rasteriser) fillBuffered(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.rowActive = slices.Grow(r.rowActive[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowActive)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.top())), yMin)
		last := min(int(math.Floor(e.bottom()))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			accumulate(e, y, r.cover[row*w:(row+1)*w], r.area[row*w:(row+1)*w], xMin, xMax)
			r.rowActive[row] = true
		}
	}

	for row := range h {
		if !r.rowActive[row] {
			continue
		}
		cover := r.cover[row*w : (row+1)*w]
		integrate(cover, r.area[row*w:(row+1)*w], rule)
		emitTrimmed(yMin+row, xMin, cover, emit)
	}
}

// fillScanlines processes one scanline at a time, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasteriser) fillScanlines(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		emitTrimmed(y, xMin, r.cover, emit)
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the bounding box area, in pixels, up to which
	// fillBuffered is used.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the shortest stroke segment which is kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of the turning angle at
	// which a join is drawn.
	collinearityThreshold = 1e-6
)
