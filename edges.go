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

package writegraph

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/writegraph/canvas"
	"seehuhn.de/go/writegraph/graph"
)

// drawEdges draws every edge of g once.  Each undirected edge is stored
// at both of its end points; only the copy which points to the vertex
// with the smaller or equal number is drawn.
func (p *painter) drawEdges(g *graph.Graph, pts []vec.Vec2) int {
	if p.opts.EdgeWidth <= 0 {
		return 0
	}
	count := 0
	for e := range g.Edges {
		if g.Vertices[e.To].Number > g.Vertices[e.From].Number {
			continue
		}
		drawEdge(p.c, pts[e.From], pts[e.To], p.opts.EdgeWidth, p.edgePaint)
		count++
	}
	return count
}

// drawEdge draws a straight edge between the pixels containing a and b.
// Edges of width 1 are drawn as thin lines, wider edges as filled
// quadrilaterals with integer corners.
func drawEdge(c *canvas.Canvas, a, b vec.Vec2, width int, paint canvas.Paint) {
	if width <= 0 {
		return
	}
	x1, y1 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x2, y2 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	if x1 == x2 && y1 == y2 {
		return
	}
	if width == 1 {
		c.DrawLine(x1, y1, x2, y2, paint)
		return
	}

	n := vec.Vec2{X: float64(y1 - y2), Y: float64(x2 - x1)}
	n = n.Mul(1 / n.Length())
	w := float64(width) + 0.2

	p1 := vec.Vec2{X: float64(x1), Y: float64(y1)}.Sub(n.Mul(w / 2))
	p2 := vec.Vec2{X: float64(x2), Y: float64(y2)}.Sub(n.Mul(w / 2))
	p1 = roundVec(p1)
	p2 = roundVec(p2)
	quad := []vec.Vec2{
		roundVec(p1.Add(n.Mul(w))),
		p1,
		p2,
		roundVec(p2.Add(n.Mul(w))),
	}
	c.FillPolygon(quad, paint)
}

// roundVec rounds both coordinates to the nearest integer, with halves
// rounded up.
func roundVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.Floor(v.X + 0.5), Y: math.Floor(v.Y + 0.5)}
}
