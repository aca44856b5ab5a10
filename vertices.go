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
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/writegraph/canvas"
	"seehuhn.de/go/writegraph/graph"
)

// drawVertices draws the vertex discs on top of the edges, followed by
// the labels if p.face is set.
func (p *painter) drawVertices(g *graph.Graph, pts []vec.Vec2) {
	for i := range g.Vertices {
		v := &g.Vertices[i]
		xp, yp := int(math.Floor(pts[i].X)), int(math.Floor(pts[i].Y))
		p.drawVertex(xp, yp)
		if p.face != nil {
			p.drawLabel(xp, yp, p.labelText(v.Number))
		}
	}
}

// drawVertex draws a single vertex centred on pixel (xp, yp).
func (p *painter) drawVertex(xp, yp int) {
	o := p.opts

	// cover the ends of the edges meeting here
	if ew := o.EdgeWidth; ew > 0 {
		x := float64(xp - (ew-1)/2)
		y := float64(yp - (ew-1)/2)
		p.c.FillEllipse(x, y, float64(ew), float64(ew), p.edgePaint)
	}

	d := o.VertexSize
	x := float64(xp - d/2)
	y := float64(yp - d/2)
	var body canvas.Paint = canvas.Solid(o.VertexColor.NRGBA())
	if o.UseGradient {
		body = &canvas.LinearGradient{
			From: vec.Vec2{X: x, Y: y},
			To:   vec.Vec2{X: x + float64(d), Y: y + float64(d)},
			C0:   p.gradStart.NRGBA(),
			C1:   p.gradEnd.NRGBA(),
		}
	}
	p.c.FillEllipse(x, y, float64(d), float64(d), body)
	p.c.DrawEllipse(x, y, float64(d), float64(d), p.outlinePaint)
}

// drawLabel centres text on (xp, yp).
func (p *painter) drawLabel(xp, yp int, text string) {
	w := p.face.Width(text)
	x := xp - int(math.Floor(float64(w)*0.52))
	y := yp + int(math.Floor(float64(p.face.Ascent())*0.47))
	p.c.DrawString(p.face, text, x, y, p.opts.NumberColor.NRGBA())
}

// labelText returns the label of the vertex with the given number.
func (p *painter) labelText(number int) string {
	if p.opts.ZeroBased {
		number--
	}
	return strconv.Itoa(number)
}
