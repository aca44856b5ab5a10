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
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Paint determines the colour of every pixel touched by a shape.
type Paint interface {
	At(x, y int) color.NRGBA
}

// Solid paints every pixel in the same colour.
type Solid color.NRGBA

// At implements the [Paint] interface.
func (s Solid) At(x, y int) color.NRGBA {
	return color.NRGBA(s)
}

// LinearGradient interpolates between two colours along the line from
// From to To.  Beyond the end points the colour is constant.  Each pixel
// is sampled at its centre.
type LinearGradient struct {
	From, To vec.Vec2
	C0, C1   color.NRGBA
}

// At implements the [Paint] interface.
func (g *LinearGradient) At(x, y int) color.NRGBA {
	axis := g.To.Sub(g.From)
	l2 := axis.Dot(axis)
	if l2 == 0 {
		return g.C0
	}
	p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	t := p.Sub(g.From).Dot(axis) / l2
	t = max(0, min(1, t))
	return color.NRGBA{
		R: lerp(g.C0.R, g.C1.R, t),
		G: lerp(g.C0.G, g.C1.G, t),
		B: lerp(g.C0.B, g.C1.B, t),
		A: lerp(g.C0.A, g.C1.A, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
