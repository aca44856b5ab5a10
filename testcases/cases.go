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

package testcases

import (
	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/graph"
)

var basicCases = []TestCase{
	{
		Name:    "single_vertex",
		Graph:   build([]float64{3, 4}),
		Options: opts(),
	},
	{
		Name:    "edge",
		Graph:   build([]float64{0, 0, 10, 0}, [2]int{0, 1}),
		Options: opts(),
	},
	{
		Name:    "triangle",
		Graph:   build([]float64{0, 0, 1, 0, 0, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}),
		Options: opts(),
	},
	{
		Name: "k4",
		Graph: build([]float64{0, 0, 4, 0, 2, 3.46, 2, 1.15},
			[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
			[2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}),
		Options: opts(),
	},
	{
		Name:    "k4_numbers",
		Graph:   build([]float64{0, 0, 4, 0, 2, 3.46, 2, 1.15}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}),
		Options: opts(numbered(24)),
	},
	{
		Name:  "k4_zero_based",
		Graph: build([]float64{0, 0, 4, 0, 2, 3.46, 2, 1.15}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}),
		Options: opts(numbered(24), func(o *writegraph.Options) {
			o.ZeroBased = true
		}),
	},
}

var degenerateCases = []TestCase{
	{
		Name:    "coincident",
		Graph:   build([]float64{1, 1, 1, 1, 1, 1}, [2]int{0, 1}, [2]int{1, 2}),
		Options: opts(),
	},
	{
		Name:    "vertical_line",
		Graph:   build([]float64{3, 0, 3, 5, 3, 10}, [2]int{0, 1}, [2]int{1, 2}),
		Options: opts(),
	},
	{
		Name:    "horizontal_line",
		Graph:   build([]float64{-1, 2, 0, 2, 4, 2}, [2]int{0, 1}, [2]int{1, 2}),
		Options: opts(),
	},
	{
		Name:    "tiny_spread",
		Graph:   build([]float64{1, 1, 1 + 1e-9, 1, 1, 1 + 2e-9}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}),
		Options: opts(),
	},
	{
		Name:    "one_sided_edge",
		Graph:   oneSided(),
		Options: opts(),
	},
}

// oneSided has two edges which are only stored at one end point: 1→2,
// which is not drawn, and 3→2, which is.
func oneSided() *graph.Graph {
	g := build([]float64{0, 0, 1, 0, 2, 0.5})
	if err := g.AddEdge(0, 1); err != nil {
		panic(err)
	}
	if err := g.AddEdge(2, 1); err != nil {
		panic(err)
	}
	return g
}

var rotationCases = []TestCase{
	{
		Name:    "triangle_90",
		Graph:   build([]float64{0, 0, 1, 0, 0, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}),
		Options: opts(rotated(90)),
	},
	{
		Name:    "triangle_450",
		Graph:   build([]float64{0, 0, 1, 0, 0, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}),
		Options: opts(rotated(450)),
	},
	{
		Name:    "path_30",
		Graph:   build([]float64{0, 0, 1, 0, 2, 0, 3, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}),
		Options: opts(rotated(30)),
	},
	{
		Name:    "wheel_minus_45",
		Graph:   wheel(6),
		Options: opts(rotated(-45)),
	},
}

var styleCases = []TestCase{
	{
		Name:  "thin_edges",
		Graph: wheel(8),
		Options: opts(func(o *writegraph.Options) {
			o.EdgeWidth = 1
		}),
	},
	{
		Name:  "no_edges",
		Graph: wheel(8),
		Options: opts(func(o *writegraph.Options) {
			o.EdgeWidth = 0
		}),
	},
	{
		Name:  "thick_edges",
		Graph: wheel(8),
		Options: opts(func(o *writegraph.Options) {
			o.EdgeWidth = 9
			o.VertexSize = 20
		}),
	},
	{
		Name:  "flat_vertices",
		Graph: wheel(8),
		Options: opts(func(o *writegraph.Options) {
			o.UseGradient = false
			o.VertexSize = 16
		}),
	},
	{
		Name:  "colours",
		Graph: wheel(8),
		Options: opts(numbered(22), func(o *writegraph.Options) {
			o.VertexColor = writegraph.Color{R: 120, G: 200, B: 90}
			o.EdgeColor = writegraph.Color{R: 90, G: 90, B: 90}
			o.NumberColor = writegraph.Color{R: 255, G: 255, B: 255}
			start := writegraph.Color{R: 255, G: 255, B: 255}
			end := writegraph.Color{R: 40, G: 120, B: 30}
			outline := writegraph.Color{R: 20, G: 60, B: 10}
			o.GradientStart = &start
			o.GradientEnd = &end
			o.OutlineColor = &outline
		}),
	},
	{
		Name:  "wide_image",
		Graph: grid(3, 4),
		Options: opts(func(o *writegraph.Options) {
			o.Width = 400
			o.Height = 120
			o.Margin = 12
		}),
	},
}
