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
	"math"

	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/graph"
)

var familyCases = []TestCase{
	{
		Name:    "cycle_12",
		Graph:   cycle(12),
		Options: opts(),
	},
	{
		Name:    "wheel_20",
		Graph:   wheel(20),
		Options: opts(numbered(20)),
	},
	{
		Name:    "grid_5x5",
		Graph:   grid(5, 5),
		Options: opts(),
	},
	{
		Name:    "grid_30x30",
		Graph:   grid(30, 30),
		Options: opts(func(o *writegraph.Options) { o.Width, o.Height, o.EdgeWidth, o.VertexSize = 600, 600, 1, 6 }),
	},
	{
		Name:    "cube",
		Graph:   cube(),
		Options: opts(numbered(20)),
	},
	{
		Name:    "octahedron",
		Graph:   octahedron(),
		Options: opts(),
	},
	{
		Name:    "dodecahedron",
		Graph:   dodecahedron(),
		Options: opts(numbered(28), func(o *writegraph.Options) { o.Width, o.Height = 400, 400 }),
	},
}

// ring returns n points on a circle of the given radius.
func ring(n int, radius, phase float64) []float64 {
	coords := make([]float64, 0, 2*n)
	for i := range n {
		s, c := math.Sincos(phase + 2*math.Pi*float64(i)/float64(n))
		coords = append(coords, radius*c, radius*s)
	}
	return coords
}

func cycle(n int) *graph.Graph {
	edges := make([][2]int, n)
	for i := range n {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return build(ring(n, 1, 0), edges...)
}

// wheel is a cycle of n vertices together with a hub in the centre.
func wheel(n int) *graph.Graph {
	coords := append(ring(n, 1, 0), 0, 0)
	var edges [][2]int
	for i := range n {
		edges = append(edges, [2]int{i, (i + 1) % n}, [2]int{i, n})
	}
	return build(coords, edges...)
}

func grid(rows, cols int) *graph.Graph {
	var coords []float64
	var edges [][2]int
	for r := range rows {
		for c := range cols {
			coords = append(coords, float64(c), float64(r))
			i := r*cols + c
			if c+1 < cols {
				edges = append(edges, [2]int{i, i + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{i, i + cols})
			}
		}
	}
	return build(coords, edges...)
}

// cube is drawn as two nested squares.
func cube() *graph.Graph {
	coords := append(ring(4, 2, math.Pi/4), ring(4, 0.8, math.Pi/4)...)
	var edges [][2]int
	for i := range 4 {
		j := (i + 1) % 4
		edges = append(edges, [2]int{i, j}, [2]int{4 + i, 4 + j}, [2]int{i, 4 + i})
	}
	return build(coords, edges...)
}

// octahedron is drawn as two nested triangles.
func octahedron() *graph.Graph {
	coords := append(ring(3, 2, math.Pi/2), ring(3, 0.7, -math.Pi/2)...)
	var edges [][2]int
	for i := range 3 {
		j := (i + 1) % 3
		edges = append(edges, [2]int{i, j}, [2]int{3 + i, 3 + j})
	}
	// every inner vertex sees the two opposite outer vertices
	for i := range 3 {
		edges = append(edges, [2]int{3 + i, (i + 1) % 3}, [2]int{3 + i, (i + 2) % 3})
	}
	return build(coords, edges...)
}

// dodecahedron is the Schlegel diagram with four rings of five vertices.
func dodecahedron() *graph.Graph {
	var coords []float64
	coords = append(coords, ring(5, 4, math.Pi/2)...)
	coords = append(coords, ring(5, 2.6, math.Pi/2)...)
	coords = append(coords, ring(5, 1.8, math.Pi/2+math.Pi/5)...)
	coords = append(coords, ring(5, 0.9, math.Pi/2+math.Pi/5)...)

	var edges [][2]int
	for i := range 5 {
		j := (i + 1) % 5
		edges = append(edges,
			[2]int{i, j},           // outer pentagon
			[2]int{i, 5 + i},       // spokes
			[2]int{5 + i, 10 + i},  // zig-zag ring
			[2]int{5 + j, 10 + i},
			[2]int{10 + i, 15 + i}, // spokes
			[2]int{15 + i, 15 + j}, // inner pentagon
		)
	}
	return build(coords, edges...)
}
