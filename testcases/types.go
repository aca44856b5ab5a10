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

// Package testcases provides a gallery of graph drawings, used for
// testing and for visual inspection of the renderer.
package testcases

import (
	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/graph"
)

// TestCase is a graph together with the options used to render it.
type TestCase struct {
	Name    string // lowercase a-z, 0-9 and _ only
	Graph   *graph.Graph
	Options writegraph.Options
}

// build returns a graph with the given vertex coordinates and undirected
// edges, each stored at both end points.  Vertex indices start at 0.
func build(coords []float64, edges ...[2]int) *graph.Graph {
	g := &graph.Graph{}
	for i := 0; i+1 < len(coords); i += 2 {
		g.AddVertex(coords[i], coords[i+1])
	}
	for _, e := range edges {
		if err := g.Connect(e[0], e[1]); err != nil {
			panic(err)
		}
	}
	return g
}

// opts returns the default options, modified by the given functions.
func opts(modify ...func(o *writegraph.Options)) writegraph.Options {
	o := writegraph.DefaultOptions()
	for _, m := range modify {
		m(&o)
	}
	return o
}

func rotated(deg float64) func(o *writegraph.Options) {
	return func(o *writegraph.Options) { o.Rotation = deg }
}

func numbered(size int) func(o *writegraph.Options) {
	return func(o *writegraph.Options) {
		o.ShowNumbers = true
		o.VertexSize = size
	}
}
