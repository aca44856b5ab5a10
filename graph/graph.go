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

// Package graph holds the in-memory model of a graph drawing: numbered
// vertices with model coordinates and, per vertex, a list of outgoing edges.
//
// Edges refer to vertices by their index in [Graph.Vertices].  The graph is
// the only owner of its vertices; nothing in this package stores pointers
// between vertices.
package graph

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned by operations which need at least one vertex.
var ErrEmptyGraph = errors.New("graph has no vertices")

// Vertex is a numbered point in model space.
type Vertex struct {
	Number int     // 1-based vertex number
	X, Y   float64 // model coordinates
	Edges  []Edge  // outgoing edges, in declaration order
}

// Edge connects two vertices, given as indices into Graph.Vertices.
type Edge struct {
	From, To int
}

// Graph is a sequence of vertices in declaration order.
// Vertex i has number i+1.
type Graph struct {
	Vertices []Vertex
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.Vertices)
}

// Size returns the number of edge records.  An undirected connection which
// is declared from both endpoints counts twice.
func (g *Graph) Size() int {
	n := 0
	for i := range g.Vertices {
		n += len(g.Vertices[i].Edges)
	}
	return n
}

// AddVertex appends a vertex at the given position and returns its index.
func (g *Graph) AddVertex(x, y float64) int {
	idx := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vertex{Number: idx + 1, X: x, Y: y})
	return idx
}

// AddEdge appends an edge from vertex index from to vertex index to.
func (g *Graph) AddEdge(from, to int) error {
	n := len(g.Vertices)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("edge %d->%d: vertex index out of range [0,%d)", from, to, n)
	}
	v := &g.Vertices[from]
	v.Edges = append(v.Edges, Edge{From: from, To: to})
	return nil
}

// Connect adds the edge between the two vertex indices in both directions,
// the way writegraph2d files declare undirected connections.
func (g *Graph) Connect(a, b int) error {
	if err := g.AddEdge(a, b); err != nil {
		return err
	}
	return g.AddEdge(b, a)
}

// Edges calls yield for every edge record, in vertex order.
func (g *Graph) Edges(yield func(Edge) bool) {
	for i := range g.Vertices {
		for _, e := range g.Vertices[i].Edges {
			if !yield(e) {
				return
			}
		}
	}
}
