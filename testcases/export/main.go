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

// Command export writes the gallery of test cases to testdata/gallery.
//
// For every test case, the graph is written in writegraph2d format
// (name.w2d) and rendered to name.png.  An index of all cases is written
// to index.json.
package main

import (
	"encoding/json"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/graph"
	"seehuhn.de/go/writegraph/testcases"
)

const outDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}
	logger := log.New(io.Discard)

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeCase(name, tc, logger); err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeCase(name string, tc testcases.TestCase, logger *log.Logger) (err error) {
	w2d, err := os.Create(filepath.Join(outDir, name+".w2d"))
	if err != nil {
		return err
	}
	err = graph.Write(w2d, tc.Graph)
	if cerr := w2d.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	img, err := os.Create(filepath.Join(outDir, name+".png"))
	if err != nil {
		return err
	}
	err = writegraph.WritePNG(img, tc.Graph, tc.Options, logger)
	if cerr := img.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonTestCase struct {
	Name       string  `json:"name"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Vertices   int     `json:"vertices"`
	Edges      int     `json:"edges"`
	Rotation   float64 `json:"rotation,omitempty"`
	EdgeWidth  int     `json:"edge_width"`
	VertexSize int     `json:"vertex_size"`
	Numbers    bool    `json:"numbers,omitempty"`
	ZeroBased  bool    `json:"zero_based,omitempty"`
	Gradient   bool    `json:"gradient"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	o := tc.Options
	return jsonTestCase{
		Name:       name,
		Width:      o.Width,
		Height:     o.Height,
		Vertices:   tc.Graph.Order(),
		Edges:      tc.Graph.Size(),
		Rotation:   o.Rotation,
		EdgeWidth:  o.EdgeWidth,
		VertexSize: o.VertexSize,
		Numbers:    o.ShowNumbers,
		ZeroBased:  o.ZeroBased,
		Gradient:   o.UseGradient,
	}
}
