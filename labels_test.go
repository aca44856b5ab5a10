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
	"testing"

	"seehuhn.de/go/writegraph/canvas"
)

// fixedMetrics describes a monospaced font.
type fixedMetrics struct {
	digit, ascent int
}

func (m fixedMetrics) Width(s string) int { return m.digit * len(s) }
func (m fixedMetrics) Ascent() int        { return m.ascent }

func TestLabelFontSize(t *testing.T) {
	m := fixedMetrics{digit: 7, ascent: 9}
	cases := []struct {
		label, diameter int
		size            int
		ok              bool
	}{
		{9, 8, 0, false},
		{9, 30, 27, true},   // factor 25.5/√130
		{100, 20, 0, false}, // three digits need more room
		{100, 30, 13, true}, // factor 25.5/√522
		{100, 60, 27, true}, // factor 51/√522
		{1, 13, 12, true},   // ascent 8.72
		{1, 11, 0, false},   // ascent 7.38
	}
	for _, tc := range cases {
		size, ok := LabelFontSize(m, tc.label, tc.diameter)
		if size != tc.size || ok != tc.ok {
			t.Errorf("LabelFontSize(%d, %d) = %d, %t; want %d, %t",
				tc.label, tc.diameter, size, ok, tc.size, tc.ok)
		}
	}
}

// TestLabelFontSizeShrinking checks that smaller discs never get larger
// labels, and that labels eventually disappear.
func TestLabelFontSizeShrinking(t *testing.T) {
	face, err := canvas.NewFace(referenceSize)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	for _, n := range []int{1, 9, 10, 57, 1000} {
		prev := 1 << 30
		seenNone := false
		for d := 200; d > 0; d-- {
			size, ok := LabelFontSize(face, n, d)
			if !ok {
				seenNone = true
				continue
			}
			if seenNone {
				t.Errorf("n=%d: labels reappear at diameter %d", n, d)
			}
			if size > prev {
				t.Errorf("n=%d: size grows from %d to %d at diameter %d", n, prev, size, d)
			}
			prev = size

			// the ascent at the chosen size stays legible
			ascent := float64(face.Ascent()) * float64(size) / referenceSize
			if ascent < minLabelAscent-float64(face.Ascent())/(2*referenceSize) {
				t.Errorf("n=%d, d=%d: ascent %g is illegible", n, d, ascent)
			}
		}
		if !seenNone {
			t.Errorf("n=%d: labels fit into every disc", n)
		}
	}

	// the default vertex size is too small for two digit labels
	if _, ok := LabelFontSize(face, 10, DefaultOptions().VertexSize); ok {
		t.Error("labels fit into the default vertex size")
	}
}
