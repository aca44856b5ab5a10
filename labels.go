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
)

const (
	// referenceSize is the font size at which labels are measured.
	referenceSize = 12

	// minLabelAscent is the smallest legible ascent, in pixels.
	minLabelAscent = 7.5
)

// TextMetrics measures text set in a fixed font and size.
type TextMetrics interface {
	Width(s string) int
	Ascent() int
}

// LabelFontSize finds the font size at which the label maxLabel fits
// inside a vertex disc of the given diameter.  The metrics m must be for
// a font size of 12.
//
// The diagonal of the label's box is made 85% of the diameter.  If the
// scaled ascent is less than 7.5 pixels, the labels would be illegible and
// ok is false.
func LabelFontSize(m TextMetrics, maxLabel, diameter int) (size int, ok bool) {
	w := float64(m.Width(strconv.Itoa(maxLabel)))
	h := float64(m.Ascent())
	factor := float64(diameter) * 0.85 / math.Hypot(w, h)
	if !(h*factor >= minLabelAscent) {
		return 0, false
	}
	return int(math.Floor(referenceSize*factor + 0.5)), true
}
