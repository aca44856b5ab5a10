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
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidOption is returned by [Options.Validate] for option values
// which cannot be rendered.
var ErrInvalidOption = errors.New("invalid option")

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// NRGBA converts c to an opaque [color.NRGBA].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String formats c in the "r,g,b" form accepted by [ParseColor].
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseColor parses a colour given as three comma separated integers.
// Components outside the range 0 to 255 are clamped.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("colour %q: need three components", s)
	}
	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, fmt.Errorf("colour %q: %w", s, err)
		}
		rgb[i] = uint8(max(0, min(v, 255)))
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// shift adds the given offsets to the components of c, clamping the
// result.
func (c Color) shift(dr, dg, db int) Color {
	clamp := func(v int) uint8 { return uint8(max(0, min(v, 255))) }
	return Color{
		R: clamp(int(c.R) + dr),
		G: clamp(int(c.G) + dg),
		B: clamp(int(c.B) + db),
	}
}

// Options control the appearance of a rendered graph.
// Use [DefaultOptions] to obtain the standard settings.
type Options struct {
	// Width and Height give the image size in pixels.
	Width, Height int

	// EdgeWidth is the line width of edges in pixels.  Zero hides the
	// edges.
	EdgeWidth int

	// VertexSize is the diameter of the vertex discs in pixels.
	VertexSize int

	// Margin is the empty space around the drawing, in pixels.
	Margin int

	// Rotation turns the drawing counter-clockwise, in degrees.
	Rotation float64

	// ShowNumbers enables vertex labels.
	ShowNumbers bool

	// ZeroBased makes vertex labels count from 0 instead of 1.
	ZeroBased bool

	// UseGradient shades vertices with a diagonal colour gradient.
	UseGradient bool

	VertexColor Color
	EdgeColor   Color
	NumberColor Color

	// GradientStart and GradientEnd override the gradient colours.  If
	// nil, they are derived from VertexColor.
	GradientStart *Color
	GradientEnd   *Color

	// OutlineColor is used for the vertex outlines.  If nil, EdgeColor is
	// used.
	OutlineColor *Color
}

// DefaultOptions returns the standard rendering options.
func DefaultOptions() Options {
	return Options{
		Width:       200,
		Height:      200,
		EdgeWidth:   3,
		VertexSize:  8,
		Margin:      5,
		UseGradient: true,
		VertexColor: Color{R: 250, G: 178, B: 126},
		EdgeColor:   Color{},
		NumberColor: Color{R: 64, G: 64, B: 255},
	}
}

// Validate checks that the options describe a drawable image.
func (o *Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidOption, o.Width, o.Height)
	case o.VertexSize <= 0:
		return fmt.Errorf("%w: vertex size %d", ErrInvalidOption, o.VertexSize)
	case o.EdgeWidth < 0:
		return fmt.Errorf("%w: edge width %d", ErrInvalidOption, o.EdgeWidth)
	case o.Margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidOption, o.Margin)
	case math.IsNaN(o.Rotation) || math.IsInf(o.Rotation, 0):
		return fmt.Errorf("%w: rotation %g", ErrInvalidOption, o.Rotation)
	}
	return nil
}

// gradient returns the colours of the top-left and bottom-right corners
// of the vertex discs.
func (o *Options) gradient() (Color, Color) {
	start := o.VertexColor.shift(4, -14, -26)
	end := o.VertexColor.shift(-4, 14, 26)
	if o.GradientStart != nil {
		start = *o.GradientStart
	}
	if o.GradientEnd != nil {
		end = *o.GradientEnd
	}
	return start, end
}

func (o *Options) outline() Color {
	if o.OutlineColor != nil {
		return *o.OutlineColor
	}
	return o.EdgeColor
}
