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
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var parseRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Face is a font at a fixed size, together with the measurements needed
// to position labels.
type Face struct {
	face font.Face
}

// NewFace returns the Go Regular font at the given size in pixels.
func NewFace(size float64) (*Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("canvas: invalid font size %g", size)
	}
	fnt, err := parseRegular()
	if err != nil {
		return nil, fmt.Errorf("canvas: parsing Go Regular: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	return &Face{face: face}, nil
}

// Close releases the resources held by f.
func (f *Face) Close() error {
	return f.face.Close()
}

// Width returns the advance width of s, rounded up to whole pixels.
func (f *Face) Width(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// Ascent returns the distance from the baseline to the top of the
// tallest glyphs, rounded up to whole pixels.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// DrawString draws s with its baseline starting at (x, y).
func (c *Canvas) DrawString(f *Face, s string, x, y int, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}
