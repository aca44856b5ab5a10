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

// Package writegraph renders drawings of planar graphs as PNG images.
//
// A graph is read from the writegraph2d format (see [graph.Read]), its
// vertices are fitted into the image (see [layout.Map]), and the edges and
// vertices are painted with anti-aliasing onto a transparent background.
package writegraph

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/writegraph/canvas"
	"seehuhn.de/go/writegraph/graph"
	"seehuhn.de/go/writegraph/layout"
)

// painter holds the state of a single rendering pass.
type painter struct {
	c    *canvas.Canvas
	opts *Options

	edgePaint          canvas.Paint
	outlinePaint       canvas.Paint
	gradStart, gradEnd Color

	// face is nil if labels are disabled
	face *canvas.Face
}

// Render draws g into a new image.  If logger is nil, the default logger
// is used.
func Render(g *graph.Graph, opts Options, logger *log.Logger) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c := canvas.New(opts.Width, opts.Height)
	if err := Draw(c, g, opts, logger); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// Draw paints g onto c: first all edges, then the vertices and their
// labels.  The canvas should be opts.Width by opts.Height pixels.  If
// logger is nil, the default logger is used.
func Draw(c *canvas.Canvas, g *graph.Graph, opts Options, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if g.Order() == 0 {
		return graph.ErrEmptyGraph
	}

	area, err := paintArea(&opts)
	if err != nil {
		return err
	}
	pts, err := layout.Map(g, opts.Rotation, area)
	if err != nil {
		return fmt.Errorf("placing vertices: %w", err)
	}
	logger.Debug("vertices placed",
		"vertices", g.Order(), "width", opts.Width, "height", opts.Height,
		"rotation", opts.Rotation)

	p := &painter{
		c:            c,
		opts:         &opts,
		edgePaint:    canvas.Solid(opts.EdgeColor.NRGBA()),
		outlinePaint: canvas.Solid(opts.outline().NRGBA()),
	}
	p.gradStart, p.gradEnd = opts.gradient()

	if opts.ShowNumbers {
		face, err := labelFace(g, &opts, logger)
		if err != nil {
			return err
		}
		if face != nil {
			defer face.Close()
			p.face = face
		}
	}

	n := p.drawEdges(g, pts)
	logger.Debug("edges drawn", "records", g.Size(), "drawn", n)
	p.drawVertices(g, pts)
	return nil
}

// WritePNG renders g and writes the image to w in PNG format.  Nothing is
// written to w if rendering or encoding fails.
func WritePNG(w io.Writer, g *graph.Graph, opts Options, logger *log.Logger) error {
	img, err := Render(g, opts, logger)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}
	return nil
}

// paintArea returns the range of possible vertex centres.  The vertical
// axis is flipped, so that model y grows upwards in the image.
func paintArea(o *Options) (rect.Rect, error) {
	vs := o.VertexSize
	left := o.Margin + (vs-1)/2
	right := o.Width - o.Margin - vs/2
	bottom := o.Height - o.Margin - (vs-1)/2
	top := o.Margin + vs/2
	if left >= right || top >= bottom {
		return rect.Rect{}, fmt.Errorf("%dx%d image with margin %d and vertex size %d: %w",
			o.Width, o.Height, o.Margin, vs, layout.ErrAreaTooSmall)
	}
	return rect.Rect{
		LLx: float64(left),
		URx: float64(right),
		LLy: float64(bottom),
		URy: float64(top),
	}, nil
}

// labelFace returns the font for the vertex labels, or nil if the vertex
// discs are too small for legible labels.
func labelFace(g *graph.Graph, o *Options, logger *log.Logger) (*canvas.Face, error) {
	ref, err := canvas.NewFace(referenceSize)
	if err != nil {
		return nil, err
	}
	defer ref.Close()

	maxLabel := g.Order()
	if o.ZeroBased {
		maxLabel--
	}
	size, ok := LabelFontSize(ref, maxLabel, o.VertexSize)
	if !ok {
		logger.Warn("vertex size too small to show vertex numbers",
			"vertex-size", o.VertexSize, "label", strconv.Itoa(maxLabel))
		return nil, nil
	}
	logger.Debug("label font", "size", size)
	return canvas.NewFace(float64(size))
}
