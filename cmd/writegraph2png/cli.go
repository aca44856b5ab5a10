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

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/config"
	"seehuhn.de/go/writegraph/graph"
)

var errWatchStdin = errors.New("--watch needs --input")

// cliFlags holds the values of the command line flags.
type cliFlags struct {
	config  config.File // values given on the command line
	file    string      // --config
	input   string
	watch   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	def := writegraph.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "writegraph2png [flags] [output.png]",
		Short: "Render a planar graph drawing as a PNG image",
		Long: `Writegraph2png reads a planar graph drawing in writegraph2d format
and writes a PNG image of it.  The graph is read from standard input
unless --input is given.  The image is written to image.png unless an
output file name is given.

Colours are given as "r,g,b" with components between 0 and 255.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			output := "image.png"
			if len(args) > 0 {
				output = args[0]
			}

			ctx := cmd.Context()
			if f.watch {
				if f.input == "" {
					return errWatchStdin
				}
				return watch(ctx, f.input, output, opts)
			}
			return convert(ctx, cmd.InOrStdin(), f.input, output, opts)
		},
	}

	c := &f.config
	flags := cmd.Flags()
	c.Width = flags.Int("width", def.Width, "image width in pixels")
	c.Height = flags.Int("height", def.Height, "image height in pixels")
	c.EdgeWidth = flags.Int("edge-width", def.EdgeWidth, "edge width in pixels, 0 hides the edges")
	c.VertexSize = flags.Int("vertex-size", def.VertexSize, "vertex diameter in pixels")
	c.Margin = flags.Int("margin", def.Margin, "empty space around the drawing")
	c.Rotation = flags.Float64("rotation", def.Rotation, "rotate the drawing counter-clockwise by this many degrees")
	c.Numbers = flags.Bool("numbers", def.ShowNumbers, "show vertex numbers")
	c.ZeroBased = flags.Bool("zero-based", def.ZeroBased, "count vertices from 0")
	c.Gradient = flags.Bool("gradient", def.UseGradient, "shade the vertices with a colour gradient")
	c.VertexColor = flags.String("vertex-color", def.VertexColor.String(), "vertex colour")
	c.GradientStart = flags.String("gradient-start", "", "top-left gradient colour (default: derived from --vertex-color)")
	c.GradientEnd = flags.String("gradient-end", "", "bottom-right gradient colour (default: derived from --vertex-color)")
	c.OutlineColor = flags.String("outline-color", "", "vertex outline colour (default: --edge-color)")
	c.EdgeColor = flags.String("edge-color", def.EdgeColor.String(), "edge colour")
	c.NumberColor = flags.String("number-color", def.NumberColor.String(), "vertex number colour")

	flags.StringVarP(&f.input, "input", "i", "", "read the graph from this file instead of standard input")
	flags.StringVar(&f.file, "config", "", "read options from a TOML or YAML file")
	flags.BoolVarP(&f.watch, "watch", "w", false, "render again whenever the input file changes")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// options combines the defaults, the configuration file and the command
// line flags, in this order.
func (f *cliFlags) options(cmd *cobra.Command) (writegraph.Options, error) {
	opts := writegraph.DefaultOptions()
	if f.file != "" {
		file, err := config.Load(f.file)
		if err != nil {
			return opts, err
		}
		if err := file.Apply(&opts); err != nil {
			return opts, fmt.Errorf("%s: %w", f.file, err)
		}
	}

	changed := f.changed(cmd)
	if err := changed.Apply(&opts); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

// changed returns the settings which were given explicitly on the command
// line.
func (f *cliFlags) changed(cmd *cobra.Command) *config.File {
	set := cmd.Flags().Changed
	c := &f.config
	res := &config.File{}
	if set("width") {
		res.Width = c.Width
	}
	if set("height") {
		res.Height = c.Height
	}
	if set("edge-width") {
		res.EdgeWidth = c.EdgeWidth
	}
	if set("vertex-size") {
		res.VertexSize = c.VertexSize
	}
	if set("margin") {
		res.Margin = c.Margin
	}
	if set("rotation") {
		res.Rotation = c.Rotation
	}
	if set("numbers") {
		res.Numbers = c.Numbers
	}
	if set("zero-based") {
		res.ZeroBased = c.ZeroBased
	}
	if set("gradient") {
		res.Gradient = c.Gradient
	}
	if set("vertex-color") {
		res.VertexColor = c.VertexColor
	}
	if set("gradient-start") {
		res.GradientStart = c.GradientStart
	}
	if set("gradient-end") {
		res.GradientEnd = c.GradientEnd
	}
	if set("outline-color") {
		res.OutlineColor = c.OutlineColor
	}
	if set("edge-color") {
		res.EdgeColor = c.EdgeColor
	}
	if set("number-color") {
		res.NumberColor = c.NumberColor
	}
	return res
}

// convert reads a graph from the file input, or from stdin if input is
// empty, and writes the image to output.
func convert(ctx context.Context, stdin io.Reader, input, output string, opts writegraph.Options) error {
	logger := loggerFromContext(ctx)

	g, err := readGraph(stdin, input)
	if err != nil {
		return err
	}
	logger.Debug("read graph", "vertices", g.Order(), "edges", g.Size())

	buf := &bytes.Buffer{}
	if err := writegraph.WritePNG(buf, g, opts, logger); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		logger.Error("cannot write image", "file", output, "err", err)
		return err
	}
	logger.Info("wrote image", "file", output, "bytes", buf.Len())
	return nil
}

func readGraph(stdin io.Reader, input string) (g *graph.Graph, err error) {
	if input == "" {
		return graph.Read(stdin)
	}

	fd, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	g, err = graph.Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return g, nil
}
