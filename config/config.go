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

// Package config reads rendering options from TOML or YAML files.
//
// The keys are the long names of the command line flags:
//
//	width = 400
//	height = 300
//	vertex-size = 12
//	numbers = true
//	edge-color = "40,40,40"
//
// Keys which are not present in the file leave the corresponding option
// unchanged.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/writegraph"
)

// ErrFormat is returned by [Load] for files with an unknown extension.
var ErrFormat = errors.New("config: unsupported file format")

// File holds the settings found in a configuration file.  Nil fields were
// not set.
type File struct {
	Width      *int     `toml:"width" yaml:"width"`
	Height     *int     `toml:"height" yaml:"height"`
	EdgeWidth  *int     `toml:"edge-width" yaml:"edge-width"`
	VertexSize *int     `toml:"vertex-size" yaml:"vertex-size"`
	Margin     *int     `toml:"margin" yaml:"margin"`
	Rotation   *float64 `toml:"rotation" yaml:"rotation"`

	Numbers   *bool `toml:"numbers" yaml:"numbers"`
	ZeroBased *bool `toml:"zero-based" yaml:"zero-based"`
	Gradient  *bool `toml:"gradient" yaml:"gradient"`

	VertexColor   *string `toml:"vertex-color" yaml:"vertex-color"`
	GradientStart *string `toml:"gradient-start" yaml:"gradient-start"`
	GradientEnd   *string `toml:"gradient-end" yaml:"gradient-end"`
	OutlineColor  *string `toml:"outline-color" yaml:"outline-color"`
	EdgeColor     *string `toml:"edge-color" yaml:"edge-color"`
	NumberColor   *string `toml:"number-color" yaml:"number-color"`
}

// Load reads a configuration file.  The format is chosen by the file name
// extension: ".toml", ".yaml" or ".yml".  Unknown keys are an error.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, fmt.Errorf("%s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return File{}, fmt.Errorf("%s: %w %q", path, ErrFormat, ext)
	}
	return f, nil
}

// Apply copies the settings from f into opts.
func (f *File) Apply(opts *writegraph.Options) error {
	setInt(&opts.Width, f.Width)
	setInt(&opts.Height, f.Height)
	setInt(&opts.EdgeWidth, f.EdgeWidth)
	setInt(&opts.VertexSize, f.VertexSize)
	setInt(&opts.Margin, f.Margin)
	if f.Rotation != nil {
		opts.Rotation = *f.Rotation
	}
	setBool(&opts.ShowNumbers, f.Numbers)
	setBool(&opts.ZeroBased, f.ZeroBased)
	setBool(&opts.UseGradient, f.Gradient)

	colours := []struct {
		key string
		val *string
		dst *writegraph.Color
	}{
		{"vertex-color", f.VertexColor, &opts.VertexColor},
		{"edge-color", f.EdgeColor, &opts.EdgeColor},
		{"number-color", f.NumberColor, &opts.NumberColor},
	}
	for _, c := range colours {
		if c.val == nil {
			continue
		}
		col, err := writegraph.ParseColor(*c.val)
		if err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = col
	}

	optional := []struct {
		key string
		val *string
		dst **writegraph.Color
	}{
		{"gradient-start", f.GradientStart, &opts.GradientStart},
		{"gradient-end", f.GradientEnd, &opts.GradientEnd},
		{"outline-color", f.OutlineColor, &opts.OutlineColor},
	}
	for _, c := range optional {
		if c.val == nil {
			continue
		}
		col, err := writegraph.ParseColor(*c.val)
		if err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = &col
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
