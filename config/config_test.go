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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/writegraph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"opts.toml", `
width = 400
vertex-size = 12
rotation = 45.5
numbers = true
gradient = false
edge-color = "10,20,30"
outline-color = "1,2,3"
`},
		{"opts.yaml", `
width: 400
vertex-size: 12
rotation: 45.5
numbers: true
gradient: false
edge-color: "10,20,30"
outline-color: "1,2,3"
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Load(writeFile(t, tc.name, tc.content))
			if err != nil {
				t.Fatal(err)
			}
			opts := writegraph.DefaultOptions()
			if err := f.Apply(&opts); err != nil {
				t.Fatal(err)
			}

			want := writegraph.DefaultOptions()
			want.Width = 400
			want.VertexSize = 12
			want.Rotation = 45.5
			want.ShowNumbers = true
			want.UseGradient = false
			want.EdgeColor = writegraph.Color{R: 10, G: 20, B: 30}

			if opts.OutlineColor == nil || *opts.OutlineColor != (writegraph.Color{R: 1, G: 2, B: 3}) {
				t.Errorf("outline colour %v", opts.OutlineColor)
			}
			opts.OutlineColor = nil
			if opts != want {
				t.Errorf("got %+v\nwant %+v", opts, want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "opts.ini", "width=3")); !errors.Is(err, ErrFormat) {
		t.Errorf("ini file: got %v", err)
	}
	if _, err := Load(writeFile(t, "opts.toml", "colour = 7")); err == nil {
		t.Error("unknown TOML key accepted")
	}
	if _, err := Load(writeFile(t, "opts.yml", "colour: 7")); err == nil {
		t.Error("unknown YAML key accepted")
	}
	if _, err := Load(writeFile(t, "opts.toml", "width = \"wide\"")); err == nil {
		t.Error("string width accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	f, err := Load(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("empty file: %v", err)
	}
	opts := writegraph.DefaultOptions()
	if err := f.Apply(&opts); err != nil || opts != writegraph.DefaultOptions() {
		t.Errorf("empty file changed the options: %+v, %v", opts, err)
	}
}

func TestApplyBadColour(t *testing.T) {
	bad := "red"
	f := File{NumberColor: &bad}
	opts := writegraph.DefaultOptions()
	if err := f.Apply(&opts); err == nil {
		t.Error("colour name accepted")
	}
}
