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

package writegraph_test

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/graph"
	"seehuhn.de/go/writegraph/testcases"
)

var discard = log.New(io.Discard)

func forAllCases(t *testing.T, f func(t *testing.T, name string, tc testcases.TestCase)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				f(t, name, tc)
			})
		}
	}
}

func TestGallery(t *testing.T) {
	forAllCases(t, func(t *testing.T, name string, tc testcases.TestCase) {
		img, err := writegraph.Render(tc.Graph, tc.Options, discard)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != tc.Options.Width || b.Dy() != tc.Options.Height {
			t.Errorf("image size %dx%d", b.Dx(), b.Dy())
		}

		// rendering is deterministic
		again, err := writegraph.Render(tc.Graph, tc.Options, discard)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(img.Pix, again.Pix) {
			t.Error("two renderings differ")
		}

		// a full turn makes no difference
		turned := tc.Options
		turned.Rotation += 360
		other, err := writegraph.Render(tc.Graph, turned, discard)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(img.Pix, other.Pix) {
			t.Errorf("rotation %g and %g differ", tc.Options.Rotation, turned.Rotation)
		}

		painted := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				painted++
			}
		}
		if painted == 0 {
			t.Error("nothing painted")
		}
	})
}

// TestGalleryRoundTrip writes every graph in writegraph2d format, reads it
// back and checks that the image does not change.
func TestGalleryRoundTrip(t *testing.T) {
	forAllCases(t, func(t *testing.T, name string, tc testcases.TestCase) {
		buf := &bytes.Buffer{}
		if err := graph.Write(buf, tc.Graph); err != nil {
			t.Fatal(err)
		}
		g, err := graph.Read(buf)
		if err != nil {
			t.Fatal(err)
		}

		want := &bytes.Buffer{}
		if err := writegraph.WritePNG(want, tc.Graph, tc.Options, discard); err != nil {
			t.Fatal(err)
		}
		got := &bytes.Buffer{}
		if err := writegraph.WritePNG(got, g, tc.Options, discard); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got.Bytes(), want.Bytes()) {
			t.Error("image changed after writing and reading the graph")
		}
	})
}

// TestAgainstReference compares the coverage of the rendered shapes with
// reference images made by Ghostscript.
//
// This test is opt-in: the reference images are not part of the
// repository, and cases without a reference are skipped.  To enable it,
// install Ghostscript and run "go run ./testcases/genpdf" in the module
// root, which writes testdata/reference/<category>_<name>.png.
func TestAgainstReference(t *testing.T) {
	forAllCases(t, func(t *testing.T, name string, tc testcases.TestCase) {
		refPath := filepath.Join("testdata", "reference", name+".png")
		ref, err := loadGray(refPath)
		if errors.Is(err, fs.ErrNotExist) {
			t.Skip("no reference image")
		} else if err != nil {
			t.Fatalf("loading reference: %v", err)
		}

		opts := tc.Options
		opts.ShowNumbers = false
		img, err := writegraph.Render(tc.Graph, opts, discard)
		if err != nil {
			t.Fatal(err)
		}
		w, h := opts.Width, opts.Height
		actual := make([]byte, w*h)
		for y := range h {
			for x := range w {
				actual[y*w+x] = img.RGBAAt(x, y).A
			}
		}

		if err := compareImages(name, ref, actual, w, h); err != nil {
			t.Error(err)
		}
	})
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts small differences along the shape boundaries:
// 80% of the pixels must be identical, 95% must differ by less than 64
// and 99% by less than 128.
func compareImages(name string, expected, actual []byte, w, h int) error {
	if len(expected) != len(actual) {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), len(actual))
	}
	total := w * h
	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}
	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a three panel image to debug/name.png: the actual
// coverage, the difference (green where coverage is missing, red where
// there is too much) and the reference.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			a, e := actual[i], expected[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			diff := color.RGBA{A: 255}
			if d := int(e) - int(a); d > 0 {
				diff.G = uint8(d)
			} else {
				diff.R = uint8(-d)
			}
			img.Set(x+w, y, diff)

			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
