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
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seehuhn.de/go/writegraph/graph"
)

const pair = ">>writegraph2d<<\n1 0 0 2\n2 1 0 1\n0\n"

// execute runs the command with the given arguments and returns the
// diagnostic output.
func execute(ctx context.Context, stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	stderr := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return stderr.String(), err
}

func imageSize(t *testing.T, name string) (int, int) {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return cfg.Width, cfg.Height
}

func TestConvertStdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	_, err := execute(context.Background(), pair, "--width", "120", "--height", "80", out)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, out); w != 120 || h != 80 {
		t.Errorf("image size %dx%d, want 120x80", w, h)
	}
}

func TestConvertInputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pair.w2d")
	if err := os.WriteFile(in, []byte(pair), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "pair.png")
	if _, err := execute(context.Background(), "", "-i", in, "-v", out); err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, out); w != 200 || h != 200 {
		t.Errorf("image size %dx%d, want the default 200x200", w, h)
	}
}

func TestConfigOverlay(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "opts.toml")
	err := os.WriteFile(conf, []byte("width = 300\nheight = 150\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "a.png")
	if _, err := execute(context.Background(), pair, "--config", conf, out); err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, out); w != 300 || h != 150 {
		t.Errorf("image size %dx%d, want 300x150", w, h)
	}

	// flags take precedence over the file
	out = filepath.Join(dir, "b.png")
	if _, err := execute(context.Background(), pair, "--config", conf, "--width", "100", out); err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, out); w != 100 || h != 150 {
		t.Errorf("image size %dx%d, want 100x150", w, h)
	}
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")

	_, err := execute(context.Background(), ">>writegraph2d\n1 0\n0\n", out)
	var formatErr *graph.FormatError
	if !errors.As(err, &formatErr) || formatErr.Line != 2 {
		t.Errorf("bad input: got %v", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output written for bad input")
	}

	if _, err := execute(context.Background(), pair, "--vertex-color", "1,2", out); err == nil {
		t.Error("bad colour accepted")
	}
	if _, err := execute(context.Background(), pair, "--width", "0", out); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := execute(context.Background(), pair, "--watch", out); !errors.Is(err, errWatchStdin) {
		t.Errorf("--watch without --input: got %v", err)
	}
	if _, err := execute(context.Background(), pair, "a.png", "b.png"); err == nil {
		t.Error("two output files accepted")
	}

	missing := filepath.Join(dir, "no-such-dir", "out.png")
	stderr, err := execute(context.Background(), pair, missing)
	if err == nil {
		t.Error("write to a missing directory succeeded")
	}
	if !strings.Contains(stderr, "cannot write image") {
		t.Errorf("write failure not logged: %q", stderr)
	}
}

// waitFor polls cond until it returns true or five seconds have passed.
func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

func TestWatchBrokenInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "g.w2d")
	out := filepath.Join(dir, "g.png")
	if err := os.WriteFile(in, []byte(">>writegraph2d\n1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		_, err := execute(ctx, "", "--input", in, "--watch", out)
		done <- err
	}()

	ok := waitFor(func() bool {
		select {
		case err := <-done:
			t.Fatalf("watch stopped on a broken file: %v", err)
		default:
		}
		// the watcher may not be set up yet, so write repeatedly
		_ = os.WriteFile(in, []byte(pair), 0o644)
		data, _ := os.ReadFile(out)
		return len(data) > 0
	})
	if !ok {
		t.Error("no image after the input was repaired")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "g.w2d")
	out := filepath.Join(dir, "g.png")
	if err := os.WriteFile(in, []byte(pair), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		_, err := execute(ctx, "", "--input", in, "--watch", out)
		done <- err
	}()

	var first []byte
	ok := waitFor(func() bool {
		first, _ = os.ReadFile(out)
		return len(first) > 0
	})
	if !ok {
		t.Fatal("no initial image")
	}

	// turn the edge from horizontal to vertical
	vertical := []byte(">>writegraph2d<<\n1 0 0 2\n2 0 1 1\n0\n")
	ok = waitFor(func() bool {
		// the watcher may not be set up yet, so write repeatedly
		_ = os.WriteFile(in, vertical, 0o644)
		data, _ := os.ReadFile(out)
		return len(data) > 0 && !bytes.Equal(data, first)
	})
	if !ok {
		t.Error("image not updated after the input changed")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
