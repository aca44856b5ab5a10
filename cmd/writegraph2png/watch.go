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
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/writegraph"
)

// settle is how long the input file must stay unchanged before the image
// is rendered again.
const settle = 100 * time.Millisecond

// watch converts input to output, and then again every time input
// changes.  Conversion errors are logged and the file is watched further,
// since a broken file may be fixed soon.  watch returns when ctx is
// cancelled.
func watch(ctx context.Context, input, output string, opts writegraph.Options) error {
	logger := loggerFromContext(ctx)

	if err := convert(ctx, nil, input, output, opts); err != nil {
		logger.Error("cannot convert", "file", input, "err", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing to it, so we
	// watch the directory.
	input = filepath.Clean(input)
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return err
	}
	logger.Info("watching for changes", "file", input)

	debounce := time.NewTimer(0)
	<-debounce.C
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			debounce.Reset(settle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)

		case <-debounce.C:
			if err := convert(ctx, nil, input, output, opts); err != nil {
				logger.Error("cannot convert", "file", input, "err", err)
			}
		}
	}
}
