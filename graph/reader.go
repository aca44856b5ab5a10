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

package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Header is the magic token which starts every writegraph2d file.
const Header = ">>writegraph2d"

// Errors reported by Read.  They are always wrapped in a *FormatError.
var (
	ErrBadHeader        = errors.New("incorrect header")
	ErrVertexNumber     = errors.New("unexpected vertex number")
	ErrCoordinates      = errors.New("missing or invalid coordinates")
	ErrSyntax           = errors.New("invalid neighbour list")
	ErrUnknownNeighbour = errors.New("unknown neighbour")
	ErrUnexpectedEOF    = errors.New("missing end-of-graph marker")
)

// FormatError describes a problem with the writegraph2d input.
type FormatError struct {
	Line int    // 1-based input line, 0 if unknown
	Msg  string // optional detail
	Err  error  // one of the sentinel errors above, or an I/O error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Err.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// record is a vertex line whose neighbour numbers are not yet resolved.
type record struct {
	line       int
	neighbours []int
}

// Read parses a single graph in writegraph2d format.
//
// The first line must start with [Header].  It is followed by one line per
// vertex, "<number> <x> <y> [<neighbour>...]", numbered consecutively from
// 1, and a line containing only "0".  Neighbours may refer to vertices
// which are declared later in the input.
func Read(r io.Reader) (*Graph, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), 1<<20)

	lineNo := 0
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, &FormatError{Err: err}
		}
		return nil, &FormatError{Line: 1, Err: ErrBadHeader, Msg: "empty input"}
	}
	lineNo++
	if !strings.HasPrefix(strings.TrimLeft(s.Text(), " \t"), Header) {
		return nil, &FormatError{Line: lineNo, Err: ErrBadHeader}
	}

	g := &Graph{}
	var records []record
	done := false
	for !done && s.Scan() {
		lineNo++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}

		number, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &FormatError{Line: lineNo, Err: ErrVertexNumber, Msg: strconv.Quote(fields[0])}
		}
		if number == 0 {
			done = true
			break
		}
		if expected := len(g.Vertices) + 1; number != expected {
			return nil, &FormatError{
				Line: lineNo,
				Err:  ErrVertexNumber,
				Msg:  fmt.Sprintf("expected %d, got %d", expected, number),
			}
		}

		if len(fields) < 3 {
			return nil, &FormatError{Line: lineNo, Err: ErrCoordinates, Msg: fmt.Sprintf("vertex %d", number)}
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil || !finite(x) || !finite(y) {
			return nil, &FormatError{Line: lineNo, Err: ErrCoordinates, Msg: fmt.Sprintf("vertex %d", number)}
		}
		g.AddVertex(x, y)

		rec := record{line: lineNo}
		for _, f := range fields[3:] {
			nb, err := strconv.Atoi(f)
			if err != nil {
				return nil, &FormatError{Line: lineNo, Err: ErrSyntax, Msg: strconv.Quote(f)}
			}
			rec.neighbours = append(rec.neighbours, nb)
		}
		records = append(records, rec)
	}
	if err := s.Err(); err != nil {
		return nil, &FormatError{Line: lineNo, Err: err}
	}
	if !done {
		return nil, &FormatError{Line: lineNo, Err: ErrUnexpectedEOF}
	}

	n := len(g.Vertices)
	for i, rec := range records {
		for _, nb := range rec.neighbours {
			if nb < 1 || nb > n {
				return nil, &FormatError{
					Line: rec.line,
					Err:  ErrUnknownNeighbour,
					Msg:  fmt.Sprintf("vertex %d refers to %d", i+1, nb),
				}
			}
			// indices are in range, so AddEdge cannot fail
			_ = g.AddEdge(i, nb-1)
		}
	}
	return g, nil
}

// Write writes g in writegraph2d format.  The output can be read back
// using Read.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Header + "<<\n")
	for i := range g.Vertices {
		v := &g.Vertices[i]
		bw.WriteString(strconv.Itoa(v.Number))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v.Y, 'g', -1, 64))
		for _, e := range v.Edges {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(g.Vertices[e.To].Number))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("0\n")
	return bw.Flush()
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
