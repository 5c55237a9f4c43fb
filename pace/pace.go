// Package pace reads and writes the PACE 2020 tree-depth graph and
// decomposition text formats.
//
// Errors:
//
//	ErrMalformedHeader - the "p tdp n m" problem line is missing or unparsable,
//	                     an edge line is unparsable, or fewer than m edges follow.
//	ErrNodeRange        - an edge endpoint falls outside [1, n].
//	ErrDuplicateEdge     - the same unordered pair appears twice.
package pace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/treedepth/graph"
)

// Sentinel errors for Read.
var (
	// ErrMalformedHeader indicates the "p tdp n m" problem line is missing,
	// out of order, or has the wrong number/shape of fields. Read also
	// returns it for an unparsable edge line and for an edge list shorter
	// than the header's m.
	ErrMalformedHeader = errors.New("pace: malformed problem line")

	// ErrNodeRange indicates an edge endpoint is outside [1, n].
	ErrNodeRange = errors.New("pace: node id out of range")

	// ErrDuplicateEdge indicates the same unordered pair was read twice.
	ErrDuplicateEdge = errors.New("pace: duplicate edge")
)

// Read parses a PACE 2020 tree-depth instance from r: a problem line
// "p tdp n m", any number of "c ..." comment lines (anywhere), and m edge
// lines "u v" in 1-based node ids. The resulting graph is 0-based and
// symmetric (every edge produces both directed arcs).
func Read(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, m, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	b := graph.NewBuilder(n)
	edgesRead := 0
	for edgesRead < m {
		line, ok, err := nextDataLine(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: expected %d edges, found %d", ErrMalformedHeader, m, edgesRead)
		}

		u, v, err := parseEdgeLine(line, n)
		if err != nil {
			return nil, err
		}
		if err := b.AddEdge(u, v); err != nil {
			if errors.Is(err, graph.ErrDuplicateEdge) {
				return nil, fmt.Errorf("%w: %d %d", ErrDuplicateEdge, u+1, v+1)
			}
			return nil, err
		}
		edgesRead++
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func readHeader(sc *bufio.Scanner) (n, m int, err error) {
	line, ok, err := nextDataLine(sc)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, fmt.Errorf("%w: no problem line found", ErrMalformedHeader)
	}

	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "tdp" {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	n, errN := strconv.Atoi(fields[2])
	m, errM := strconv.Atoi(fields[3])
	if errN != nil || errM != nil || n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return n, m, nil
}

// nextDataLine returns the next non-comment, non-blank line, or ok=false
// at EOF.
func nextDataLine(sc *bufio.Scanner) (line string, ok bool, err error) {
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		return text, true, nil
	}
	return "", false, sc.Err()
}

func parseEdgeLine(line string, n int) (u, v int32, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: edge line %q", ErrMalformedHeader, line)
	}
	ui, errU := strconv.Atoi(fields[0])
	vi, errV := strconv.Atoi(fields[1])
	if errU != nil || errV != nil {
		return 0, 0, fmt.Errorf("%w: edge line %q", ErrMalformedHeader, line)
	}
	if ui < 1 || ui > n || vi < 1 || vi > n {
		return 0, 0, fmt.Errorf("%w: %d %d (n=%d)", ErrNodeRange, ui, vi, n)
	}
	return int32(ui - 1), int32(vi - 1), nil
}

// Write emits the decomposition text format: the tree depth on the first
// line, then one line per node 1..n giving its parent's 1-based id, or 0
// for a root (elimtree.Root).
func Write(w io.Writer, parent []int32, depth int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, depth); err != nil {
		return err
	}
	for _, p := range parent {
		if p < 0 {
			if _, err := fmt.Fprintln(bw, 0); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(bw, p+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
