package partition

import "github.com/katalvlaran/treedepth/graph"

// CutToSeparator turns a 2-coloring's edge cut into a vertex separator: for
// every cut arc whose endpoints are both still uncovered, it adds the
// endpoint on the currently larger side to the separator (ties favor the
// side-0 endpoint), shrinking that side by one. Once every cut arc is
// covered, it rejects the result (ok=false) unless the smaller remaining
// side is at least a third of the non-separator nodes.
func CutToSeparator(g *graph.Graph, side Side) (separator []int32, ok bool) {
	n := g.NodeCount()

	var sideSize [2]int
	for v := 0; v < n; v++ {
		sideSize[side[v]]++
	}

	inSeparator := make([]bool, n)
	for a := 0; a < len(g.Tail); a++ {
		x, y := g.Tail[a], g.Head[a]
		if side[x] != 0 || side[y] != 1 {
			continue
		}
		if inSeparator[x] || inSeparator[y] {
			continue
		}
		if sideSize[0] >= sideSize[1] {
			inSeparator[x] = true
			sideSize[0]--
			separator = append(separator, x)
		} else {
			inSeparator[y] = true
			sideSize[1]--
			separator = append(separator, y)
		}
	}

	if len(separator) == 0 {
		return nil, false
	}
	if 3*min(sideSize[0], sideSize[1]) < n-len(separator) {
		return nil, false
	}
	return separator, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
