package shrink

import "github.com/katalvlaran/treedepth/graph"

// Shrink removes as many nodes from separator as possible while keeping
// every resulting component of V \ separator' at size <= floor(2n/3). It
// processes candidates in the order given, unioning a candidate's
// non-separator neighbors together as soon as the candidate is removed, so
// later candidates see the enlarged components.
func Shrink(g *graph.Graph, separator []int32) []int32 {
	n := g.NodeCount()

	inSeparator := make([]bool, n)
	for _, x := range separator {
		inSeparator[x] = true
	}

	uf := newUnionFind(n)
	for a := 0; a < len(g.Tail); a++ {
		x, y := g.Tail[a], g.Head[a]
		if !inSeparator[x] && !inSeparator[y] {
			uf.union(x, y)
		}
	}

	seenRep := make([]bool, n)
	var touched []int32

	kept := make([]int32, 0, len(separator))
	for _, x := range separator {
		size := int32(1)
		touched = touched[:0]
		for _, y := range g.Neighbors(x) {
			if inSeparator[y] {
				continue
			}
			r := uf.find(y)
			if seenRep[r] {
				continue
			}
			seenRep[r] = true
			touched = append(touched, r)
			size += uf.sizeOfRep(r)
		}
		for _, r := range touched {
			seenRep[r] = false
		}

		if 3*int(size) <= 2*n {
			inSeparator[x] = false
			for _, y := range g.Neighbors(x) {
				if !inSeparator[y] {
					uf.union(x, y)
				}
			}
			continue
		}
		kept = append(kept, x)
	}
	return kept
}
