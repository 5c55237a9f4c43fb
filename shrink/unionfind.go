package shrink

// unionFind is a disjoint-set forest with path compression and union by
// rank, augmented with a per-representative size so callers can ask how
// many original nodes a component currently holds.
type unionFind struct {
	parent []int32
	rank   []int32
	size   []int32
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int32, n),
		rank:   make([]int32, n),
		size:   make([]int32, n),
	}
	for i := range u.parent {
		u.parent[i] = int32(i)
		u.size[i] = 1
	}
	return u
}

// find returns x's representative, compressing the path it walked.
func (u *unionFind) find(x int32) int32 {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union merges the sets containing x and y, attaching the smaller-rank
// root under the larger and accumulating size onto the surviving root.
func (u *unionFind) union(x, y int32) {
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return
	}
	if u.rank[rx] < u.rank[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	if u.rank[rx] == u.rank[ry] {
		u.rank[rx]++
	}
}

// sizeOfRep returns the size of the component represented by rep, which
// must already be a representative (the result of a prior find).
func (u *unionFind) sizeOfRep(rep int32) int32 { return u.size[rep] }
