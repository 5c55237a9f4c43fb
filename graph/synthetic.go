package graph

// Grid builds a rows*cols grid graph: node (r, c) has id r*cols+c and is
// connected to its right and down neighbors (so every interior node ends
// up with degree 4 once both directions are added by Builder). Grounded
// on gridgraph's row/column indexing convention, adapted from a
// cell-value-driven terrain structure to a plain unweighted test fixture
// for tree-depth search and separator algorithms, which exercise grid
// graphs heavily as a worst case for both balanced-separator search and
// nested dissection.
func Grid(rows, cols int) *Graph {
	id := func(r, c int) int32 { return int32(r*cols + c) }
	b := NewBuilder(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				_ = b.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				_ = b.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}
	return b.Build()
}

// Path builds a path graph on n nodes: i connected to i+1 for 0 <= i < n-1.
func Path(n int) *Graph {
	b := NewBuilder(n)
	for i := 0; i < n-1; i++ {
		_ = b.AddEdge(int32(i), int32(i+1))
	}
	return b.Build()
}

// Cycle builds a cycle graph on n nodes (n >= 3): a Path plus the closing
// edge between the last and first node.
func Cycle(n int) *Graph {
	b := NewBuilder(n)
	for i := 0; i < n; i++ {
		_ = b.AddEdge(int32(i), int32((i+1)%n))
	}
	return b.Build()
}
