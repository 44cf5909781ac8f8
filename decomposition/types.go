package decomposition

// TreeDecomposition is the basic, un-rooted output of a Decomposer: a tree
// of bags, each bag a subset of the original graph's active vertex ids.
// Decomposition nodes are numbered 0..Size()-1; these numbers are internal
// to the decomposition and unrelated to the original graph's vertex ids,
// which only ever appear inside Bag entries.
type TreeDecomposition struct {
	Width int
	Bag   [][]int
	Adj   [][]int
}

// NewTreeDecomposition allocates an empty decomposition of n nodes.
func NewTreeDecomposition(n int) *TreeDecomposition {
	return &TreeDecomposition{
		Bag: make([][]int, n),
		Adj: make([][]int, n),
	}
}

// Size returns the number of decomposition nodes.
func (td *TreeDecomposition) Size() int { return len(td.Bag) }

// AddEdge connects decomposition nodes a and b.
func (td *TreeDecomposition) AddEdge(a, b int) {
	td.Adj[a] = append(td.Adj[a], b)
	td.Adj[b] = append(td.Adj[b], a)
}
