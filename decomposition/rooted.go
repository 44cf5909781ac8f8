package decomposition

import "sort"

// None marks the absence of a parent: the root's ParentID.
const None = -1

// DecompositionNode is one node of a RootedTreeDecomposition.
type DecompositionNode struct {
	ID       int
	ParentID int
	Bag      []int
	Children []int
}

// RootedTreeDecomposition is a TreeDecomposition given an explicit root and
// parent/child structure, plus the normalization passes a nice tree
// decomposition needs applied first.
type RootedTreeDecomposition struct {
	Root  int
	Width int
	Nodes []DecompositionNode
}

// NewRootedTreeDecomposition roots td at node 0 via DFS.
func NewRootedTreeDecomposition(td *TreeDecomposition) *RootedTreeDecomposition {
	rtd := &RootedTreeDecomposition{Root: 0, Width: td.Width}
	if td.Size() == 0 {
		rtd.Nodes = []DecompositionNode{{ID: 0, ParentID: None}}
		return rtd
	}

	rtd.Nodes = make([]DecompositionNode, td.Size())
	rtd.makeNodes(0, td, None)

	return rtd
}

func (rtd *RootedTreeDecomposition) makeNodes(u int, td *TreeDecomposition, parent int) {
	rtd.Nodes[u] = DecompositionNode{ID: u, ParentID: parent, Bag: td.Bag[u]}
	for _, v := range td.Adj[u] {
		if v == parent {
			continue
		}
		rtd.Nodes[u].Children = append(rtd.Nodes[u].Children, v)
		rtd.makeNodes(v, td, u)
	}
}

// newNode appends a fresh node and returns its id.
func (rtd *RootedTreeDecomposition) newNode(parentID int, bag []int, children []int) int {
	id := len(rtd.Nodes)
	rtd.Nodes = append(rtd.Nodes, DecompositionNode{
		ID:       id,
		ParentID: parentID,
		Bag:      bag,
		Children: children,
	})
	return id
}

// SortBags sorts every bag ascending, a precondition Nicify relies on for
// its intersect/insert/remove set arithmetic.
func (rtd *RootedTreeDecomposition) SortBags() {
	for i := range rtd.Nodes {
		sort.Ints(rtd.Nodes[i].Bag)
	}
}

// EqualizeJoinChildren inserts an intermediate bag (a copy of the parent's
// own bag) between every node and each of its children, so that a node with
// two or more children always presents the same bag its children do — the
// shape a Join node requires.
func (rtd *RootedTreeDecomposition) EqualizeJoinChildren() {
	rtd.equalizeJoinChildren(rtd.Root)
}

func (rtd *RootedTreeDecomposition) equalizeJoinChildren(nodeID int) {
	children := rtd.Nodes[nodeID].Children
	for i, child := range children {
		rtd.equalizeJoinChildren(child)

		bag := append([]int(nil), rtd.Nodes[nodeID].Bag...)
		intermediate := rtd.newNode(nodeID, bag, []int{child})
		rtd.Nodes[child].ParentID = intermediate
		children[i] = intermediate
	}
}

// BinarizeJoins reduces every node with more than two children to exactly
// two, folding extra children pairwise under freshly inserted bags that
// copy the node's own bag.
func (rtd *RootedTreeDecomposition) BinarizeJoins() {
	rtd.binarizeJoins(rtd.Root)
}

func (rtd *RootedTreeDecomposition) binarizeJoins(nodeID int) {
	for _, child := range rtd.Nodes[nodeID].Children {
		rtd.binarizeJoins(child)
	}

	for len(rtd.Nodes[nodeID].Children) > 2 {
		children := rtd.Nodes[nodeID].Children
		l := children[len(children)-1]
		r := children[len(children)-2]
		rtd.Nodes[nodeID].Children = children[:len(children)-2]

		bag := append([]int(nil), rtd.Nodes[nodeID].Bag...)
		intermediate := rtd.newNode(nodeID, bag, []int{l, r})
		rtd.Nodes[l].ParentID = intermediate
		rtd.Nodes[r].ParentID = intermediate
		rtd.Nodes[nodeID].Children = append(rtd.Nodes[nodeID].Children, intermediate)
	}
}

// ForceEmptyRootAndLeaves inserts an empty bag under every leaf and above
// the root, so every Leaf node and the decomposition's own root carry an
// empty bag — boundary conditions Nicify's recursion relies on.
func (rtd *RootedTreeDecomposition) ForceEmptyRootAndLeaves() {
	rtd.insertEmptyBagsUnderLeaves(rtd.Root)

	newRoot := rtd.newNode(None, nil, []int{rtd.Root})
	rtd.Nodes[rtd.Root].ParentID = newRoot
	rtd.Root = newRoot
}

func (rtd *RootedTreeDecomposition) insertEmptyBagsUnderLeaves(nodeID int) {
	for _, child := range rtd.Nodes[nodeID].Children {
		rtd.insertEmptyBagsUnderLeaves(child)
	}

	if len(rtd.Nodes[nodeID].Children) == 0 {
		leaf := rtd.newNode(nodeID, nil, nil)
		rtd.Nodes[nodeID].Children = append(rtd.Nodes[nodeID].Children, leaf)
	}
}

// Size returns the number of nodes, including ones inserted by the
// normalization passes above.
func (rtd *RootedTreeDecomposition) Size() int { return len(rtd.Nodes) }
