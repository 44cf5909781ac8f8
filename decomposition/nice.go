package decomposition

import (
	"github.com/dshunter/dshunter/instance"
)

// NodeKind tags a NiceTreeDecomposition node with the DP step it represents.
type NodeKind int

const (
	IntroduceVertex NodeKind = iota
	IntroduceEdge
	Leaf
	Forget
	Join
)

func (k NodeKind) String() string {
	switch k {
	case IntroduceVertex:
		return "IntroduceVertex"
	case IntroduceEdge:
		return "IntroduceEdge"
	case Leaf:
		return "Leaf"
	case Forget:
		return "Forget"
	case Join:
		return "Join"
	default:
		return "Unknown"
	}
}

// Node is one step of a nice tree decomposition. V and To are -1 when not
// applicable to the node's Kind; LChild and RChild are -1 when absent (a
// Leaf has neither, every other kind has at least LChild).
type Node struct {
	ID      int
	Kind    NodeKind
	Bag     []int
	V, To   int
	LChild  int
	RChild  int
}

// NiceTreeDecomposition is a TreeDecomposition rewritten into the canonical
// Leaf/IntroduceVertex/IntroduceEdge/Forget/Join sequence a DP expects, each
// step adding, removing, or joining exactly one unit of structure relative
// to its child (or children).
type NiceTreeDecomposition struct {
	Root  int
	Nodes []Node
}

// At returns the node with the given id.
func (ntd *NiceTreeDecomposition) At(id int) *Node { return &ntd.Nodes[id] }

// NNodes returns the number of nodes in the decomposition.
func (ntd *NiceTreeDecomposition) NNodes() int { return len(ntd.Nodes) }

// Width returns the largest bag size across the whole decomposition.
func (ntd *NiceTreeDecomposition) Width() int {
	max := 0
	for _, n := range ntd.Nodes {
		if len(n.Bag) > max {
			max = len(n.Bag)
		}
	}
	return max
}

type nicifier struct {
	g      *instance.Instance
	ntd    *NiceTreeDecomposition
}

// Nicify normalizes td via the RootedTreeDecomposition passes and rewrites
// the result into a NiceTreeDecomposition over g's active vertices.
func Nicify(g *instance.Instance, td *TreeDecomposition) *NiceTreeDecomposition {
	rtd := NewRootedTreeDecomposition(td)
	rtd.SortBags()
	rtd.EqualizeJoinChildren()
	rtd.BinarizeJoins()
	rtd.ForceEmptyRootAndLeaves()

	n := &nicifier{g: g, ntd: &NiceTreeDecomposition{}}
	n.ntd.Root, _ = n.fromRooted(rtd, rtd.Root)

	return n.ntd
}

func (n *nicifier) createNode(kind NodeKind, bag []int, v, to, lChild, rChild int) int {
	id := len(n.ntd.Nodes)
	n.ntd.Nodes = append(n.ntd.Nodes, Node{
		ID:     id,
		Kind:   kind,
		Bag:    bag,
		V:      v,
		To:     to,
		LChild: lChild,
		RChild: rChild,
	})
	return id
}

// fromRooted returns the id of the nice-decomposition node that replaces
// rtd's node rtdNodeID, plus the bag that node actually carries (which may
// differ from rtd's own bag for a pass-through single-child node whose bag
// already matched its child's).
func (n *nicifier) fromRooted(rtd *RootedTreeDecomposition, rtdNodeID int) (int, []int) {
	node := rtd.Nodes[rtdNodeID]

	switch len(node.Children) {
	case 0:
		return n.createNode(Leaf, nil, -1, -1, -1, -1), nil

	case 2:
		l, _ := n.fromRooted(rtd, node.Children[0])
		r, lBag := n.fromRooted(rtd, node.Children[1])
		return n.createNode(Join, node.Bag, -1, -1, l, r), lBag

	default:
		child, childBag := n.fromRooted(rtd, node.Children[0])
		if sameBag(childBag, node.Bag) {
			return child, childBag
		}
		return n.introduceForgetSequence(node.Bag, childBag, child), node.Bag
	}
}

// introduceForgetSequence builds the Forget-then-IntroduceVertex/IntroduceEdge
// chain that turns tailBag (the bag tailID already carries) into headBag.
func (n *nicifier) introduceForgetSequence(headBag, tailBag []int, tailID int) int {
	tailBag = append([]int(nil), tailBag...)
	intersection := intersectInts(headBag, tailBag)

	toForget := diffInts(tailBag, intersection)
	for len(toForget) > 0 {
		forgotten := toForget[len(toForget)-1]
		toForget = toForget[:len(toForget)-1]
		tailBag = removeInt(tailBag, forgotten)
		tailID = n.createNode(Forget, append([]int(nil), tailBag...), forgotten, -1, tailID, -1)
	}

	toIntroduce := diffInts(headBag, intersection)
	for len(toIntroduce) > 0 {
		introduced := toIntroduce[len(toIntroduce)-1]
		toIntroduce = toIntroduce[:len(toIntroduce)-1]
		neighboursInBag := intersectInts(n.g.NeighboursOpen(introduced), tailBag)

		tailBag = insertInt(tailBag, introduced)
		tailID = n.createNode(IntroduceVertex, append([]int(nil), tailBag...), introduced, -1, tailID, -1)

		for _, to := range neighboursInBag {
			tailID = n.createNode(IntroduceEdge, append([]int(nil), tailBag...), introduced, to, tailID, -1)
		}
	}

	return tailID
}

func sameBag(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intersectInts(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, x := range b {
		set[x] = true
	}
	var out []int
	for _, x := range a {
		if set[x] {
			out = append(out, x)
		}
	}
	return out
}

func diffInts(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, x := range b {
		set[x] = true
	}
	var out []int
	for _, x := range a {
		if !set[x] {
			out = append(out, x)
		}
	}
	return out
}

func removeInt(a []int, x int) []int {
	out := make([]int, 0, len(a))
	for _, v := range a {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

func insertInt(a []int, x int) []int {
	out := append([]int(nil), a...)
	out = append(out, x)
	for i := len(out) - 1; i > 0 && out[i-1] > out[i]; i-- {
		out[i-1], out[i] = out[i], out[i-1]
	}
	return out
}
