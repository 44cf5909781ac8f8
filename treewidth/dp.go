package treewidth

import (
	"context"
	"fmt"

	"github.com/dshunter/dshunter/decomposition"
	"github.com/dshunter/dshunter/instance"
)

const (
	// MaxHandledTreewidth is the largest bag size (not bag size minus one)
	// this package will attempt, so decompositions of width up to 17 are
	// handled and width 18 is not; ternary function indices would otherwise
	// risk overflowing
	// the uint64 TernaryFun encoding and, long before that, any realistic
	// memory budget.
	MaxHandledTreewidth = MaxExponent

	// GoodEnoughTreewidth is a softer threshold a caller may use to decide
	// whether to keep searching for a better decomposition before committing
	// to the DP (this package itself does not act on it).
	GoodEnoughTreewidth = 15

	// MaxMemoryInBytes is the default DP table memory budget.
	MaxMemoryInBytes = uint64(1) << 30

	unset = -1
	inf   = 1_000_000_000
)

// Solve runs the treewidth DP on g's active graph: it decomposes g via
// decomposer, nicifies the result, and — if the width and estimated memory
// usage both fit within budget — fills in the dominating set directly into
// g.DS. It never mutates g otherwise (no Take/MarkDominated calls): the
// vertices appended to DS are exactly the ones node.v names in a winning
// Forget step.
func Solve(ctx context.Context, g *instance.Instance, decomposer decomposition.Decomposer, maxMemoryBytes uint64) error {
	td, ok := decomposer.Decompose(ctx, g)
	if !ok {
		return fmt.Errorf("%w: decomposition failed or was cancelled", ErrUnsolvableByBackend)
	}

	ntd := decomposition.Nicify(g, td)
	if ntd.Width() > MaxHandledTreewidth {
		return fmt.Errorf("%w: largest bag size %d exceeds %d", ErrUnsolvableByBackend, ntd.Width(), MaxHandledTreewidth)
	}
	if usage := memoryUsage(ntd); usage > maxMemoryBytes {
		return fmt.Errorf("%w: estimated DP table size %d bytes exceeds budget %d", ErrUnsolvableByBackend, usage, maxMemoryBytes)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrUnsolvableByBackend, ctx.Err())
	default:
	}

	s := &solver{g: g, td: ntd, c: make([][]int, ntd.NNodes())}
	s.getC(ntd.Root, 0)
	s.recoverDS(ntd.Root, 0)

	return nil
}

type solver struct {
	g  *instance.Instance
	td *decomposition.NiceTreeDecomposition
	c  [][]int
}

func cost(g *instance.Instance, v int) int {
	if g.IsExtra(v) {
		return inf
	}
	return 1
}

func bagPos(bag []int, v int) int {
	for i, u := range bag {
		if u == v {
			return i
		}
	}
	panic(fmt.Sprintf("treewidth: %d not found in bag %v", v, bag))
}

func (s *solver) getC(t int, f TernaryFun) int {
	node := s.td.At(t)
	if s.c[t] != nil && s.c[t][f] != unset {
		return s.c[t][f]
	}
	if s.c[t] == nil {
		s.c[t] = make([]int, int(pow3[len(node.Bag)]))
		for i := range s.c[t] {
			s.c[t][i] = unset
		}
	}
	s.c[t][f] = inf

	switch node.Kind {
	case decomposition.Leaf:
		s.c[t][f] = 0

	case decomposition.IntroduceVertex:
		pos := bagPos(node.Bag, node.V)
		if at(f, pos) == White && !s.g.IsDominated(node.V) {
			s.c[t][f] = inf
		} else {
			s.c[t][f] = s.getC(node.LChild, cut(f, pos))
		}

	case decomposition.IntroduceEdge:
		s.c[t][f] = s.getCIntroduceEdge(node, f)

	case decomposition.Forget:
		posW := bagPos(s.td.At(node.LChild).Bag, node.V)
		withV := cost(s.g, node.V) + s.getC(node.LChild, insert(f, posW, Black))
		withoutV := s.getC(node.LChild, insert(f, posW, White))
		if withV < withoutV {
			s.c[t][f] = withV
		} else {
			s.c[t][f] = withoutV
		}

	case decomposition.Join:
		best := inf
		for f1, f2 := range splitJoin(f, len(node.Bag)) {
			if sum := s.getC(node.LChild, f1) + s.getC(node.RChild, f2); sum < best {
				best = sum
			}
		}
		s.c[t][f] = best
	}

	return s.c[t][f]
}

func (s *solver) getCIntroduceEdge(node *decomposition.Node, f TernaryFun) int {
	posU := bagPos(node.Bag, node.To)
	posV := bagPos(node.Bag, node.V)
	fU, fV := at(f, posU), at(f, posV)

	status, err := s.g.EdgeStatus(node.To, node.V)
	if err != nil {
		panic(fmt.Sprintf("treewidth: %v", err))
	}

	switch {
	case fU == Black && fV == White:
		return s.getC(node.LChild, set(f, posV, Gray))
	case fU == White && fV == Black:
		return s.getC(node.LChild, set(f, posU, Gray))
	case status == instance.Forced:
		if fU == Black || fV == Black {
			return s.getC(node.LChild, f)
		}
		return inf
	default:
		return s.getC(node.LChild, f)
	}
}

func (s *solver) recoverDS(t int, f TernaryFun) {
	node := s.td.At(t)

	switch node.Kind {
	case decomposition.IntroduceVertex:
		pos := bagPos(node.Bag, node.V)
		s.recoverDS(node.LChild, cut(f, pos))

	case decomposition.IntroduceEdge:
		s.recoverDSIntroduceEdge(node, f)

	case decomposition.Forget:
		posW := bagPos(s.td.At(node.LChild).Bag, node.V)
		if s.c[t][f] == cost(s.g, node.V)+s.getC(node.LChild, insert(f, posW, Black)) {
			s.g.DS = append(s.g.DS, node.V)
			s.recoverDS(node.LChild, insert(f, posW, Black))
		} else {
			s.recoverDS(node.LChild, insert(f, posW, White))
		}

	case decomposition.Join:
		for f1, f2 := range splitJoin(f, len(node.Bag)) {
			if s.c[t][f] == s.getC(node.LChild, f1)+s.getC(node.RChild, f2) {
				s.recoverDS(node.LChild, f1)
				s.recoverDS(node.RChild, f2)
				return
			}
		}
		panic("treewidth: no consistent join split found during recovery")
	}
}

func (s *solver) recoverDSIntroduceEdge(node *decomposition.Node, f TernaryFun) {
	posU := bagPos(node.Bag, node.To)
	posV := bagPos(node.Bag, node.V)
	fU, fV := at(f, posU), at(f, posV)

	status, err := s.g.EdgeStatus(node.To, node.V)
	if err != nil {
		panic(fmt.Sprintf("treewidth: %v", err))
	}

	switch {
	case fU == Black && fV == White:
		s.recoverDS(node.LChild, set(f, posV, Gray))
	case fU == White && fV == Black:
		s.recoverDS(node.LChild, set(f, posU, Gray))
	case status == instance.Forced && !(fU == Black || fV == Black):
		panic("treewidth: entered IntroduceEdge state corresponding to no solution")
	default:
		s.recoverDS(node.LChild, f)
	}
}

// splitJoin yields (f1, f2) pairs covering every way of distributing the
// WHITE positions of f between the two join children (every other position
// is copied unchanged, since the children's bags agree everywhere else).
func splitJoin(f TernaryFun, bagSize int) func(yield func(TernaryFun, TernaryFun) bool) {
	var whites []int
	for i := 0; i < bagSize; i++ {
		if at(f, i) == White {
			whites = append(whites, i)
		}
	}

	return func(yield func(TernaryFun, TernaryFun) bool) {
		for mask := 0; mask < (1 << len(whites)); mask++ {
			f1, f2 := f, f
			for bit, pos := range whites {
				if mask>>bit&1 == 1 {
					f1 = set(f1, pos, Gray)
					f2 = set(f2, pos, White)
				} else {
					f1 = set(f1, pos, White)
					f2 = set(f2, pos, Gray)
				}
			}
			if !yield(f1, f2) {
				return
			}
		}
	}
}

// memoryUsage mirrors getMemoryUsage: the DP allocates one []int of size
// 3^|bag| per node, plus slice header overhead.
func memoryUsage(ntd *decomposition.NiceTreeDecomposition) uint64 {
	const intSize = 8
	const sliceHeaderSize = 24

	var total uint64
	for i := 0; i < ntd.NNodes(); i++ {
		bagSize := len(ntd.At(i).Bag)
		total += pow3[bagSize]*intSize + sliceHeaderSize
	}
	return total
}
