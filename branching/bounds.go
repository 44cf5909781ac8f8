package branching

import (
	"container/heap"
	"container/list"

	"github.com/dshunter/dshunter/instance"
)

// GreedyDominatingSet extends g.DS greedily: repeatedly take the active,
// non-taken vertex with the most unresolved FORCED edges (breaking ties by
// most undominated closed-neighbourhood vertices), until every vertex is
// dominated and every FORCED edge has a taken endpoint. Used as the
// branching solver's upper bound.
func GreedyDominatingSet(g *instance.Instance) []int {
	ds := append([]int(nil), g.DS...)

	dominated := make(map[int]bool)
	taken := make(map[int]bool)
	for _, v := range g.Nodes {
		dominated[v] = g.IsDominated(v)
		taken[v] = g.IsTaken(v)
	}

	ufd := make(map[int]int) // unresolved FORCED degree
	ud := make(map[int]int)  // undominated closed-neighbourhood count
	pq := &greedyPQ{}
	heap.Init(pq)

	for _, u := range g.Nodes {
		for _, v := range g.NeighboursClosed(u) {
			if !dominated[v] {
				ud[u]++
			}
		}
		for _, e := range g.Adj(u) {
			if e.Status == instance.Forced {
				ufd[u]++
			}
		}
		if ufd[u] > 0 || ud[u] > 0 {
			heap.Push(pq, &greedyItem{ufd: ufd[u], ud: ud[u], v: u})
		}
	}

	dominate := func(v int) {
		if dominated[v] {
			return
		}
		dominated[v] = true
		for _, u := range g.NeighboursClosed(v) {
			ud[u]--
			heap.Push(pq, &greedyItem{ufd: ufd[u], ud: ud[u], v: u})
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*greedyItem)
		v := item.v
		// Stale entry: v's counts have moved on since this entry was pushed.
		if taken[v] || item.ufd > ufd[v] || item.ud > ud[v] || (item.ufd == 0 && item.ud == 0) {
			continue
		}

		dominate(v)
		for _, e := range g.Adj(v) {
			if e.Status == instance.Forced {
				ufd[e.To]--
				heap.Push(pq, &greedyItem{ufd: ufd[e.To], ud: ud[e.To], v: e.To})
			}
		}

		ds = append(ds, v)
		taken[v] = true
		for _, u := range g.NeighboursClosed(v) {
			dominate(u)
		}
	}

	return ds
}

type greedyItem struct {
	ufd, ud int
	v       int
}

// greedyPQ is a max-heap ordered by (ufd, ud): the vertex resolving the most
// FORCED edges wins, ties broken by most undominated closed neighbours.
type greedyPQ []*greedyItem

func (pq greedyPQ) Len() int { return len(pq) }
func (pq greedyPQ) Less(i, j int) bool {
	if pq[i].ufd != pq[j].ufd {
		return pq[i].ufd > pq[j].ufd
	}
	return pq[i].ud > pq[j].ud
}
func (pq greedyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *greedyPQ) Push(x any)   { *pq = append(*pq, x.(*greedyItem)) }
func (pq *greedyPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// MaximalScatteredSet returns g.DS followed by a maximal set of active
// vertices pairwise at distance > d from each other (a BFS-ball packing),
// used as the branching solver's lower bound: no dominating set can be
// smaller than this set's size, since a single dominator cannot cover two
// vertices more than 2 apart, let alone d+1 apart.
func MaximalScatteredSet(g *instance.Instance, d int) []int {
	res := append([]int(nil), g.DS...)

	dist := make(map[int]int, len(g.Nodes))
	inf := len(g.Nodes) + 1
	for _, v := range g.Nodes {
		dist[v] = inf
	}

	for _, u := range g.Nodes {
		if dist[u] <= d {
			continue
		}
		res = append(res, u)
		dist[u] = 0

		q := list.New()
		q.PushBack(u)
		for q.Len() > 0 {
			v := q.Remove(q.Front()).(int)
			if dist[v] >= d {
				continue
			}
			for _, w := range g.NeighboursOpen(v) {
				if dist[w] > dist[v]+1 {
					dist[w] = dist[v] + 1
					q.PushBack(w)
				}
			}
		}
	}

	return res
}
