package search

import "container/heap"

// Dijkstra returns the path with the smallest total edge distance from start
// to dest. Best distances live in a map keyed by stop id, so any id range works.
func Dijkstra(g Graph, start, dest int64, f *Filter) Path {
	if !endpointsPermitted(start, dest, f) {
		return Path{}
	}

	best := map[int64]float64{start: 0}
	parent := map[int64]step{}

	pq := &frontier{}
	heap.Push(pq, &frontierItem{stop: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*frontierItem) //nolint:forcetypeassert // frontier only holds *frontierItem.

		if item.dist > best[item.stop] {
			continue
		}

		if item.stop == dest {
			return reconstruct(parent, start, dest)
		}

		for _, e := range g.Edges(item.stop) {
			if !f.Permits(e.RouteID, e.Dest) {
				continue
			}

			candidate := item.dist + e.DistanceKM
			if old, ok := best[e.Dest]; ok && candidate >= old {
				continue
			}

			best[e.Dest] = candidate
			parent[e.Dest] = step{prev: item.stop, route: e.RouteID}
			heap.Push(pq, &frontierItem{stop: e.Dest, dist: candidate})
		}
	}

	return Path{}
}

type frontierItem struct {
	stop int64
	dist float64
}

// frontier is a min-heap on cumulative distance; equal distances pop the lower stop id first.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].stop < pq[j].stop
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x any) {
	*pq = append(*pq, x.(*frontierItem)) //nolint:forcetypeassert // heap.Push only passes *frontierItem.
}

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
