package search

// BFS returns a path with the fewest hops from start to dest. A stop is
// discovered only the first time it is reached, so hop-count ties go to the
// earlier edge in adjacency order.
func BFS(g Graph, start, dest int64, f *Filter) Path {
	if !endpointsPermitted(start, dest, f) {
		return Path{}
	}

	visited := map[int64]bool{start: true}
	parent := map[int64]step{}
	queue := []int64{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == dest {
			return reconstruct(parent, start, dest)
		}

		for _, e := range g.Edges(current) {
			if visited[e.Dest] || !f.Permits(e.RouteID, e.Dest) {
				continue
			}

			visited[e.Dest] = true
			parent[e.Dest] = step{prev: current, route: e.RouteID}
			queue = append(queue, e.Dest)
		}
	}

	return Path{}
}
