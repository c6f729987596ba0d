// Package search finds paths through a transit network under route and stop
// constraints.
//
// Both algorithms only read the graph, so any number of searches may run
// concurrently against the same built network.
package search

import (
	"fmt"

	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
)

// Graph is the read-only view of a network that search needs.
type Graph interface {
	Edges(id int64) []network.Edge
}

// Path is an ordered stop sequence. Routes[i] is the route of the edge taken
// from Stops[i] to Stops[i+1], so len(Routes) == len(Stops)-1 for a found path.
type Path struct {
	Stops  []int64  `json:"stops"`
	Routes []string `json:"routes"`
}

// Empty reports whether no path was found.
func (p Path) Empty() bool { return len(p.Stops) == 0 }

// Hops returns the number of edges in the path.
func (p Path) Hops() int {
	if len(p.Stops) == 0 {
		return 0
	}

	return len(p.Stops) - 1
}

// Algorithm names a search strategy.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmBFS      Algorithm = "bfs"
	AlgorithmDijkstra Algorithm = "dijkstra"
)

// Algorithms returns the supported algorithms in the order queries run them.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDijkstra}
}

// Run dispatches to the named algorithm.
func Run(alg Algorithm, g Graph, start, dest int64, f *Filter) (Path, error) {
	switch alg {
	case AlgorithmBFS:
		return BFS(g, start, dest, f), nil
	case AlgorithmDijkstra:
		return Dijkstra(g, start, dest, f), nil
	default:
		return Path{}, fmt.Errorf("%w: %q", models.ErrUnknownAlgorithm, alg)
	}
}

// endpointsPermitted applies the stop rules to both ends of a query.
func endpointsPermitted(start, dest int64, f *Filter) bool {
	return f.StopPermitted(start) && f.StopPermitted(dest)
}

// step records how a stop was reached.
type step struct {
	prev  int64
	route string
}

// reconstruct walks predecessor links back from dest to start.
func reconstruct(parent map[int64]step, start, dest int64) Path {
	stops := []int64{dest}
	var routes []string

	for current := dest; current != start; {
		p, ok := parent[current]
		if !ok {
			return Path{}
		}

		stops = append(stops, p.prev)
		routes = append(routes, p.route)
		current = p.prev
	}

	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}

	for i, j := 0, len(routes)-1; i < j; i, j = i+1, j-1 {
		routes[i], routes[j] = routes[j], routes[i]
	}

	if routes == nil {
		routes = []string{}
	}

	return Path{Stops: stops, Routes: routes}
}
