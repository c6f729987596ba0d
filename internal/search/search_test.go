package search_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/network/networktest"
	"github.com/persistorai/transitroute/internal/search"
)

const (
	A = networktest.A
	B = networktest.B
	C = networktest.C
	D = networktest.D
)

// mockGraph is a hand-built adjacency list.
type mockGraph map[int64][]network.Edge

func (g mockGraph) Edges(id int64) []network.Edge { return g[id] }

// link adds an undirected edge.
func (g mockGraph) link(a, b int64, dist float64, route string) {
	g[a] = append(g[a], network.Edge{Dest: b, DistanceKM: dist, RouteID: route})
	g[b] = append(g[b], network.Edge{Dest: a, DistanceKM: dist, RouteID: route})
}

// detourGraph has a 2-hop long path 1-2-5 and a 3-hop short path 1-3-4-5.
func detourGraph() mockGraph {
	g := mockGraph{}
	g.link(1, 2, 10, "long")
	g.link(2, 5, 10, "long")
	g.link(1, 3, 1, "short")
	g.link(3, 4, 1, "short")
	g.link(4, 5, 1, "short")

	return g
}

func TestToyScenario(t *testing.T) {
	n := networktest.Toy(t)

	tests := []struct {
		name       string
		from, to   int64
		c          models.Constraints
		wantStops  []int64
		wantRoutes []string
	}{
		{name: "A to C", from: A, to: C, wantStops: []int64{A, B, C}, wantRoutes: []string{"1", "1"}},
		{name: "A to D", from: A, to: D, wantStops: []int64{A, B, D}, wantRoutes: []string{"1", "2"}},
		{name: "A to C forbidding route 1", from: A, to: C, c: models.Constraints{ForbiddenRoutes: []string{"1"}}},
		{name: "A to C allowing only route 2", from: A, to: C, c: models.Constraints{AllowedRoutes: []string{"2"}}},
		{name: "A to D forbidding B", from: A, to: D, c: models.Constraints{ForbiddenStops: []int64{B}}},
		{name: "start forbidden", from: A, to: C, c: models.Constraints{ForbiddenStops: []int64{A}}},
		{name: "dest outside allow-list", from: A, to: C, c: models.Constraints{AllowedStops: []int64{A, B}}},
		{name: "same stop", from: B, to: B, wantStops: []int64{B}, wantRoutes: []string{}},
	}

	for _, tc := range tests {
		for _, alg := range search.Algorithms() {
			t.Run(tc.name+"/"+string(alg), func(t *testing.T) {
				p, err := search.Run(alg, n, tc.from, tc.to, search.NewFilter(tc.c))
				if err != nil {
					t.Fatalf("Run: %v", err)
				}

				if tc.wantStops == nil {
					if !p.Empty() {
						t.Fatalf("expected empty path, got %v", p.Stops)
					}

					return
				}

				if !reflect.DeepEqual(p.Stops, tc.wantStops) {
					t.Errorf("stops = %v, want %v", p.Stops, tc.wantStops)
				}
				if !reflect.DeepEqual(p.Routes, tc.wantRoutes) {
					t.Errorf("routes = %v, want %v", p.Routes, tc.wantRoutes)
				}
			})
		}
	}
}

func TestSameStopExcluded(t *testing.T) {
	n := networktest.Toy(t)
	f := search.NewFilter(models.Constraints{ForbiddenStops: []int64{B}})

	if p := search.BFS(n, B, B, f); !p.Empty() {
		t.Errorf("BFS = %v, want empty", p.Stops)
	}
	if p := search.Dijkstra(n, B, B, f); !p.Empty() {
		t.Errorf("Dijkstra = %v, want empty", p.Stops)
	}
}

func TestBFSMinimisesHopsDijkstraDistance(t *testing.T) {
	g := detourGraph()

	bfs := search.BFS(g, 1, 5, nil)
	if want := []int64{1, 2, 5}; !reflect.DeepEqual(bfs.Stops, want) {
		t.Errorf("BFS = %v, want %v", bfs.Stops, want)
	}
	if bfs.Hops() != 2 {
		t.Errorf("BFS hops = %d, want 2", bfs.Hops())
	}

	dj := search.Dijkstra(g, 1, 5, nil)
	if want := []int64{1, 3, 4, 5}; !reflect.DeepEqual(dj.Stops, want) {
		t.Errorf("Dijkstra = %v, want %v", dj.Stops, want)
	}
	if want := []string{"short", "short", "short"}; !reflect.DeepEqual(dj.Routes, want) {
		t.Errorf("Dijkstra routes = %v, want %v", dj.Routes, want)
	}
}

func TestParallelEdgesUseTraversedRoute(t *testing.T) {
	g := mockGraph{}
	g.link(1, 2, 5, "slow")
	g.link(1, 2, 3, "fast")

	dj := search.Dijkstra(g, 1, 2, nil)
	if want := []string{"fast"}; !reflect.DeepEqual(dj.Routes, want) {
		t.Errorf("Dijkstra routes = %v, want %v", dj.Routes, want)
	}

	bfs := search.BFS(g, 1, 2, search.NewFilter(models.Constraints{ForbiddenRoutes: []string{"slow"}}))
	if want := []string{"fast"}; !reflect.DeepEqual(bfs.Routes, want) {
		t.Errorf("BFS routes = %v, want %v", bfs.Routes, want)
	}
}

func TestDijkstraLargeIDs(t *testing.T) {
	g := mockGraph{}
	g.link(1, 9_000_000_001, 2, "x")
	g.link(9_000_000_001, 42_000, 2, "x")

	p := search.Dijkstra(g, 1, 42_000, nil)
	if want := []int64{1, 9_000_000_001, 42_000}; !reflect.DeepEqual(p.Stops, want) {
		t.Errorf("Dijkstra = %v, want %v", p.Stops, want)
	}
}

func TestUnreachable(t *testing.T) {
	g := mockGraph{}
	g.link(1, 2, 1, "x")
	g.link(3, 4, 1, "y")

	for _, alg := range search.Algorithms() {
		p, err := search.Run(alg, g, 1, 4, nil)
		if err != nil {
			t.Fatalf("Run(%s): %v", alg, err)
		}
		if !p.Empty() || p.Hops() != 0 {
			t.Errorf("%s: expected empty path, got %v", alg, p.Stops)
		}
	}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	_, err := search.Run("astar", mockGraph{}, 1, 2, nil)
	if !errors.Is(err, models.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestIdempotent(t *testing.T) {
	g := detourGraph()
	f := search.NewFilter(models.Constraints{ForbiddenStops: []int64{4}})

	for _, alg := range search.Algorithms() {
		first, _ := search.Run(alg, g, 1, 5, f)
		for i := 0; i < 5; i++ {
			again, _ := search.Run(alg, g, 1, 5, f)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("%s: run %d = %+v, first = %+v", alg, i, again, first)
			}
		}
	}
}

// TestOptimality compares both algorithms against every simple path of a
// small mesh.
func TestOptimality(t *testing.T) {
	g := mockGraph{}
	g.link(1, 2, 4, "a")
	g.link(1, 3, 1, "b")
	g.link(3, 2, 1, "b")
	g.link(2, 4, 5, "a")
	g.link(3, 5, 8, "c")
	g.link(5, 4, 1, "c")
	g.link(2, 5, 2, "d")
	g.link(4, 6, 3, "a")
	g.link(5, 6, 7, "c")

	for _, dest := range []int64{2, 4, 5, 6} {
		minHops, minDist := exhaustive(g, 1, dest)

		bfs := search.BFS(g, 1, dest, nil)
		if bfs.Hops() != minHops {
			t.Errorf("1→%d BFS hops = %d, want %d", dest, bfs.Hops(), minHops)
		}

		dj := search.Dijkstra(g, 1, dest, nil)
		if got := pathWeight(g, dj); math.Abs(got-minDist) > 1e-9 {
			t.Errorf("1→%d Dijkstra distance = %v, want %v", dest, got, minDist)
		}
	}
}

func exhaustive(g mockGraph, start, dest int64) (int, float64) {
	minHops, minDist := math.MaxInt, math.Inf(1)
	onPath := map[int64]bool{start: true}

	var walk func(cur int64, hops int, dist float64)
	walk = func(cur int64, hops int, dist float64) {
		if cur == dest {
			minHops = min(minHops, hops)
			minDist = math.Min(minDist, dist)

			return
		}

		for _, e := range g[cur] {
			if onPath[e.Dest] {
				continue
			}

			onPath[e.Dest] = true
			walk(e.Dest, hops+1, dist+e.DistanceKM)
			onPath[e.Dest] = false
		}
	}
	walk(start, 0, 0)

	return minHops, minDist
}

func pathWeight(g mockGraph, p search.Path) float64 {
	total := 0.0

	for i := 0; i+1 < len(p.Stops); i++ {
		for _, e := range g[p.Stops[i]] {
			if e.Dest == p.Stops[i+1] && e.RouteID == p.Routes[i] {
				total += e.DistanceKM

				break
			}
		}
	}

	return total
}
