// Package network holds the in-memory transit graph and the builder that
// derives it from stop and segment records.
//
// A Network is mutated only while it is being built. Once Build returns, every
// method is a read and the value can be shared across goroutines without locking.
package network

import (
	"fmt"
	"sort"

	"github.com/persistorai/transitroute/internal/geo"
	"github.com/persistorai/transitroute/internal/models"
)

// Edge is a directed arc from its owning stop to Dest, served by RouteID.
type Edge struct {
	Dest       int64   `json:"dest"`
	DistanceKM float64 `json:"distance_km"`
	RouteID    string  `json:"route_id"`
}

// Stop is a node of the network and owns its outgoing edges.
type Stop struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Edges []Edge  `json:"-"`
}

// Point returns the stop coordinate.
func (s *Stop) Point() geo.Point {
	return geo.Point{Lat: s.Lat, Lon: s.Lon}
}

// Network is a multigraph of stops connected by route-labelled edges.
type Network struct {
	stops      map[int64]*Stop
	routeNames map[string]string
	routes     map[string]struct{}
	edgeCount  int
	segments   int
}

// New returns an empty Network.
func New() *Network {
	return &Network{
		stops:      make(map[int64]*Stop),
		routeNames: make(map[string]string),
		routes:     make(map[string]struct{}),
	}
}

// AddStop registers a stop. Ids must be unique.
func (n *Network) AddStop(id int64, name string, lat, lon float64) error {
	if _, ok := n.stops[id]; ok {
		return fmt.Errorf("stop %d: %w", id, models.ErrDuplicateStop)
	}

	n.stops[id] = &Stop{ID: id, Name: name, Lat: lat, Lon: lon}

	return nil
}

// Connect appends a pair of edges a→b and b→a labelled routeID and returns
// their shared geodesic length.
func (n *Network) Connect(a, b int64, routeID string) (float64, error) {
	sa, ok := n.stops[a]
	if !ok {
		return 0, fmt.Errorf("connecting stop %d: %w", a, models.ErrStopNotFound)
	}

	sb, ok := n.stops[b]
	if !ok {
		return 0, fmt.Errorf("connecting stop %d: %w", b, models.ErrStopNotFound)
	}

	dist := sa.Point().DistanceKM(sb.Point())
	sa.Edges = append(sa.Edges, Edge{Dest: b, DistanceKM: dist, RouteID: routeID})
	sb.Edges = append(sb.Edges, Edge{Dest: a, DistanceKM: dist, RouteID: routeID})
	n.routes[routeID] = struct{}{}
	n.edgeCount += 2

	return dist, nil
}

// SetRouteName records the display name of a route.
func (n *Network) SetRouteName(routeID, name string) {
	n.routeNames[routeID] = name
}

// RouteName returns the display name of a route, or "" if unknown.
func (n *Network) RouteName(routeID string) string {
	return n.routeNames[routeID]
}

// Stop looks up a stop by id.
func (n *Network) Stop(id int64) (*Stop, bool) {
	s, ok := n.stops[id]

	return s, ok
}

// Has reports whether a stop exists.
func (n *Network) Has(id int64) bool {
	_, ok := n.stops[id]

	return ok
}

// Edges returns the adjacency list of a stop, nil for an unknown id.
// Callers must not modify the returned slice.
func (n *Network) Edges(id int64) []Edge {
	if s, ok := n.stops[id]; ok {
		return s.Edges
	}

	return nil
}

// StopIDs returns all stop ids in ascending order.
func (n *Network) StopIDs() []int64 {
	ids := make([]int64, 0, len(n.stops))
	for id := range n.stops {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// RouteIDs returns the ids of routes that label at least one edge, sorted.
func (n *Network) RouteIDs() []string {
	ids := make([]string, 0, len(n.routes))
	for id := range n.routes {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// StopCount returns the number of stops.
func (n *Network) StopCount() int { return len(n.stops) }

// EdgeCount returns the number of directed edges.
func (n *Network) EdgeCount() int { return n.edgeCount }

// SegmentCount returns the number of segments that contributed edges.
func (n *Network) SegmentCount() int { return n.segments }
