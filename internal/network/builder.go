package network

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/models"
)

// segmentSeparator splits a segment id into its route id and variant suffix.
const segmentSeparator = "_"

// Build constructs a Network from a dataset. Segments are processed in
// ascending id order and each segment's members in the order the dataset lists
// them, so the same dataset always yields the same edges in the same order.
//
// A segment member that is not a known stop fails the whole build.
func Build(ds *models.Dataset, log *logrus.Logger) (*Network, error) {
	n := New()

	for _, rec := range ds.Stops {
		if err := n.AddStop(rec.ID, rec.Name, rec.Lat, rec.Lon); err != nil {
			return nil, fmt.Errorf("building network: %w: %w", models.ErrInvalidDataset, err)
		}
	}

	for id, name := range ds.RouteNames {
		n.SetRouteName(id, name)
	}

	skipped := 0

	for _, segID := range ds.SegmentIDs() {
		members := dedupe(ds.Segments[segID])

		for _, id := range members {
			if !n.Has(id) {
				return nil, fmt.Errorf("building network: %w: segment %q references unknown stop %d",
					models.ErrInvalidDataset, segID, id)
			}
		}

		order := OrderSegment(n, members)
		if len(order) < 2 {
			skipped++

			continue
		}

		routeID := RouteIDFromSegment(segID)
		for i := 0; i+1 < len(order); i++ {
			if _, err := n.Connect(order[i], order[i+1], routeID); err != nil {
				return nil, fmt.Errorf("building segment %q: %w", segID, err)
			}
		}

		n.segments++

		log.WithFields(logrus.Fields{
			"segment": segID,
			"route":   routeID,
			"stops":   len(order),
		}).Debug("segment ordered")
	}

	log.WithFields(logrus.Fields{
		"stops":            n.StopCount(),
		"edges":            n.EdgeCount(),
		"segments":         n.segments,
		"segments_skipped": skipped,
		"routes":           len(n.routes),
	}).Info("network built")

	return n, nil
}

// RouteIDFromSegment returns the part of a segment id before the first "_",
// or the whole id when it has no separator.
func RouteIDFromSegment(segmentID string) string {
	if i := strings.Index(segmentID, segmentSeparator); i >= 0 {
		return segmentID[:i]
	}

	return segmentID
}

// OrderSegment turns an unordered set of member stops into a visiting order.
//
// The two members farthest apart are taken as the physical ends of the segment
// (first pair found wins ties). Starting from the first of them, the nearest
// unvisited member is appended until all are visited (first found wins ties).
// This is a greedy approximation of the route shape, not an optimal tour.
//
// Fewer than two members, or members unknown to n, yield nil.
func OrderSegment(n *Network, members []int64) []int64 {
	if len(members) < 2 {
		return nil
	}

	stops := make([]*Stop, len(members))
	for i, id := range members {
		s, ok := n.Stop(id)
		if !ok {
			return nil
		}

		stops[i] = s
	}

	start, _, ok := farthestPair(stops)
	if !ok {
		return nil
	}

	visited := make([]bool, len(stops))
	visited[start] = true
	order := make([]int64, 0, len(stops))
	order = append(order, stops[start].ID)
	current := start

	for {
		nearest := -1
		minDist := math.Inf(1)

		for i, s := range stops {
			if visited[i] {
				continue
			}

			if d := stops[current].Point().DistanceKM(s.Point()); d < minDist {
				minDist = d
				nearest = i
			}
		}

		if nearest < 0 {
			break
		}

		visited[nearest] = true
		order = append(order, stops[nearest].ID)
		current = nearest
	}

	return order
}

// farthestPair returns the indexes of the first pair with the greatest distance.
func farthestPair(stops []*Stop) (int, int, bool) {
	maxDist := -1.0
	a, b := -1, -1

	for i := 0; i < len(stops); i++ {
		for j := i + 1; j < len(stops); j++ {
			if d := stops[i].Point().DistanceKM(stops[j].Point()); d > maxDist {
				maxDist = d
				a, b = i, j
			}
		}
	}

	return a, b, a >= 0 && b >= 0
}

// dedupe drops repeated ids, keeping first occurrences in order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
