// Package service provides query logic between API handlers and the network.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/domain"
	"github.com/persistorai/transitroute/internal/metrics"
	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/report"
	"github.com/persistorai/transitroute/internal/search"
)

// Compile-time check: *RouteService must satisfy domain.RouteService.
var _ domain.RouteService = (*RouteService)(nil)

// RouteService runs both search algorithms against a built network.
// The network is never modified, so a single RouteService serves concurrent requests.
type RouteService struct {
	net *network.Network
	log *logrus.Logger
}

// NewRouteService creates a RouteService and publishes network size gauges.
func NewRouteService(net *network.Network, log *logrus.Logger) *RouteService {
	metrics.StopCount.Set(float64(net.StopCount()))
	metrics.EdgeCount.Set(float64(net.EdgeCount()))
	metrics.RouteCount.Set(float64(len(net.RouteIDs())))

	return &RouteService{net: net, log: log}
}

// Plan validates q and returns the BFS and Dijkstra paths between its stops.
// An empty path is a normal result with Found false, not an error.
func (s *RouteService) Plan(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error) {
	s.log.WithFields(logrus.Fields{
		"from":             q.From,
		"to":               q.To,
		"forbidden_routes": q.ForbiddenRoutes,
		"forbidden_stops":  q.ForbiddenStops,
		"allowed_routes":   q.AllowedRoutes,
		"allowed_stops":    q.AllowedStops,
	}).Debug("route.plan")

	if err := q.Validate(); err != nil {
		return nil, err
	}

	for _, id := range []int64{q.From, q.To} {
		if !s.net.Has(id) {
			return nil, fmt.Errorf("stop %d: %w", id, models.ErrStopNotFound)
		}
	}

	filter := search.NewFilter(q.Constraints)
	res := &models.RouteResult{From: q.From, To: q.To}

	for _, alg := range search.Algorithms() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("planning route: %w", err)
		}

		ar, err := s.run(alg, q.From, q.To, filter)
		if err != nil {
			return nil, err
		}

		switch alg {
		case search.AlgorithmBFS:
			res.BFS = ar
		case search.AlgorithmDijkstra:
			res.Dijkstra = ar
		}
	}

	return res, nil
}

func (s *RouteService) run(alg search.Algorithm, from, to int64, f *search.Filter) (models.AlgorithmResult, error) {
	start := time.Now()

	path, err := search.Run(alg, s.net, from, to, f)
	if err != nil {
		return models.AlgorithmResult{}, err
	}

	elapsed := time.Since(start)
	metrics.SearchDuration.WithLabelValues(string(alg)).Observe(elapsed.Seconds())

	res := models.AlgorithmResult{
		Algorithm: string(alg),
		Found:     !path.Empty(),
		Stops:     path.Stops,
		Steps:     report.Describe(s.net, path, s.net.RouteName),
		Hops:      path.Hops(),
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
	}

	if res.Stops == nil {
		res.Stops = []int64{}
	}

	if res.Found {
		res.DistanceKM = report.PathDistance(s.net, path.Stops)
		metrics.SearchHops.WithLabelValues(string(alg)).Observe(float64(res.Hops))
	} else {
		metrics.SearchNoPath.WithLabelValues(string(alg)).Inc()
	}

	s.log.WithFields(logrus.Fields{
		"algorithm":   alg,
		"found":       res.Found,
		"hops":        res.Hops,
		"distance_km": res.DistanceKM,
		"elapsed_ms":  res.ElapsedMS,
	}).Debug("route.search")

	return res, nil
}

// Stop returns a stop with its outgoing edges in adjacency order.
func (s *RouteService) Stop(_ context.Context, id int64) (*models.StopDetail, error) {
	s.log.WithField("stop_id", id).Debug("route.stop")

	st, ok := s.net.Stop(id)
	if !ok {
		return nil, fmt.Errorf("stop %d: %w", id, models.ErrStopNotFound)
	}

	detail := &models.StopDetail{
		ID:        st.ID,
		Name:      st.Name,
		Lat:       st.Lat,
		Lon:       st.Lon,
		Neighbors: make([]models.Neighbor, 0, len(st.Edges)),
	}

	for _, e := range st.Edges {
		nb := models.Neighbor{StopID: e.Dest, RouteID: e.RouteID, DistanceKM: e.DistanceKM}
		if dest, ok := s.net.Stop(e.Dest); ok {
			nb.Name = dest.Name
		}

		detail.Neighbors = append(detail.Neighbors, nb)
	}

	return detail, nil
}

// Routes lists every route that serves an edge, with its display name, by id.
func (s *RouteService) Routes(_ context.Context) []models.RouteInfo {
	ids := s.net.RouteIDs()
	out := make([]models.RouteInfo, 0, len(ids))

	for _, id := range ids {
		out = append(out, models.RouteInfo{ID: id, Name: s.net.RouteName(id)})
	}

	return out
}

// Stats summarises the network.
func (s *RouteService) Stats(_ context.Context) models.NetworkStats {
	return models.NetworkStats{
		Stops:    s.net.StopCount(),
		Edges:    s.net.EdgeCount(),
		Routes:   len(s.net.RouteIDs()),
		Segments: s.net.SegmentCount(),
	}
}
