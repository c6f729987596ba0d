package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/client"
	"github.com/persistorai/transitroute/internal/domain"
	"github.com/persistorai/transitroute/internal/loader"
	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/service"
)

// routeBackend answers CLI queries either in-process or through the REST API.
type routeBackend interface {
	Plan(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error)
	Stop(ctx context.Context, id int64) (*models.StopDetail, error)
	Routes(ctx context.Context) ([]models.RouteInfo, error)
	Stats(ctx context.Context) (models.NetworkStats, error)
}

var errOfflineFlags = errors.New("--stops and --routes must be given together")

// newBackend builds an offline backend when data files are given and a
// remote one otherwise.
func newBackend(ctx context.Context) (routeBackend, error) {
	switch {
	case flagStops == "" && flagRoutes == "":
		var opts []client.Option
		if flagKey != "" {
			opts = append(opts, client.WithAPIKey(flagKey))
		}
		return &remoteBackend{c: client.New(flagURL, opts...)}, nil
	case flagStops == "" || flagRoutes == "":
		return nil, errOfflineFlags
	}

	log := cliLogger()
	ds, err := loader.FileSource{StopsPath: flagStops, RoutesPath: flagRoutes}.Load(ctx)
	if err != nil {
		return nil, err
	}
	n, err := network.Build(ds, log)
	if err != nil {
		return nil, fmt.Errorf("building network: %w", err)
	}
	return &localBackend{svc: service.NewRouteService(n, log)}, nil
}

func cliLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return log
}

// localBackend runs queries against a network built in this process.
type localBackend struct {
	svc domain.RouteService
}

func (b *localBackend) Plan(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error) {
	return b.svc.Plan(ctx, q)
}

func (b *localBackend) Stop(ctx context.Context, id int64) (*models.StopDetail, error) {
	return b.svc.Stop(ctx, id)
}

func (b *localBackend) Routes(ctx context.Context) ([]models.RouteInfo, error) {
	return b.svc.Routes(ctx), nil
}

func (b *localBackend) Stats(ctx context.Context) (models.NetworkStats, error) {
	return b.svc.Stats(ctx), nil
}

// remoteBackend forwards queries to a transitroute server.
type remoteBackend struct {
	c *client.Client
}

func (b *remoteBackend) Plan(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error) {
	res, err := b.c.Routes.Plan(ctx, &client.RouteRequest{
		From:            q.From,
		To:              q.To,
		ForbiddenRoutes: q.ForbiddenRoutes,
		ForbiddenStops:  q.ForbiddenStops,
		AllowedRoutes:   q.AllowedRoutes,
		AllowedStops:    q.AllowedStops,
	})
	if err != nil {
		return nil, err
	}
	return &models.RouteResult{
		From:     res.From,
		To:       res.To,
		BFS:      algorithmResult(res.BFS),
		Dijkstra: algorithmResult(res.Dijkstra),
	}, nil
}

func (b *remoteBackend) Stop(ctx context.Context, id int64) (*models.StopDetail, error) {
	s, err := b.c.Stops.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	neighbors := make([]models.Neighbor, len(s.Neighbors))
	for i, nb := range s.Neighbors {
		neighbors[i] = models.Neighbor(nb)
	}
	return &models.StopDetail{ID: s.ID, Name: s.Name, Lat: s.Lat, Lon: s.Lon, Neighbors: neighbors}, nil
}

func (b *remoteBackend) Routes(ctx context.Context) ([]models.RouteInfo, error) {
	routes, err := b.c.Routes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.RouteInfo, len(routes))
	for i, r := range routes {
		out[i] = models.RouteInfo(r)
	}
	return out, nil
}

func (b *remoteBackend) Stats(ctx context.Context) (models.NetworkStats, error) {
	s, err := b.c.Stats(ctx)
	if err != nil {
		return models.NetworkStats{}, err
	}
	return models.NetworkStats(*s), nil
}

func algorithmResult(r client.AlgorithmResult) models.AlgorithmResult {
	steps := make([]models.PathStep, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = models.PathStep(s)
	}
	return models.AlgorithmResult{
		Algorithm:  r.Algorithm,
		Found:      r.Found,
		Stops:      r.Stops,
		Steps:      steps,
		Hops:       r.Hops,
		DistanceKM: r.DistanceKM,
		ElapsedMS:  r.ElapsedMS,
	}
}
