package client

import (
	"context"
	"strconv"
)

// RouteService plans routes and lists the network's routes.
type RouteService struct {
	c *Client
}

// Plan runs BFS and Dijkstra between two stops under the request's constraints.
func (s *RouteService) Plan(ctx context.Context, req *RouteRequest) (*RouteResult, error) {
	var res RouteResult
	if err := s.c.post(ctx, "/route", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns every route id with its display name, sorted by id.
func (s *RouteService) List(ctx context.Context) ([]RouteInfo, error) {
	var resp struct {
		Routes []RouteInfo `json:"routes"`
	}
	if err := s.c.get(ctx, "/routes", &resp); err != nil {
		return nil, err
	}
	return resp.Routes, nil
}

// StopService looks up stops.
type StopService struct {
	c *Client
}

// Get returns a stop and its outgoing edges.
func (s *StopService) Get(ctx context.Context, id int64) (*StopDetail, error) {
	var stop StopDetail
	if err := s.c.get(ctx, "/stops/"+strconv.FormatInt(id, 10), &stop); err != nil {
		return nil, err
	}
	return &stop, nil
}
