package client

// RouteRequest is the body of a route query. A forbidden list and an allowed
// list of the same kind cannot both be set.
type RouteRequest struct {
	From            int64    `json:"from"`
	To              int64    `json:"to"`
	ForbiddenRoutes []string `json:"forbidden_routes,omitempty"`
	ForbiddenStops  []int64  `json:"forbidden_stops,omitempty"`
	AllowedRoutes   []string `json:"allowed_routes,omitempty"`
	AllowedStops    []int64  `json:"allowed_stops,omitempty"`
}

// PathStep is one stop along a path. RouteID is empty for the first step.
type PathStep struct {
	StopID    int64   `json:"stop_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	RouteID   string  `json:"route_id,omitempty"`
	RouteName string  `json:"route_name,omitempty"`
}

// AlgorithmResult is the outcome of one search algorithm.
type AlgorithmResult struct {
	Algorithm  string     `json:"algorithm"`
	Found      bool       `json:"found"`
	Stops      []int64    `json:"stops"`
	Steps      []PathStep `json:"steps"`
	Hops       int        `json:"hops"`
	DistanceKM float64    `json:"distance_km"`
	ElapsedMS  float64    `json:"elapsed_ms"`
}

// RouteResult holds the BFS and Dijkstra results for one query.
type RouteResult struct {
	From     int64           `json:"from"`
	To       int64           `json:"to"`
	BFS      AlgorithmResult `json:"bfs"`
	Dijkstra AlgorithmResult `json:"dijkstra"`
}

// Neighbor is an outgoing edge of a stop.
type Neighbor struct {
	StopID     int64   `json:"stop_id"`
	Name       string  `json:"name"`
	RouteID    string  `json:"route_id"`
	DistanceKM float64 `json:"distance_km"`
}

// StopDetail is a stop with its outgoing edges.
type StopDetail struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Neighbors []Neighbor `json:"neighbors"`
}

// RouteInfo is a route id with its display name.
type RouteInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StatsResponse is the size of the loaded network.
type StatsResponse struct {
	Stops    int `json:"stops"`
	Edges    int `json:"edges"`
	Routes   int `json:"routes"`
	Segments int `json:"segments"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Stops         int     `json:"stops"`
	Edges         int     `json:"edges"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is returned by the readiness endpoint.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
