package models

// PathStep is one stop along a path together with the route used to reach it.
// RouteID is empty for the first step.
type PathStep struct {
	StopID    int64   `json:"stop_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	RouteID   string  `json:"route_id,omitempty"`
	RouteName string  `json:"route_name,omitempty"`
}

// AlgorithmResult is the outcome of one search algorithm for a query.
type AlgorithmResult struct {
	Algorithm  string     `json:"algorithm"`
	Found      bool       `json:"found"`
	Stops      []int64    `json:"stops"`
	Steps      []PathStep `json:"steps"`
	Hops       int        `json:"hops"`
	DistanceKM float64    `json:"distance_km"`
	ElapsedMS  float64    `json:"elapsed_ms"`
}

// RouteResult holds both algorithm results for a RouteQuery.
type RouteResult struct {
	From     int64           `json:"from"`
	To       int64           `json:"to"`
	BFS      AlgorithmResult `json:"bfs"`
	Dijkstra AlgorithmResult `json:"dijkstra"`
}

// Neighbor is an outgoing edge of a stop, resolved for display.
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

// NetworkStats summarises a built network.
type NetworkStats struct {
	Stops    int `json:"stops"`
	Edges    int `json:"edges"`
	Routes   int `json:"routes"`
	Segments int `json:"segments"`
}
