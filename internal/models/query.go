package models

// Constraints are the allow/deny lists applied to every edge during a search.
type Constraints struct {
	ForbiddenRoutes []string `json:"forbidden_routes,omitempty"`
	ForbiddenStops  []int64  `json:"forbidden_stops,omitempty"`
	AllowedRoutes   []string `json:"allowed_routes,omitempty"`
	AllowedStops    []int64  `json:"allowed_stops,omitempty"`
}

// Validate rejects an allow-list and a deny-list of the same kind supplied together.
func (c *Constraints) Validate() error {
	if len(c.ForbiddenRoutes) > 0 && len(c.AllowedRoutes) > 0 {
		return ErrConflictingRouteConstraints
	}

	if len(c.ForbiddenStops) > 0 && len(c.AllowedStops) > 0 {
		return ErrConflictingStopConstraints
	}

	return nil
}

// IsZero reports whether no constraint is set.
func (c *Constraints) IsZero() bool {
	return len(c.ForbiddenRoutes) == 0 && len(c.ForbiddenStops) == 0 &&
		len(c.AllowedRoutes) == 0 && len(c.AllowedStops) == 0
}

// RouteQuery is a point-to-point routing request.
type RouteQuery struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
	Constraints
}
