package search

import "github.com/persistorai/transitroute/internal/models"

// Filter decides which edges a search may traverse.
//
// Allow and deny lists of the same kind are not expected together; that is
// rejected by models.Constraints.Validate before a Filter is built.
type Filter struct {
	forbiddenRoutes map[string]struct{}
	forbiddenStops  map[int64]struct{}
	allowedRoutes   map[string]struct{}
	allowedStops    map[int64]struct{}
}

// NewFilter builds a Filter from query constraints.
func NewFilter(c models.Constraints) *Filter {
	return &Filter{
		forbiddenRoutes: stringSet(c.ForbiddenRoutes),
		forbiddenStops:  idSet(c.ForbiddenStops),
		allowedRoutes:   stringSet(c.AllowedRoutes),
		allowedStops:    idSet(c.AllowedStops),
	}
}

// Permits reports whether an edge served by routeID and leading to next may be
// followed. A nil Filter permits every edge.
func (f *Filter) Permits(routeID string, next int64) bool {
	if f == nil {
		return true
	}

	if len(f.forbiddenRoutes) > 0 {
		if _, ok := f.forbiddenRoutes[routeID]; ok {
			return false
		}
	}

	if len(f.allowedRoutes) > 0 {
		if _, ok := f.allowedRoutes[routeID]; !ok {
			return false
		}
	}

	return f.StopPermitted(next)
}

// StopPermitted applies only the stop rules.
func (f *Filter) StopPermitted(id int64) bool {
	if f == nil {
		return true
	}

	if _, ok := f.forbiddenStops[id]; ok {
		return false
	}

	if len(f.allowedStops) > 0 {
		if _, ok := f.allowedStops[id]; !ok {
			return false
		}
	}

	return true
}

func stringSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

func idSet(values []int64) map[int64]struct{} {
	if len(values) == 0 {
		return nil
	}

	set := make(map[int64]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
