// Package report turns search paths into distances, step lists and text.
package report

import (
	"fmt"
	"io"

	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/search"
)

// NoPathMessage is printed in place of a path when none was found.
const NoPathMessage = "No path found."

// Locator resolves stop ids to stops.
type Locator interface {
	Stop(id int64) (*network.Stop, bool)
}

// PathDistance sums the great-circle distance between consecutive stops,
// computed from their coordinates. Unknown stops contribute nothing.
func PathDistance(n Locator, stops []int64) float64 {
	total := 0.0

	for i := 0; i+1 < len(stops); i++ {
		a, okA := n.Stop(stops[i])
		b, okB := n.Stop(stops[i+1])

		if !okA || !okB {
			continue
		}

		total += a.Point().DistanceKM(b.Point())
	}

	return total
}

// Describe resolves each stop of path and the route used to reach it.
// routeName maps a route id to its display name and may be nil.
//
// The route of each hop is the one the search traversed. For a path without
// recorded routes, the first edge in adjacency order that reaches the next
// stop is used instead.
func Describe(n Locator, path search.Path, routeName func(routeID string) string) []models.PathStep {
	steps := make([]models.PathStep, 0, len(path.Stops))

	for i, id := range path.Stops {
		st := models.PathStep{StopID: id}

		if s, ok := n.Stop(id); ok {
			st.Name = s.Name
			st.Lat = s.Lat
			st.Lon = s.Lon
		}

		if i > 0 {
			st.RouteID = hopRoute(n, path, i-1)
			if routeName != nil {
				st.RouteName = routeName(st.RouteID)
			}
		}

		steps = append(steps, st)
	}

	return steps
}

// hopRoute returns the route for the hop leaving path.Stops[i].
func hopRoute(n Locator, path search.Path, i int) string {
	if i < len(path.Routes) {
		return path.Routes[i]
	}

	from, ok := n.Stop(path.Stops[i])
	if !ok {
		return ""
	}

	for _, e := range from.Edges {
		if e.Dest == path.Stops[i+1] {
			return e.RouteID
		}
	}

	return ""
}

// WriteText writes one line per step:
//
//	Name (id) [lat, lon]
//	route - Name (id) [lat, lon]
func WriteText(w io.Writer, steps []models.PathStep) error {
	if len(steps) == 0 {
		_, err := fmt.Fprintln(w, NoPathMessage)

		return err
	}

	for i, s := range steps {
		var err error

		if i == 0 {
			_, err = fmt.Fprintf(w, "%s (%d) [%.6f, %.6f]\n", s.Name, s.StopID, s.Lat, s.Lon)
		} else {
			_, err = fmt.Fprintf(w, "%s - %s (%d) [%.6f, %.6f]\n", routeLabel(s), s.Name, s.StopID, s.Lat, s.Lon)
		}

		if err != nil {
			return fmt.Errorf("writing step %d: %w", i, err)
		}
	}

	return nil
}

// WriteSummary writes the algorithm heading, its path, total distance and
// elapsed time.
func WriteSummary(w io.Writer, res models.AlgorithmResult) error {
	if _, err := fmt.Fprintf(w, "== %s ==\n", res.Algorithm); err != nil {
		return err
	}

	if err := WriteText(w, res.Steps); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Total distance: %.2f km\nElapsed: %.3f ms\n", res.DistanceKM, res.ElapsedMS)

	return err
}

func routeLabel(s models.PathStep) string {
	if s.RouteName != "" {
		return s.RouteName
	}

	return s.RouteID
}
