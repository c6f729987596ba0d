// Package loader reads transit datasets from GeoJSON stop files and JSON
// route tables.
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/persistorai/transitroute/internal/models"
)

type stopCollection struct {
	Features *[]stopFeature `json:"features"`
}

type stopFeature struct {
	ID         int64 `json:"id"`
	Properties struct {
		Name      string `json:"name"`
		Subroutes []struct {
			SubrouteIDs []string `json:"subroute_ids"`
		} `json:"subroutes"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

type routeTable struct {
	Data *[]struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

// ParseStops decodes a GeoJSON FeatureCollection of stops. Each feature
// carries its id, properties.name, geometry.coordinates as [lon, lat] and
// the segments it belongs to under properties.subroutes[].subroute_ids.
//
// The returned membership lists follow feature order.
func ParseStops(r io.Reader) ([]models.StopRecord, map[string][]int64, error) {
	var fc stopCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, nil, fmt.Errorf("%w: decoding stops: %w", models.ErrInvalidDataset, err)
	}

	if fc.Features == nil {
		return nil, nil, fmt.Errorf("%w: stops: missing \"features\"", models.ErrInvalidDataset)
	}

	stops := make([]models.StopRecord, 0, len(*fc.Features))
	segments := make(map[string][]int64)

	for i, f := range *fc.Features {
		if len(f.Geometry.Coordinates) < 2 {
			return nil, nil, fmt.Errorf("%w: stops: feature %d (id %d) has no [lon, lat] coordinates",
				models.ErrInvalidDataset, i, f.ID)
		}

		stops = append(stops, models.StopRecord{
			ID:   f.ID,
			Name: f.Properties.Name,
			Lat:  f.Geometry.Coordinates[1],
			Lon:  f.Geometry.Coordinates[0],
		})

		for _, sub := range f.Properties.Subroutes {
			for _, segID := range sub.SubrouteIDs {
				segments[segID] = append(segments[segID], f.ID)
			}
		}
	}

	return stops, segments, nil
}

// ParseRoutes decodes a route table of the form {"data": [{"id", "name"}]}.
func ParseRoutes(r io.Reader) (map[string]string, error) {
	var rt routeTable
	if err := json.NewDecoder(r).Decode(&rt); err != nil {
		return nil, fmt.Errorf("%w: decoding routes: %w", models.ErrInvalidDataset, err)
	}

	if rt.Data == nil {
		return nil, fmt.Errorf("%w: routes: missing \"data\"", models.ErrInvalidDataset)
	}

	names := make(map[string]string, len(*rt.Data))
	for _, route := range *rt.Data {
		names[route.ID] = route.Name
	}

	return names, nil
}
