package loader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/persistorai/transitroute/internal/domain"
	"github.com/persistorai/transitroute/internal/models"
)

// Compile-time check: FileSource must satisfy domain.DatasetSource.
var _ domain.DatasetSource = FileSource{}

// FileSource loads a dataset from a stops GeoJSON file and a routes JSON file.
type FileSource struct {
	StopsPath  string
	RoutesPath string
}

// Load implements domain.DatasetSource.
func (s FileSource) Load(ctx context.Context) (*models.Dataset, error) {
	return LoadFiles(ctx, s.StopsPath, s.RoutesPath)
}

// LoadFiles reads both files concurrently. Either file failing fails the load
// and the error names the file.
func LoadFiles(ctx context.Context, stopsPath, routesPath string) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	ds := models.NewDataset()

	var g errgroup.Group

	g.Go(func() error {
		f, err := os.Open(stopsPath) //nolint:gosec // path comes from operator config.
		if err != nil {
			return fmt.Errorf("opening %s: %w", stopsPath, err)
		}
		defer f.Close() //nolint:errcheck // read-only file.

		stops, segments, err := ParseStops(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", stopsPath, err)
		}

		ds.Stops = stops
		ds.Segments = segments

		return nil
	})

	g.Go(func() error {
		f, err := os.Open(routesPath) //nolint:gosec // path comes from operator config.
		if err != nil {
			return fmt.Errorf("opening %s: %w", routesPath, err)
		}
		defer f.Close() //nolint:errcheck // read-only file.

		names, err := ParseRoutes(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", routesPath, err)
		}

		ds.RouteNames = names

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ds, nil
}
