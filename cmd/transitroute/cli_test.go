package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/api"
	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network/networktest"
	"github.com/persistorai/transitroute/internal/service"
)

// toyStops is the four stop toy network as GeoJSON: route 1 runs A-B-C and
// route 2 runs B-D.
const toyStops = `{"type": "FeatureCollection", "features": [
  {"id": 1, "properties": {"name": "A", "subroutes": [{"subroute_ids": ["1_0"]}]}, "geometry": {"coordinates": [0, 0]}},
  {"id": 2, "properties": {"name": "B", "subroutes": [{"subroute_ids": ["1_0", "2_0"]}]}, "geometry": {"coordinates": [1, 0]}},
  {"id": 3, "properties": {"name": "C", "subroutes": [{"subroute_ids": ["1_0"]}]}, "geometry": {"coordinates": [2, 0]}},
  {"id": 4, "properties": {"name": "D", "subroutes": [{"subroute_ids": ["2_0"]}]}, "geometry": {"coordinates": [1, 1]}}
]}`

const toyRoutes = `{"data": [{"id": "1", "name": "Line One"}, {"id": "2", "name": "Line Two"}]}`

// demoStops holds the example query stops: route 20 runs 1680-1289-686 and
// route 5 runs 1680-500-686.
const demoStops = `{"type": "FeatureCollection", "features": [
  {"id": 1680, "properties": {"name": "Start", "subroutes": [{"subroute_ids": ["20_0", "5_0"]}]}, "geometry": {"coordinates": [0, 0]}},
  {"id": 1289, "properties": {"name": "Middle", "subroutes": [{"subroute_ids": ["20_0"]}]}, "geometry": {"coordinates": [1, 0]}},
  {"id": 500, "properties": {"name": "Detour", "subroutes": [{"subroute_ids": ["5_0"]}]}, "geometry": {"coordinates": [1, 1]}},
  {"id": 686, "properties": {"name": "End", "subroutes": [{"subroute_ids": ["20_0", "5_0"]}]}, "geometry": {"coordinates": [2, 0]}}
]}`

const demoRoutes = `{"data": [{"id": "20", "name": "Verte"}, {"id": "5", "name": "Bleue"}]}`

func writeDataset(t *testing.T, stops, routes string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	stopsPath := filepath.Join(dir, "stops.json")
	routesPath := filepath.Join(dir, "routes.json")
	if err := os.WriteFile(stopsPath, []byte(stops), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(routesPath, []byte(routes), 0o600); err != nil {
		t.Fatal(err)
	}
	return stopsPath, routesPath
}

// runCLI executes the CLI with args and returns stdout and the command error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	unsetEnv(t, "TRANSITROUTE_URL")
	unsetEnv(t, "TRANSITROUTE_API_KEY")
	writeConfigFile(t, "")

	root := newRootCmd()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)

	var err error
	out := captureStdout(t, func() { _, err = root.ExecuteC() })
	return out, err
}

func TestRouteCmd_Offline(t *testing.T) {
	stops, routes := writeDataset(t, toyStops, toyRoutes)

	out, err := runCLI(t, "route", "1", "4", "--stops", stops, "--routes", routes)
	if err != nil {
		t.Fatalf("route: %v", err)
	}

	want := "A (1) [0.000000, 0.000000]\nLine One - B (2) [0.000000, 1.000000]\nLine Two - D (4) [1.000000, 1.000000]\n"
	if strings.Count(out, want) != 2 {
		t.Errorf("expected the path once per algorithm:\n%s", out)
	}
}

func TestRouteCmd_Constraints(t *testing.T) {
	stops, routes := writeDataset(t, toyStops, toyRoutes)

	tests := []struct {
		name      string
		args      []string
		wantFound bool
		wantErr   bool
	}{
		{name: "forbid route 1", args: []string{"--forbid-route", "1"}},
		{name: "forbid stop B", args: []string{"--forbid-stop", "2"}},
		{name: "allow both routes", args: []string{"--allow-route", "1,2"}, wantFound: true},
		{name: "allow and forbid routes", args: []string{"--allow-route", "1", "--forbid-route", "2"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"route", "1", "4", "--format", "json", "--stops", stops, "--routes", routes}, tc.args...)
			out, err := runCLI(t, args...)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("route: %v", err)
			}

			var res models.RouteResult
			if err := json.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("invalid JSON: %v\n%s", err, out)
			}
			if res.BFS.Found != tc.wantFound || res.Dijkstra.Found != tc.wantFound {
				t.Errorf("found = %v/%v, want %v", res.BFS.Found, res.Dijkstra.Found, tc.wantFound)
			}
		})
	}
}

func TestRouteCmd_Args(t *testing.T) {
	stops, routes := writeDataset(t, toyStops, toyRoutes)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing destination", args: []string{"route", "1", "--stops", stops, "--routes", routes}},
		{name: "non numeric stop", args: []string{"route", "1", "x", "--stops", stops, "--routes", routes}},
		{name: "unknown stop", args: []string{"route", "1", "99", "--stops", stops, "--routes", routes}, wantErr: models.ErrStopNotFound},
		{name: "stops without routes", args: []string{"stats", "--stops", stops}, wantErr: errOfflineFlags},
		{name: "missing data file", args: []string{"stats", "--stops", stops + ".missing", "--routes", routes}, wantErr: os.ErrNotExist},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestExamplesCmd(t *testing.T) {
	stops, routes := writeDataset(t, demoStops, demoRoutes)

	out, err := runCLI(t, "examples", "--stops", stops, "--routes", routes)
	if err != nil {
		t.Fatalf("examples: %v", err)
	}

	if n := strings.Count(out, "### "); n != 3 {
		t.Errorf("expected 3 queries, got %d:\n%s", n, out)
	}
	if strings.Contains(out, "No path found.") {
		t.Errorf("every example has a path in the demo dataset:\n%s", out)
	}

	// The last two queries avoid route 20 and stop 1289, leaving the detour.
	parts := strings.Split(out, "### ")
	for _, part := range parts[2:] {
		if !strings.Contains(part, "Bleue - Detour (500)") {
			t.Errorf("expected the detour via route 5:\n%s", part)
		}
	}
}

func TestNetworkCmds_Offline(t *testing.T) {
	stops, routes := writeDataset(t, toyStops, toyRoutes)

	out, err := runCLI(t, "stats", "--format", "json", "--stops", stops, "--routes", routes)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var stats models.NetworkStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats != (models.NetworkStats{Stops: 4, Edges: 6, Routes: 2, Segments: 2}) {
		t.Errorf("stats = %+v", stats)
	}

	out, err = runCLI(t, "routes", "--stops", stops, "--routes", routes)
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	if !strings.Contains(out, "Line Two") {
		t.Errorf("routes output missing Line Two:\n%s", out)
	}

	out, err = runCLI(t, "stop", "2", "--stops", stops, "--routes", routes)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if strings.Count(out, "\n") != 7 {
		t.Errorf("expected heading, blank line, table header and 3 neighbors:\n%s", out)
	}
}

func TestRemoteBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := httptest.NewServer(api.NewRouter(ctx, &api.RouterDeps{
		Log:            log,
		Routes:         service.NewRouteService(networktest.Toy(t), log),
		Version:        "test",
		APIKey:         "k",
		CORSOrigins:    []string{"http://localhost:5173"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "route", "1", "3", "--format", "json", "--url", srv.URL, "--api-key", "k")
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	var res models.RouteResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(res.Dijkstra.Steps) != 3 || res.Dijkstra.Steps[2].RouteName != "Line One" {
		t.Errorf("unexpected dijkstra result %+v", res.Dijkstra)
	}

	if _, err := runCLI(t, "stats", "--url", srv.URL, "--api-key", "wrong"); err == nil {
		t.Error("expected an auth error with the wrong key")
	}
}
