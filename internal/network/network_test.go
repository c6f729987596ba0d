package network_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/network/networktest"
)

func TestAddStop_Duplicate(t *testing.T) {
	n := network.New()

	if err := n.AddStop(1, "A", 0, 0); err != nil {
		t.Fatalf("AddStop: %v", err)
	}

	err := n.AddStop(1, "A again", 1, 1)
	if !errors.Is(err, models.ErrDuplicateStop) {
		t.Fatalf("expected ErrDuplicateStop, got %v", err)
	}
}

func TestConnect_UnknownStop(t *testing.T) {
	n := network.New()
	if err := n.AddStop(1, "A", 0, 0); err != nil {
		t.Fatalf("AddStop: %v", err)
	}

	if _, err := n.Connect(1, 99, "r"); !errors.Is(err, models.ErrStopNotFound) {
		t.Fatalf("expected ErrStopNotFound, got %v", err)
	}

	if n.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", n.EdgeCount())
	}
}

func TestConnect_AddsSymmetricPair(t *testing.T) {
	n := network.New()
	for _, id := range []int64{1, 2} {
		if err := n.AddStop(id, "s", 0, float64(id)); err != nil {
			t.Fatalf("AddStop: %v", err)
		}
	}

	dist, err := n.Connect(1, 2, "7")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	want12 := []network.Edge{{Dest: 2, DistanceKM: dist, RouteID: "7"}}
	want21 := []network.Edge{{Dest: 1, DistanceKM: dist, RouteID: "7"}}

	if got := n.Edges(1); !reflect.DeepEqual(got, want12) {
		t.Errorf("Edges(1) = %+v, want %+v", got, want12)
	}
	if got := n.Edges(2); !reflect.DeepEqual(got, want21) {
		t.Errorf("Edges(2) = %+v, want %+v", got, want21)
	}
	if n.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", n.EdgeCount())
	}
}

func TestNetwork_Lookups(t *testing.T) {
	n := networktest.Toy(t)

	if got := n.StopIDs(); !reflect.DeepEqual(got, []int64{1, 2, 3, 4}) {
		t.Errorf("StopIDs = %v", got)
	}
	if got := n.RouteIDs(); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("RouteIDs = %v", got)
	}
	if got := n.RouteName("2"); got != "Line Two" {
		t.Errorf("RouteName(2) = %q", got)
	}
	if n.Has(42) {
		t.Error("Has(42) = true")
	}
	if n.Edges(42) != nil {
		t.Error("Edges(42) should be nil")
	}
	if n.SegmentCount() != 2 {
		t.Errorf("SegmentCount = %d, want 2", n.SegmentCount())
	}
	if n.RouteName("404") != "" {
		t.Error("unknown route should have no name")
	}
}
