// Package networktest provides small fixture networks for tests.
package networktest

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/network"
)

// Stop ids of the toy network.
const (
	A int64 = 1
	B int64 = 2
	C int64 = 3
	D int64 = 4
)

// ToyDataset is four stops A(0,0) B(0,1) C(0,2) D(1,1) with route "1"
// running A–B–C and route "2" running B–D.
func ToyDataset() *models.Dataset {
	ds := models.NewDataset()
	ds.Stops = []models.StopRecord{
		{ID: A, Name: "A", Lat: 0, Lon: 0},
		{ID: B, Name: "B", Lat: 0, Lon: 1},
		{ID: C, Name: "C", Lat: 0, Lon: 2},
		{ID: D, Name: "D", Lat: 1, Lon: 1},
	}
	ds.Segments["1_0"] = []int64{B, A, C}
	ds.Segments["2_0"] = []int64{D, B}
	ds.RouteNames["1"] = "Line One"
	ds.RouteNames["2"] = "Line Two"

	return ds
}

// Toy builds ToyDataset.
func Toy(t testing.TB) *network.Network {
	t.Helper()

	return MustBuild(t, ToyDataset())
}

// MustBuild builds ds with a silent logger and fails the test on error.
func MustBuild(t testing.TB, ds *models.Dataset) *network.Network {
	t.Helper()

	n, err := network.Build(ds, Logger())
	if err != nil {
		t.Fatalf("network.Build: %v", err)
	}

	return n
}

// Logger returns a logger that discards output.
func Logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.ErrorLevel)

	return l
}
