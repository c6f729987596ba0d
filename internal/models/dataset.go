// Package models defines data types for the transit network and its queries.
package models

import "sort"

// StopRecord is a stop as supplied by a data source, before graph construction.
type StopRecord struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Dataset is the raw input for graph construction.
//
// Segments maps a segment id (e.g. "20_1") to its member stop ids in the order
// the source listed them. That order is significant: it drives the tie-breaks
// of segment ordering, so two builds from the same Dataset are identical.
type Dataset struct {
	Stops      []StopRecord
	Segments   map[string][]int64
	RouteNames map[string]string
}

// NewDataset returns an empty Dataset with initialised maps.
func NewDataset() *Dataset {
	return &Dataset{
		Segments:   make(map[string][]int64),
		RouteNames: make(map[string]string),
	}
}

// SegmentIDs returns the segment ids in ascending order.
func (d *Dataset) SegmentIDs() []string {
	ids := make([]string, 0, len(d.Segments))
	for id := range d.Segments {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
