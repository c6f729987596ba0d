// Package geo provides great-circle distance on WGS84 coordinates.
package geo

import "math"

// EarthRadiusKM is the mean Earth radius used by HaversineKM.
const EarthRadiusKM = 6371.0

// Point is a coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKM returns the haversine distance from p to q.
func (p Point) DistanceKM(q Point) float64 {
	return HaversineKM(p.Lat, p.Lon, q.Lat, q.Lon)
}

// HaversineKM returns the great-circle distance in kilometers between two
// coordinates given in decimal degrees. Inputs are not validated: NaN in, NaN out.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}
