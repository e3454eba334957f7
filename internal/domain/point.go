package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Immutable geographic point in decimal degrees.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// NewGeoPoint returns a validated point or an error naming the coordinate
// that is out of range.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{Lat: lat, Lon: lon}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// Validate checks that both coordinates are finite and inside the usual
// latitude/longitude ranges.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return fmt.Errorf("latitude %v is not finite", p.Lat)
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return fmt.Errorf("longitude %v is not finite", p.Lon)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %g out of range [-180, 180]", p.Lon)
	}
	return nil
}

// Return the point as "lat,lon" for external API compatibility.
func (p GeoPoint) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}
