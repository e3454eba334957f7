package distance

import (
	"context"
	"fmt"
	"math"

	"geo-distance-service/internal/domain"
)

// Mean Earth radius in kilometers. The formula treats Earth as a sphere and
// accepts the small error against the real ellipsoid.
const earthRadiusKm = 6371.0

// HaversineStrategy computes great-circle distances with the haversine
// formula. It is stateless, never touches the network, and is safe for
// concurrent use.
type HaversineStrategy struct{}

func NewHaversineStrategy() *HaversineStrategy { return &HaversineStrategy{} }

// Return the spherical distance in kilometers between origin and destination.
func (s *HaversineStrategy) CalculateDistance(
	_ context.Context,
	origin domain.GeoPoint,
	destination domain.GeoPoint,
) (float64, error) {
	if err := origin.Validate(); err != nil {
		return 0, fmt.Errorf("%w: origin: %w", domain.ErrDistanceCalculation, err)
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("%w: destination: %w", domain.ErrDistanceCalculation, err)
	}

	lat1 := origin.Lat * math.Pi / 180
	lat2 := destination.Lat * math.Pi / 180
	dLat := (destination.Lat - origin.Lat) * math.Pi / 180
	dLon := (destination.Lon - origin.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// For in-range coordinates a stays within [0, 1]; rounding can push it
	// past 1 by an ulp. Anything further means the inputs were not sane.
	if a > 1 {
		if a > 1+1e-9 {
			return 0, fmt.Errorf("%w: haversine term %g outside [0, 1]", domain.ErrDistanceCalculation, a)
		}
		a = 1
	}

	return 2 * math.Asin(math.Sqrt(a)) * earthRadiusKm, nil
}
