// internal/navigation/domain.go
package navigation

import (
	"math"

	"github.com/google/uuid"
)

const (
	// earthRadiusMeters is the mean Earth radius used by the great-circle
	// distance calculation.
	earthRadiusMeters = 6371000.0

	// walkingSpeedMetersPerSecond is the assumed constant visitor pace.
	walkingSpeedMetersPerSecond = 1.4
)

// Request carries a visitor position and a target attraction. The
// coordinate fields are pointers so "absent" and "zero" stay distinct.
type Request struct {
	Latitude     *float64
	Longitude    *float64
	AttractionID uuid.UUID
}

// Estimate is the computed walking estimate to an attraction.
type Estimate struct {
	AttractionID    uuid.UUID `json:"attraction_id"`
	AttractionName  string    `json:"attraction_name"`
	DistanceMeters  int       `json:"distance_meters"`
	DistanceKM      float64   `json:"distance_km"`
	WalkTimeMinutes int       `json:"estimated_walk_time_minutes"`
}

// Distance returns the Haversine great-circle distance in meters between
// two points given in signed decimal degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WalkingMinutes converts a distance to whole minutes at walking pace,
// never reporting less than one minute.
func WalkingMinutes(meters float64) int {
	minutes := int(math.Round(meters / (walkingSpeedMetersPerSecond * 60)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
