package service

import "github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"

// EvaluateCompletion decides the derived is_completed value for a project:
// true exactly when the project has at least one place and every place is
// visited. A project with zero places is never completed.
func EvaluateCompletion(places []domain.Place) bool {
	if len(places) == 0 {
		return false
	}
	for _, p := range places {
		if !p.Visited {
			return false
		}
	}
	return true
}
