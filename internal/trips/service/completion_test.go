package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/service"
)

func TestEvaluateCompletion(t *testing.T) {
	tests := []struct {
		name    string
		visited []bool
		want    bool
	}{
		{name: "no places is not completed", visited: nil, want: false},
		{name: "single visited place", visited: []bool{true}, want: true},
		{name: "single unvisited place", visited: []bool{false}, want: false},
		{name: "all visited", visited: []bool{true, true, true}, want: true},
		{name: "one unvisited among visited", visited: []bool{true, false, true}, want: false},
		{name: "none visited", visited: []bool{false, false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places := make([]domain.Place, len(tt.visited))
			for i, v := range tt.visited {
				places[i] = domain.Place{ID: int64(i + 1), Visited: v}
			}
			assert.Equal(t, tt.want, service.EvaluateCompletion(places))
		})
	}
}
