package service

import (
	"context"
	"fmt"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// PlaceService orchestrates the place lifecycle: artwork validation, limit
// and uniqueness enforcement, and the completion recompute that follows
// every mutation.
type PlaceService struct {
	projects ProjectStore
	places   PlaceStore
	catalog  ArtworkLookup
	locks    *ProjectLocks
}

// NewPlaceService creates a new place service.
func NewPlaceService(projects ProjectStore, places PlaceStore, catalog ArtworkLookup, locks *ProjectLocks) *PlaceService {
	return &PlaceService{
		projects: projects,
		places:   places,
		catalog:  catalog,
		locks:    locks,
	}
}

// Add validates and persists a new place in a project, then recomputes the
// project's completion flag. The whole check-validate-persist-recompute
// sequence holds the project lock so concurrent adds cannot jointly exceed
// the cap or duplicate an artwork.
func (s *PlaceService) Add(ctx context.Context, projectID, artworkID int64, notes string) (*domain.Place, error) {
	logger := NewLogger(ctx)

	// The project is resolved first so an absent project is reported as
	// not-found even when the payload is also bad.
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}

	if artworkID <= 0 {
		return nil, fmt.Errorf("%w: artwork_id is required", domain.ErrInvalidInput)
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	count, err := s.places.CountByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxPlacesPerProject {
		return nil, fmt.Errorf("%w: project %d already holds %d places", domain.ErrPlaceLimit, projectID, count)
	}

	exists, err := s.places.ExistsArtwork(ctx, projectID, artworkID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: artwork %d", domain.ErrDuplicateArtwork, artworkID)
	}

	art, err := s.catalog.Lookup(ctx, artworkID)
	if err != nil {
		// Not-found and transient lookup failures both reject the place:
		// an artwork that cannot be confirmed is never persisted.
		logger.LogWarnf("add_place", "artwork %d rejected: %v", artworkID, err)
		return nil, fmt.Errorf("%w: artwork %d", domain.ErrInvalidArtwork, artworkID)
	}

	place, err := s.places.Create(ctx, projectID, artworkID, art.Title, art.ImageID, notes)
	if err != nil {
		return nil, err
	}

	if _, err := s.recompute(ctx, projectID); err != nil {
		return nil, err
	}

	logger.LogInfof("add_place", "project=%d artwork=%d place=%d", projectID, artworkID, place.ID)
	return place, nil
}

// Get returns one place of a project.
func (s *PlaceService) Get(ctx context.Context, projectID, placeID int64) (*domain.Place, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.places.Get(ctx, projectID, placeID)
}

// List returns all places of a project.
func (s *PlaceService) List(ctx context.Context, projectID int64) ([]domain.Place, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.places.ListByProject(ctx, projectID)
}

// Update applies a partial notes/visited update and recomputes the owning
// project's completion over the full current place set. Artwork identity and
// catalog metadata are immutable here; callers never get to submit them.
func (s *PlaceService) Update(ctx context.Context, projectID, placeID int64, req domain.UpdatePlaceRequest) (*domain.Place, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	place, err := s.places.Update(ctx, projectID, placeID, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.recompute(ctx, projectID); err != nil {
		return nil, err
	}

	return place, nil
}

// Delete removes a place and recomputes completion over the remaining set.
// Deleting the last place leaves the project not completed.
func (s *PlaceService) Delete(ctx context.Context, projectID, placeID int64) error {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return err
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	deleted, err := s.places.Delete(ctx, projectID, placeID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPlaceNotFound
	}

	_, err = s.recompute(ctx, projectID)
	return err
}

// recompute re-runs the completion evaluator over the project's current
// places and persists the result. Callers hold the project lock.
func (s *PlaceService) recompute(ctx context.Context, projectID int64) (bool, error) {
	places, err := s.places.ListByProject(ctx, projectID)
	if err != nil {
		return false, err
	}
	completed := EvaluateCompletion(places)
	if err := s.projects.SetCompleted(ctx, projectID, completed); err != nil {
		return false, err
	}
	return completed, nil
}
