package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/artwork"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// ProjectService orchestrates project creation (optionally with an initial
// batch of places) and deletion (blocked while any place is visited).
type ProjectService struct {
	projects ProjectStore
	places   PlaceStore
	catalog  ArtworkLookup
	locks    *ProjectLocks
}

// NewProjectService creates a new project service.
func NewProjectService(projects ProjectStore, places PlaceStore, catalog ArtworkLookup, locks *ProjectLocks) *ProjectService {
	return &ProjectService{
		projects: projects,
		places:   places,
		catalog:  catalog,
		locks:    locks,
	}
}

// Create creates a project, optionally with inline places. The request is
// rejected as a whole when the name is empty, more than 10 places are given,
// the batch repeats an artwork, or any artwork fails catalog validation;
// nothing is persisted on rejection.
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	logger := NewLogger(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if len(req.Places) > domain.MaxPlacesPerProject {
		return nil, fmt.Errorf("%w: at most %d places per project", domain.ErrPlaceLimit, domain.MaxPlacesPerProject)
	}

	seen := make(map[int64]bool, len(req.Places))
	for _, in := range req.Places {
		if in.ArtworkID <= 0 {
			return nil, fmt.Errorf("%w: artwork_id is required for every place", domain.ErrInvalidInput)
		}
		if seen[in.ArtworkID] {
			return nil, fmt.Errorf("%w: artwork %d appears twice", domain.ErrDuplicateArtwork, in.ArtworkID)
		}
		seen[in.ArtworkID] = true
	}

	// Validate every artwork before any persistence so a failed lookup
	// rejects the whole creation instead of leaving a partial project.
	fetched := make(map[int64]*artwork.Artwork, len(req.Places))
	for _, in := range req.Places {
		art, err := s.catalog.Lookup(ctx, in.ArtworkID)
		if err != nil {
			logger.LogWarnf("create_project", "artwork %d rejected: %v", in.ArtworkID, err)
			return nil, fmt.Errorf("%w: artwork %d", domain.ErrInvalidArtwork, in.ArtworkID)
		}
		fetched[in.ArtworkID] = art
	}

	project, err := s.projects.Create(ctx, strings.TrimSpace(req.Name), req.Description, req.StartDate)
	if err != nil {
		return nil, err
	}

	// The new project is locked for the rest of the batch so a concurrent
	// Add cannot interleave, and a mid-batch failure rolls the whole
	// project back. Callers never observe a partially created project.
	unlock := s.locks.Lock(project.ID)
	defer unlock()

	for _, in := range req.Places {
		art := fetched[in.ArtworkID]
		place, err := s.places.Create(ctx, project.ID, in.ArtworkID, art.Title, art.ImageID, in.Notes)
		if err != nil {
			if _, delErr := s.projects.Delete(ctx, project.ID); delErr != nil {
				logger.LogError("create_project_rollback", delErr)
			}
			return nil, err
		}
		project.Places = append(project.Places, *place)
	}

	// New places are never visited, so this always persists false; running
	// the evaluator keeps the derived flag honest anyway.
	if len(project.Places) > 0 {
		project.IsCompleted = EvaluateCompletion(project.Places)
		if err := s.projects.SetCompleted(ctx, project.ID, project.IsCompleted); err != nil {
			return nil, err
		}
	}

	logger.LogInfof("create_project", "project=%d places=%d", project.ID, len(project.Places))
	return project, nil
}

// Get returns a project with its places embedded.
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	places, err := s.places.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Places = places
	return project, nil
}

// List returns projects matching the list options, each with its places.
func (s *ProjectService) List(ctx context.Context, opts domain.ListOptions) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		places, err := s.places.ListByProject(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Places = places
	}
	return projects, nil
}

// Update applies a partial update to name/description/start_date. The
// completion flag is derived state and not updatable here.
func (s *ProjectService) Update(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}

	project, err := s.projects.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	places, err := s.places.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Places = places
	return project, nil
}

// Delete removes a project and cascades its places, unless any place is
// marked visited.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	visited, err := s.places.HasVisited(ctx, id)
	if err != nil {
		return err
	}
	if visited {
		return fmt.Errorf("%w: cannot delete project %d", domain.ErrVisitedPlaces, id)
	}

	deleted, err := s.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProjectNotFound
	}
	return nil
}
