package service

import (
	"context"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/artwork"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// ProjectStore is the persistence boundary for projects, implemented by
// repository.ProjectRepository.
type ProjectStore interface {
	Create(ctx context.Context, name string, description *string, startDate *domain.Date) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, opts domain.ListOptions) ([]domain.Project, error)
	Update(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error)
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// PlaceStore is the persistence boundary for places, implemented by
// repository.PlaceRepository.
type PlaceStore interface {
	Create(ctx context.Context, projectID, artworkID int64, title string, imageID *string, notes string) (*domain.Place, error)
	Get(ctx context.Context, projectID, placeID int64) (*domain.Place, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Place, error)
	CountByProject(ctx context.Context, projectID int64) (int, error)
	ExistsArtwork(ctx context.Context, projectID, artworkID int64) (bool, error)
	HasVisited(ctx context.Context, projectID int64) (bool, error)
	Update(ctx context.Context, projectID, placeID int64, req domain.UpdatePlaceRequest) (*domain.Place, error)
	Delete(ctx context.Context, projectID, placeID int64) (bool, error)
}

// ArtworkLookup validates artwork IDs against the catalog, implemented by
// artwork.Cache. It is the only path to the external catalog.
type ArtworkLookup interface {
	Lookup(ctx context.Context, artworkID int64) (*artwork.Artwork, error)
}
