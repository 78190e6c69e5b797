package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// ProjectsService is the project lifecycle surface consumed by the handlers.
type ProjectsService interface {
	Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, opts domain.ListOptions) ([]domain.Project, error)
	Update(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// PlacesService is the place lifecycle surface consumed by the handlers.
type PlacesService interface {
	Add(ctx context.Context, projectID, artworkID int64, notes string) (*domain.Place, error)
	Get(ctx context.Context, projectID, placeID int64) (*domain.Place, error)
	List(ctx context.Context, projectID int64) ([]domain.Place, error)
	Update(ctx context.Context, projectID, placeID int64, req domain.UpdatePlaceRequest) (*domain.Place, error)
	Delete(ctx context.Context, projectID, placeID int64) error
}

// Handler bundles the dependencies for trip HTTP endpoints.
type Handler struct {
	projects ProjectsService
	places   PlacesService
}

type createProjectReq struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	StartDate   *domain.Date    `json:"start_date"`
	Places      []placeInputReq `json:"places"`
}

type placeInputReq struct {
	ArtworkID int64  `json:"artwork_id"`
	Notes     string `json:"notes"`
}

// optional distinguishes an absent PATCH field from an explicit null: absent
// keeps the stored value, null clears it.
type optional[T any] struct {
	set   bool
	value *T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

type updateProjectReq struct {
	Name        *string               `json:"name"`
	Description optional[string]      `json:"description"`
	StartDate   optional[domain.Date] `json:"start_date"`
}

type createPlaceReq struct {
	ArtworkID *int64 `json:"artwork_id"`
	Notes     string `json:"notes"`
}

// updatePlaceReq only binds the mutable fields; artwork_id, title and
// image_id in the payload are silently ignored.
type updatePlaceReq struct {
	Notes   *string `json:"notes"`
	Visited *bool   `json:"visited"`
}

// respondError maps a service error onto a status code and a machine
// readable kind. Unrecognized errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := "internal"

	switch {
	case errors.Is(err, domain.ErrProjectNotFound), errors.Is(err, domain.ErrPlaceNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		status, kind = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrPlaceLimit):
		status, kind = http.StatusBadRequest, "limit_exceeded"
	case errors.Is(err, domain.ErrDuplicateArtwork):
		status, kind = http.StatusBadRequest, "duplicate_artwork"
	case errors.Is(err, domain.ErrInvalidArtwork):
		status, kind = http.StatusBadRequest, "invalid_artwork"
	case errors.Is(err, domain.ErrVisitedPlaces):
		status, kind = http.StatusBadRequest, "conflict"
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, gin.H{"ok": false, "kind": kind, "error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "kind": "invalid_input", "error": msg})
}
