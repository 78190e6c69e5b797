package domain

import "time"

// MaxPlacesPerProject caps how many places a single project may hold.
const MaxPlacesPerProject = 10

// Project is a museum trip: a named collection of up to 10 tracked artworks.
// IsCompleted is derived state, recomputed whenever the place set changes,
// and is never writable by clients.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StartDate   *Date     `json:"start_date"`
	IsCompleted bool      `json:"is_completed"`
	Places      []Place   `json:"places,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Place is one artwork tracked within a project. Title and ImageID are
// denormalized from the catalog at creation time and never change afterwards.
type Place struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	ArtworkID int64     `json:"artwork_id"`
	Title     string    `json:"title"`
	ImageID   *string   `json:"image_id"`
	Notes     string    `json:"notes"`
	Visited   bool      `json:"visited"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceInput is one inline place entry on project creation.
type PlaceInput struct {
	ArtworkID int64
	Notes     string
}

// CreateProjectRequest carries the data needed to create a project,
// optionally with an initial batch of places.
type CreateProjectRequest struct {
	Name        string
	Description *string
	StartDate   *Date
	Places      []PlaceInput
}

// UpdateProjectRequest carries a partial update. Nil fields are left as-is;
// the Clear flags null out the nullable columns when the client sends an
// explicit null.
type UpdateProjectRequest struct {
	Name             *string
	Description      *string
	ClearDescription bool
	StartDate        *Date
	ClearStartDate   bool
}

// UpdatePlaceRequest carries a partial place update; nil fields are left
// as-is. Artwork identity and catalog metadata are not updatable.
type UpdatePlaceRequest struct {
	Notes   *string
	Visited *bool
}

// ListOptions holds the list conveniences for projects.
type ListOptions struct {
	Search   string // case-insensitive substring over name/description
	Ordering string // "name", "start_date", "-name", "-start_date"
}
