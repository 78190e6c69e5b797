package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// PlaceRepository provides persistence operations for places. Every query is
// scoped to the owning project.
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new place repository.
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

const placeColumns = "id, project_id, artwork_id, title, image_id, notes, visited, created_at, updated_at"

func scanPlace(row interface{ Scan(dest ...any) error }) (*domain.Place, error) {
	var (
		p       domain.Place
		imageID sql.NullString
	)
	err := row.Scan(&p.ID, &p.ProjectID, &p.ArtworkID, &p.Title, &imageID, &p.Notes, &p.Visited, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if imageID.Valid {
		p.ImageID = &imageID.String
	}
	return &p, nil
}

// Create inserts a new place. A unique violation on (project_id, artwork_id)
// maps to ErrDuplicateArtwork; the service-level project lock should make
// that unreachable, the constraint is the backstop.
func (r *PlaceRepository) Create(ctx context.Context, projectID, artworkID int64, title string, imageID *string, notes string) (*domain.Place, error) {
	const q = `
INSERT INTO places (project_id, artwork_id, title, image_id, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + placeColumns + `;
`
	p, err := scanPlace(r.db.QueryRowContext(ctx, q, projectID, artworkID, title, imageID, notes))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateArtwork
		}
		return nil, fmt.Errorf("create place: %w", err)
	}
	return p, nil
}

// Get returns one place, scoped to its project.
func (r *PlaceRepository) Get(ctx context.Context, projectID, placeID int64) (*domain.Place, error) {
	const q = `SELECT ` + placeColumns + ` FROM places WHERE id = $1 AND project_id = $2;`

	p, err := scanPlace(r.db.QueryRowContext(ctx, q, placeID, projectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("get place %d: %w", placeID, err)
	}
	return p, nil
}

// ListByProject returns all places of a project in insertion order.
func (r *PlaceRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Place, error) {
	const q = `SELECT ` + placeColumns + ` FROM places WHERE project_id = $1 ORDER BY id ASC;`

	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("list places for project %d: %w", projectID, err)
	}
	defer rows.Close()

	out := make([]domain.Place, 0, domain.MaxPlacesPerProject)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// CountByProject returns the number of places in a project.
func (r *PlaceRepository) CountByProject(ctx context.Context, projectID int64) (int, error) {
	const q = `SELECT count(*) FROM places WHERE project_id = $1;`

	var n int
	if err := r.db.QueryRowContext(ctx, q, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count places for project %d: %w", projectID, err)
	}
	return n, nil
}

// ExistsArtwork reports whether the project already tracks this artwork.
func (r *PlaceRepository) ExistsArtwork(ctx context.Context, projectID, artworkID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM places WHERE project_id = $1 AND artwork_id = $2);`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, projectID, artworkID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check artwork %d in project %d: %w", artworkID, projectID, err)
	}
	return exists, nil
}

// HasVisited reports whether any place of the project is marked visited.
func (r *PlaceRepository) HasVisited(ctx context.Context, projectID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM places WHERE project_id = $1 AND visited);`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, projectID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check visited places for project %d: %w", projectID, err)
	}
	return exists, nil
}

// Update applies a partial update to notes/visited. Nil fields keep their
// current value.
func (r *PlaceRepository) Update(ctx context.Context, projectID, placeID int64, req domain.UpdatePlaceRequest) (*domain.Place, error) {
	const q = `
UPDATE places
SET notes      = COALESCE($3, notes),
    visited    = COALESCE($4, visited),
    updated_at = now()
WHERE id = $1 AND project_id = $2
RETURNING ` + placeColumns + `;
`
	p, err := scanPlace(r.db.QueryRowContext(ctx, q, placeID, projectID, req.Notes, req.Visited))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("update place %d: %w", placeID, err)
	}
	return p, nil
}

// Delete removes one place from a project.
func (r *PlaceRepository) Delete(ctx context.Context, projectID, placeID int64) (bool, error) {
	const q = `DELETE FROM places WHERE id = $1 AND project_id = $2;`

	res, err := r.db.ExecContext(ctx, q, placeID, projectID)
	if err != nil {
		return false, fmt.Errorf("delete place %d: %w", placeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DistinctArtworkIDs returns every artwork ID referenced by at least one
// place, for the cache refresh job.
func (r *PlaceRepository) DistinctArtworkIDs(ctx context.Context) ([]int64, error) {
	const q = `SELECT DISTINCT artwork_id FROM places ORDER BY artwork_id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list distinct artworks: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
