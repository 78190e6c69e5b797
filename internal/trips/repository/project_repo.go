package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = "id, name, description, start_date, is_completed, created_at, updated_at"

func scanProject(row interface{ Scan(dest ...any) error }) (*domain.Project, error) {
	var (
		p         domain.Project
		desc      sql.NullString
		startDate sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Name, &desc, &startDate, &p.IsCompleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	if startDate.Valid {
		p.StartDate = &domain.Date{Time: startDate.Time}
	}
	return &p, nil
}

// Create inserts a new project.
func (r *ProjectRepository) Create(ctx context.Context, name string, description *string, startDate *domain.Date) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, description, start_date)
VALUES ($1, $2, $3)
RETURNING ` + projectColumns + `;
`
	var sd any
	if startDate != nil {
		sd = startDate.Time
	}
	p, err := scanProject(r.db.QueryRowContext(ctx, q, name, description, sd))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// Get returns one project by ID.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// orderClause maps the client-facing ordering values onto SQL. Unknown
// values fall back to insertion order.
func orderClause(ordering string) string {
	switch ordering {
	case "name":
		return "name ASC"
	case "-name":
		return "name DESC"
	case "start_date":
		return "start_date ASC NULLS LAST"
	case "-start_date":
		return "start_date DESC NULLS LAST"
	default:
		return "id ASC"
	}
}

// List returns projects, optionally filtered by a case-insensitive search
// over name and description and ordered by name or start_date.
func (r *ProjectRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects`
	args := []any{}
	if opts.Search != "" {
		q += ` WHERE name ILIKE $1 OR description ILIKE $1`
		args = append(args, "%"+opts.Search+"%")
	}
	q += ` ORDER BY ` + orderClause(opts.Ordering) + `;`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update applies a partial update. Nil fields keep their current value; the
// Clear flags null out description and start_date.
func (r *ProjectRepository) Update(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name        = COALESCE($2, name),
    description = CASE WHEN $3 THEN NULL ELSE COALESCE($4, description) END,
    start_date  = CASE WHEN $5 THEN NULL ELSE COALESCE($6, start_date) END,
    updated_at  = now()
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	var sd any
	if req.StartDate != nil {
		sd = req.StartDate.Time
	}
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id, req.Name, req.ClearDescription, req.Description, req.ClearStartDate, sd))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return p, nil
}

// SetCompleted persists the derived completion flag.
func (r *ProjectRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	const q = `UPDATE projects SET is_completed = $2, updated_at = now() WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id, completed)
	if err != nil {
		return fmt.Errorf("set project %d completed: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project. Places cascade at the database level.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM projects WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete project %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
