package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uvalc/uvalc/internal/domain/project"
	"github.com/uvalc/uvalc/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Save inserts or updates a saved project. On update the original
// created_at is kept.
func (r *ProjectRepository) Save(ctx context.Context, proj *project.SavedProject) error {
	query := `
		INSERT INTO projects (id, name, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			document = excluded.document,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		string(proj.Document),
		proj.CreatedAt,
		proj.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return nil
}

// Get retrieves a saved project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.SavedProject, error) {
	query := `
		SELECT id, name, document, created_at, updated_at
		FROM projects
		WHERE id = ?
	`

	var proj project.SavedProject
	var document string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Name,
		&document,
		&proj.CreatedAt,
		&proj.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	proj.Document = []byte(document)
	return &proj, nil
}

// List returns all saved projects with summary information, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	query := `
		SELECT id, name, json_array_length(document, '$.layers') AS layer_count, created_at, updated_at
		FROM projects
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		var layerCount sql.NullInt64
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&layerCount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summary.LayerCount = int(layerCount.Int64)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// Delete removes a saved project
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
