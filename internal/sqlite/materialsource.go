package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/repository"
)

// MaterialSourceRepository implements material.SourceRepository for SQLite
type MaterialSourceRepository struct {
	db *DB
}

// NewMaterialSourceRepository creates a new MaterialSourceRepository
func NewMaterialSourceRepository(db *DB) *MaterialSourceRepository {
	return &MaterialSourceRepository{db: db}
}

// Save inserts or replaces a material source
func (r *MaterialSourceRepository) Save(ctx context.Context, src *material.Source) error {
	query := `
		INSERT INTO material_sources (id, name, raw, record_count, loaded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			raw = excluded.raw,
			record_count = excluded.record_count,
			loaded_at = excluded.loaded_at
	`

	_, err := r.db.ExecContext(ctx, query,
		src.ID,
		src.Name,
		src.Raw,
		src.RecordCount,
		src.LoadedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save material source: %w", err)
	}

	return nil
}

// Get retrieves a material source by ID, including its raw bytes
func (r *MaterialSourceRepository) Get(ctx context.Context, id string) (*material.Source, error) {
	query := `
		SELECT id, name, raw, record_count, loaded_at
		FROM material_sources
		WHERE id = ?
	`

	var src material.Source
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&src.ID,
		&src.Name,
		&src.Raw,
		&src.RecordCount,
		&src.LoadedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get material source: %w", err)
	}

	return &src, nil
}

// List returns all material sources without their raw bytes, newest first
func (r *MaterialSourceRepository) List(ctx context.Context) ([]material.SourceInfo, error) {
	query := `
		SELECT id, name, record_count, loaded_at
		FROM material_sources
		ORDER BY loaded_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list material sources: %w", err)
	}
	defer rows.Close()

	var infos []material.SourceInfo
	for rows.Next() {
		var info material.SourceInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.RecordCount, &info.LoadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan material source: %w", err)
		}
		infos = append(infos, info)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating material source rows: %w", err)
	}

	return infos, nil
}

// Delete removes a material source
func (r *MaterialSourceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM material_sources WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material source: %w", err)
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
