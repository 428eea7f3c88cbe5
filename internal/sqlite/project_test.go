package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uvalc/uvalc/internal/domain/assembly"
	"github.com/uvalc/uvalc/internal/domain/project"
	"github.com/uvalc/uvalc/internal/repository"
)

var _ project.Repository = (*ProjectRepository)(nil)

func testDocument(t *testing.T, layerCount int) []byte {
	t.Helper()

	a := assembly.Assembly{Rsi: 0.11, Rse: 0.04, BridgeRatio: 0.17}
	for i := 0; i < layerCount; i++ {
		a.Layers = append(a.Layers, assembly.Layer{
			Order:       i + 1,
			ThicknessMM: 10,
			Normal:      assembly.MaterialRef{Material: "plasterboard"},
		})
	}
	doc, err := project.Serialize(a)
	require.NoError(t, err)
	return doc
}

func TestProjectRepository_SaveAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	now := time.Now()
	proj := &project.SavedProject{
		ID:        "p1",
		Name:      "north wall",
		Document:  testDocument(t, 2),
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.Save(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj.ID, retrieved.ID)
	require.Equal(t, proj.Name, retrieved.Name)
	require.Equal(t, proj.Document, retrieved.Document)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_UpsertKeepsCreatedAt(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	created := time.Now().Add(-time.Hour)
	proj := &project.SavedProject{
		ID:        "p1",
		Name:      "wall",
		Document:  testDocument(t, 1),
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, repo.Save(ctx, proj))

	// Save again under the same ID with a new name and timestamp.
	updated := time.Now()
	proj.Name = "wall v2"
	proj.Document = testDocument(t, 3)
	proj.CreatedAt = updated
	proj.UpdatedAt = updated
	require.NoError(t, repo.Save(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "wall v2", retrieved.Name)
	require.True(t, retrieved.CreatedAt.Before(retrieved.UpdatedAt))
}

func TestProjectRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	older := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Save(ctx, &project.SavedProject{
		ID: "p1", Name: "first", Document: testDocument(t, 2),
		CreatedAt: older, UpdatedAt: older,
	}))

	newer := time.Now()
	require.NoError(t, repo.Save(ctx, &project.SavedProject{
		ID: "p2", Name: "second", Document: testDocument(t, 3),
		CreatedAt: newer, UpdatedAt: newer,
	}))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Ordered by updated_at DESC (newest first)
	require.Equal(t, "p2", summaries[0].ID)
	require.Equal(t, "p1", summaries[1].ID)

	// Layer counts come from the stored document.
	require.Equal(t, 3, summaries[0].LayerCount)
	require.Equal(t, 2, summaries[1].LayerCount)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Save(ctx, &project.SavedProject{
		ID: "p1", Name: "wall", Document: testDocument(t, 1),
		CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err := repo.Get(ctx, "p1")
	require.Equal(t, repository.ErrNotFound, err)

	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, "p1"))
}
