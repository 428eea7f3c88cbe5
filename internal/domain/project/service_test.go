package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uvalc/uvalc/internal/domain/assembly"
	"github.com/uvalc/uvalc/internal/domain/project"
	"github.com/uvalc/uvalc/internal/repository"
	"github.com/uvalc/uvalc/internal/repository/mocks"
)

func TestProjectService_SaveValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)

	_, err := svc.Save(ctx, project.SaveRequest{Name: ""})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_SaveGeneratesID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Save(ctx, project.SaveRequest{
		Name: "north wall",
		Assembly: assembly.Assembly{
			Rsi: 0.11, Rse: 0.04, BridgeRatio: 0.17,
			Layers: []assembly.Layer{
				{Order: 1, ThicknessMM: 105, Normal: assembly.MaterialRef{Material: "glass wool"}},
			},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "north wall", proj.Name)
	require.NotEmpty(t, proj.Document)
	repo.AssertExpectations(t)
}

func TestProjectService_SaveKeepsGivenID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Save(ctx, project.SaveRequest{ID: "p1", Name: "wall"})
	require.NoError(t, err)
	require.Equal(t, "p1", proj.ID)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "missing").Return((*project.SavedProject)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_LoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	original := assembly.Assembly{
		Rsi: 0.13, Rse: 0.04, BridgeRatio: 0.2,
		Layers: []assembly.Layer{
			{Order: 1, ThicknessMM: 12.5, Normal: assembly.MaterialRef{Category: "board", Material: "plasterboard"}},
		},
	}
	doc, err := project.Serialize(original)
	require.NoError(t, err)

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.SavedProject{ID: "p1", Name: "wall", Document: doc}, nil)

	svc := project.NewService(repo, nil, nil)
	restored, err := svc.Load(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, original, restored)
}

func TestProjectService_LoadMalformedDocument(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.SavedProject{ID: "p1", Document: []byte(`{"Rsi": 0.11}`)}, nil)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Load(ctx, "p1")
	require.ErrorIs(t, err, project.ErrMalformedDocument)
}

func TestProjectService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil, nil)
	err := svc.Delete(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
