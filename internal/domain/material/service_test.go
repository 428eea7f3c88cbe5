package material_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/repository"
	"github.com/uvalc/uvalc/internal/repository/mocks"
)

func TestMaterialService_LoadValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MaterialSourceRepository{}
	svc := material.NewService(repo, nil, nil)

	_, _, err := svc.Load(ctx, material.LoadRequest{Name: "  "})
	require.ErrorIs(t, err, material.ErrInvalidInput)
}

func TestMaterialService_Load(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MaterialSourceRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := material.NewService(repo, nil, nil)
	src, table, err := svc.Load(ctx, material.LoadRequest{
		Name: "catalog",
		Raw:  []byte("name,lambda\npine,0.12\noak,0.16\n"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, src.ID)
	require.Equal(t, "catalog", src.Name)
	require.Equal(t, 2, src.RecordCount)
	require.Equal(t, 2, table.Len())
	repo.AssertExpectations(t)
}

func TestMaterialService_LoadUnparseableStoresEmpty(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MaterialSourceRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := material.NewService(repo, nil, nil)
	src, table, err := svc.Load(ctx, material.LoadRequest{
		Name: "broken",
		Raw:  []byte{0xFF, 0xFE, 0x81},
	})
	require.NoError(t, err)
	require.Equal(t, 0, src.RecordCount)
	require.Equal(t, 0, table.Len())
}

func TestMaterialService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MaterialSourceRepository{}
	repo.On("Get", ctx, "missing").Return((*material.Source)(nil), repository.ErrNotFound)

	svc := material.NewService(repo, nil, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, material.ErrSourceNotFound)
}

func TestMaterialService_Table(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MaterialSourceRepository{}
	repo.On("Get", ctx, "s1").Return(&material.Source{
		ID:   "s1",
		Name: "catalog",
		Raw:  []byte("name,lambda\npine,0.12\n"),
	}, nil)

	svc := material.NewService(repo, nil, nil)
	table, err := svc.Table(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	require.Equal(t, "pine", table.Records()[0].Name)
}

func TestMaterialService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MaterialSourceRepository{}
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := material.NewService(repo, nil, nil)
	err := svc.Delete(ctx, "missing")
	require.ErrorIs(t, err, material.ErrSourceNotFound)
}
