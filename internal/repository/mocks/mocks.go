package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/uvalc/uvalc/internal/domain/activity"
	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/domain/project"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Save(ctx context.Context, proj *project.SavedProject) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.SavedProject, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.SavedProject); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MaterialSourceRepository is a mock for material.SourceRepository.
type MaterialSourceRepository struct {
	mock.Mock
}

func (m *MaterialSourceRepository) Save(ctx context.Context, src *material.Source) error {
	args := m.Called(ctx, src)
	return args.Error(0)
}

func (m *MaterialSourceRepository) Get(ctx context.Context, id string) (*material.Source, error) {
	args := m.Called(ctx, id)
	if src, ok := args.Get(0).(*material.Source); ok {
		return src, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MaterialSourceRepository) List(ctx context.Context) ([]material.SourceInfo, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]material.SourceInfo); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MaterialSourceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
