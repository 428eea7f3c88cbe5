package project

import (
	"context"

	"github.com/uvalc/uvalc/internal/domain/activity"
)

// Repository persists saved projects.
type Repository interface {
	Save(ctx context.Context, proj *SavedProject) error
	Get(ctx context.Context, id string) (*SavedProject, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id string) error
}

// ActivityLog records project events.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
