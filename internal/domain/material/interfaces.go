package material

import (
	"context"

	"github.com/uvalc/uvalc/internal/domain/activity"
)

// SourceRepository persists uploaded material catalogs.
type SourceRepository interface {
	Save(ctx context.Context, src *Source) error
	Get(ctx context.Context, id string) (*Source, error)
	List(ctx context.Context) ([]SourceInfo, error)
	Delete(ctx context.Context, id string) error
}

// ActivityLog records catalog events.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
