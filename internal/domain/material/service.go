package material

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uvalc/uvalc/internal/domain/activity"
	"github.com/uvalc/uvalc/internal/repository"
)

// Service handles material source operations.
type Service struct {
	repo     SourceRepository
	activity ActivityLog
	logger   *slog.Logger
	cache    Cache
}

// NewService creates a new material service.
func NewService(repo SourceRepository, activityLog ActivityLog, logger *slog.Logger) *Service {
	return &Service{repo: repo, activity: activityLog, logger: logger}
}

// LoadRequest defines source upload inputs.
type LoadRequest struct {
	ID   string
	Name string
	Raw  []byte
}

// Load resolves a raw catalog into the canonical schema and persists the
// bytes. Resolution itself never fails; an unparseable catalog simply stores
// with zero records.
func (s *Service) Load(ctx context.Context, req LoadRequest) (*Source, Table, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, Table{}, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	table := s.cache.Resolve(req.Raw)
	src := &Source{
		ID:          id,
		Name:        req.Name,
		Raw:         req.Raw,
		RecordCount: table.Len(),
		LoadedAt:    time.Now(),
	}

	if err := s.repo.Save(ctx, src); err != nil {
		return nil, Table{}, fmt.Errorf("saving material source: %w", err)
	}

	s.log(ctx, activity.TypeMaterialsLoaded, src.ID,
		fmt.Sprintf("loaded catalog %q with %d materials", src.Name, src.RecordCount))
	return src, table, nil
}

// Get fetches a source by ID.
func (s *Service) Get(ctx context.Context, id string) (*Source, error) {
	src, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSourceNotFound
		}
		return nil, fmt.Errorf("getting material source: %w", err)
	}
	return src, nil
}

// Table returns the resolved table for a stored source.
func (s *Service) Table(ctx context.Context, id string) (Table, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return Table{}, err
	}
	return s.cache.Resolve(src.Raw), nil
}

// List returns source summaries.
func (s *Service) List(ctx context.Context) ([]SourceInfo, error) {
	return s.repo.List(ctx)
}

// Delete removes a stored source.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSourceNotFound
		}
		return fmt.Errorf("deleting material source: %w", err)
	}
	s.log(ctx, activity.TypeMaterialsDeleted, id, "deleted material catalog")
	return nil
}

// log records an activity entry best-effort; persistence of the catalog
// itself never depends on the audit trail.
func (s *Service) log(ctx context.Context, typ activity.Type, subject, summary string) {
	if s.activity == nil {
		return
	}
	entry := &activity.Entry{Type: typ, Subject: subject, Summary: summary, CreatedAt: time.Now()}
	if err := s.activity.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "type", typ, "error", err)
	}
}
