package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uvalc/uvalc/internal/domain/activity"
	"github.com/uvalc/uvalc/internal/domain/assembly"
	"github.com/uvalc/uvalc/internal/repository"
)

// Service handles saved-project operations.
type Service struct {
	repo     Repository
	activity ActivityLog
	logger   *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, activityLog ActivityLog, logger *slog.Logger) *Service {
	return &Service{repo: repo, activity: activityLog, logger: logger}
}

// SaveRequest defines project save inputs.
type SaveRequest struct {
	ID       string
	Name     string
	Assembly assembly.Assembly
}

// Save serializes the assembly and persists it under the given name,
// creating a new project when no ID is supplied.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*SavedProject, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	doc, err := Serialize(req.Assembly)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	proj := &SavedProject{
		ID:        id,
		Name:      req.Name,
		Document:  doc,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, proj); err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}

	s.log(ctx, activity.TypeProjectSaved, proj.ID,
		fmt.Sprintf("saved project %q with %d layers", proj.Name, len(req.Assembly.Layers)))
	return proj, nil
}

// Get fetches a saved project by ID.
func (s *Service) Get(ctx context.Context, id string) (*SavedProject, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// Load fetches a saved project and deserializes its document.
func (s *Service) Load(ctx context.Context, id string) (assembly.Assembly, error) {
	proj, err := s.Get(ctx, id)
	if err != nil {
		return assembly.Assembly{}, err
	}
	return Deserialize(proj.Document)
}

// List returns project summaries.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Delete removes a saved project.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.log(ctx, activity.TypeProjectDeleted, id, "deleted project")
	return nil
}

func (s *Service) log(ctx context.Context, typ activity.Type, subject, summary string) {
	if s.activity == nil {
		return
	}
	entry := &activity.Entry{Type: typ, Subject: subject, Summary: summary, CreatedAt: time.Now()}
	if err := s.activity.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "type", typ, "error", err)
	}
}
