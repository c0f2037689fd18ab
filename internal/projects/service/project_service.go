package service

import (
	"context"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/repository"
)

// ProjectService handles project CRUD business logic.
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service.
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Create creates a new project document.
func (s *ProjectService) Create(ctx context.Context, p *domain.Project) error {
	return s.repo.Create(ctx, p)
}

// Get returns one project by ID.
func (s *ProjectService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, projectID)
}

// List returns all projects for an owner.
func (s *ProjectService) List(ctx context.Context, ownerUID string) ([]domain.Project, error) {
	return s.repo.ListByOwner(ctx, ownerUID)
}

// Update applies a partial update to a project.
func (s *ProjectService) Update(ctx context.Context, projectID string, req repository.UpdateProjectRequest) (*domain.Project, error) {
	return s.repo.Update(ctx, projectID, req)
}

// Delete removes a project document.
func (s *ProjectService) Delete(ctx context.Context, ownerUID, projectID string) (bool, error) {
	return s.repo.Delete(ctx, ownerUID, projectID)
}
