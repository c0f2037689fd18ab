package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
)

const (
	projectKeyPrefix  = "project:doc:"   // Project document as a JSON blob: project:doc:{project_id}
	ownerSetKeyPrefix = "project:owner:" // Set of project IDs per owner: project:owner:{firebase_uid}
)

// ProjectRepository stores project documents in Redis. The whole document
// (roadmap and edit history included) lives in a single JSON blob, mirroring
// the array-of-objects shape the frontend consumes.
type ProjectRepository struct {
	client *redis.Client
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(client *redis.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// Create inserts a new project document and indexes it under its owner.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if p.OwnerUID == "" {
		return fmt.Errorf("owner uid required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StatusPlanning
	}
	if p.Roadmap == nil {
		p.Roadmap = []domain.Phase{}
	}
	if p.EditHistory == nil {
		p.EditHistory = []domain.EditHistoryEntry{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.projectKey(p.ID), data, 0)
	pipe.SAdd(ctx, r.ownerSetKey(p.OwnerUID), p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// GetByID retrieves a project document by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(projectID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal project: %w", err)
	}
	return &p, nil
}

// ListByOwner returns all project documents owned by the given user.
// Index entries whose document has gone missing are skipped.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerUID string) ([]domain.Project, error) {
	ids, err := r.client.SMembers(ctx, r.ownerSetKey(ownerUID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list project ids: %w", err)
	}

	out := make([]domain.Project, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if errors.Is(err, domain.ErrProjectNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// UpdateProjectRequest carries the optional fields an update may touch.
// Roadmap and edit history are deliberately excluded; those only change
// through SaveRoadmap.
type UpdateProjectRequest struct {
	Name           *string
	ClientName     *string
	Description    *string
	Status         *string
	Progress       *int
	Location       *string
	StartDate      *time.Time
	Deadline       *time.Time
	Budget         *float64
	Tags           []string
	RequiredSkills []string
}

// Update applies the set fields of req to the stored document.
func (r *ProjectRepository) Update(ctx context.Context, projectID string, req UpdateProjectRequest) (*domain.Project, error) {
	p, err := r.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Progress != nil {
		p.Progress = *req.Progress
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.Deadline != nil {
		p.Deadline = *req.Deadline
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.Tags != nil {
		p.Tags = req.Tags
	}
	if req.RequiredSkills != nil {
		p.RequiredSkills = req.RequiredSkills
	}

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveRoadmap rewrites only the roadmap and edit history fields of the
// stored document. Everything else on the project is left as-is.
func (r *ProjectRepository) SaveRoadmap(ctx context.Context, projectID string, roadmap []domain.Phase, history []domain.EditHistoryEntry) (*domain.Project, error) {
	p, err := r.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	p.Roadmap = roadmap
	p.EditHistory = history
	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project document and its owner-set entry.
func (r *ProjectRepository) Delete(ctx context.Context, ownerUID, projectID string) (bool, error) {
	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, r.projectKey(projectID))
	pipe.SRem(ctx, r.ownerSetKey(ownerUID), projectID)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return delCmd.Val() > 0, nil
}

func (r *ProjectRepository) save(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := r.client.Set(ctx, r.projectKey(p.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) projectKey(projectID string) string {
	return projectKeyPrefix + projectID
}

func (r *ProjectRepository) ownerSetKey(ownerUID string) string {
	return ownerSetKeyPrefix + ownerUID
}
