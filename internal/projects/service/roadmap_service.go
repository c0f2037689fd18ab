package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/planner"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/repository"
)

// changeSummary is the fixed audit text recorded per save. The history is a
// save log, not a field-level diff.
const changeSummary = "Updated the project roadmap."

// PlannerClient is the capability the roadmap service needs from the
// text-generation backend. Tests substitute a stub; production wires
// planner.Client.
type PlannerClient interface {
	Generate(ctx context.Context, req planner.GenerateRequest) (*planner.GenerateResponse, error)
}

// RoadmapService owns roadmap generation and editing for project documents.
type RoadmapService struct {
	repo    *repository.ProjectRepository
	planner PlannerClient
}

// NewRoadmapService creates a new roadmap service.
func NewRoadmapService(repo *repository.ProjectRepository, planner PlannerClient) *RoadmapService {
	return &RoadmapService{
		repo:    repo,
		planner: planner,
	}
}

// GenerateRoadmap asks the planner for a fresh roadmap built from the
// project's description and dates, then validates and coerces the reply.
// Nothing is persisted here; the stored roadmap stays untouched until the
// caller explicitly saves, so a rejected generation has no side effects.
func (s *RoadmapService) GenerateRoadmap(ctx context.Context, projectID string) ([]domain.Phase, error) {
	logger := NewLogger(ctx)

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, fmt.Errorf("%w: project has no description", domain.ErrInvalidGenerationResult)
	}

	resp, err := s.planner.Generate(ctx, planner.GenerateRequest{
		ProjectDescription: p.Description,
		StartDate:          p.StartDate.Format(time.RFC3339),
		Deadline:           p.Deadline.Format(time.RFC3339),
	})
	if err != nil {
		logger.LogError("generate_roadmap", err)
		return nil, fmt.Errorf("planner generate: %w", err)
	}

	phases, err := BuildRoadmap(resp.Roadmap)
	if err != nil {
		logger.LogError("generate_roadmap", err)
		return nil, err
	}

	logger.LogInfof("generate_roadmap", "project_id=%s phases=%d", projectID, len(phases))
	return phases, nil
}

// ReplaceRoadmap persists phases as the project's entire roadmap, discarding
// whatever was stored before, and appends one history entry for the save.
// This is the save step that follows generation or a full client-side edit.
func (s *RoadmapService) ReplaceRoadmap(ctx context.Context, projectID string, phases []domain.Phase, editor string) (*domain.Project, error) {
	if err := validateRoadmap(phases); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	history := appendHistoryEntry(p.EditHistory, editor)
	return s.repo.SaveRoadmap(ctx, projectID, phases, history)
}

// EditRoadmap applies a batch of targeted milestone edits and persists the
// result. The batch is atomic: a single bad edit rejects the whole save,
// leaving the stored roadmap and history unchanged. Exactly one history
// entry is appended per successful save, however many milestones it touched.
func (s *RoadmapService) EditRoadmap(ctx context.Context, projectID string, edits []MilestoneEdit, editor string) (*domain.Project, error) {
	if len(edits) == 0 {
		return nil, fmt.Errorf("%w: no edits given", domain.ErrInvalidFieldValue)
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	next, err := ApplyMilestoneEdits(p.Roadmap, edits)
	if err != nil {
		return nil, err
	}

	history := appendHistoryEntry(p.EditHistory, editor)
	return s.repo.SaveRoadmap(ctx, projectID, next, history)
}

// History returns the project's edit history, newest entry first.
func (s *RoadmapService) History(ctx context.Context, projectID string) ([]domain.EditHistoryEntry, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EditHistoryEntry, len(p.EditHistory))
	for i, e := range p.EditHistory {
		out[len(p.EditHistory)-1-i] = e
	}
	return out, nil
}

// appendHistoryEntry copies the history and appends one entry, so callers
// holding the old slice never see it grow under them.
func appendHistoryEntry(history []domain.EditHistoryEntry, editor string) []domain.EditHistoryEntry {
	if strings.TrimSpace(editor) == "" {
		editor = "Unknown"
	}
	out := make([]domain.EditHistoryEntry, len(history), len(history)+1)
	copy(out, history)
	return append(out, domain.EditHistoryEntry{
		Timestamp: time.Now().UTC(),
		Editor:    editor,
		Change:    changeSummary,
	})
}
