package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/planner"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/repository"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/service"
)

// stubPlanner implements service.PlannerClient for tests.
type stubPlanner struct {
	resp  *planner.GenerateResponse
	err   error
	calls int
}

func (s *stubPlanner) Generate(ctx context.Context, req planner.GenerateRequest) (*planner.GenerateResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func generatedPayload(prefix string) []planner.PhasePayload {
	return []planner.PhasePayload{
		{
			ID: "p1", Name: prefix + " Planning", Description: "Scoping",
			Milestones: []planner.MilestonePayload{
				{ID: "m1", Name: prefix + " survey", Status: "Pending"},
				{ID: "m2", Name: prefix + " permits", Status: "Pending"},
			},
		},
		{
			ID: "p2", Name: prefix + " Construction", Description: "Build",
			Milestones: []planner.MilestonePayload{
				{ID: "m3", Name: prefix + " foundation", Status: "Pending"},
			},
		},
	}
}

func setupRoadmapService(t *testing.T, stub *stubPlanner) (*service.RoadmapService, *repository.ProjectRepository, string) {
	repo := repository.NewProjectRepository(setupTestRedis(t))
	svc := service.NewRoadmapService(repo, stub)

	p := newTestProject("user-1")
	require.NoError(t, repo.Create(context.Background(), p))
	return svc, repo, p.ID
}

func TestRoadmapFlow_GenerateDoesNotPersist(t *testing.T) {
	stub := &stubPlanner{resp: &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Office")}}
	svc, repo, projectID := setupRoadmapService(t, stub)
	ctx := context.Background()

	phases, err := svc.GenerateRoadmap(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, 1, stub.calls)

	// Generation alone leaves the stored document untouched.
	stored, err := repo.GetByID(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, stored.Roadmap)
	assert.Empty(t, stored.EditHistory)
}

func TestRoadmapFlow_SaveThenEdit(t *testing.T) {
	stub := &stubPlanner{resp: &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Office")}}
	svc, _, projectID := setupRoadmapService(t, stub)
	ctx := context.Background()

	phases, err := svc.GenerateRoadmap(ctx, projectID)
	require.NoError(t, err)

	saved, err := svc.ReplaceRoadmap(ctx, projectID, phases, "Demo User")
	require.NoError(t, err)
	require.Len(t, saved.EditHistory, 1)
	assert.Equal(t, "Demo User", saved.EditHistory[0].Editor)
	assert.Equal(t, "Updated the project roadmap.", saved.EditHistory[0].Change)

	// A batch touching two milestones still appends exactly one entry.
	edited, err := svc.EditRoadmap(ctx, projectID, []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldStatus, Value: domain.MilestoneCompleted},
		{PhaseID: "p1", MilestoneID: "m2", Field: service.FieldStatus, Value: domain.MilestoneInProgress},
	}, "Demo User")
	require.NoError(t, err)
	require.Len(t, edited.EditHistory, 2)
	assert.Equal(t, domain.MilestoneCompleted, edited.Roadmap[0].Milestones[0].Status)
	assert.Equal(t, domain.MilestoneInProgress, edited.Roadmap[0].Milestones[1].Status)
}

func TestRoadmapFlow_RejectedEditLeavesEverythingUnchanged(t *testing.T) {
	stub := &stubPlanner{resp: &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Office")}}
	svc, repo, projectID := setupRoadmapService(t, stub)
	ctx := context.Background()

	phases, err := svc.GenerateRoadmap(ctx, projectID)
	require.NoError(t, err)
	_, err = svc.ReplaceRoadmap(ctx, projectID, phases, "Demo User")
	require.NoError(t, err)

	before, err := repo.GetByID(ctx, projectID)
	require.NoError(t, err)

	_, err = svc.EditRoadmap(ctx, projectID, []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldName, Value: "Renamed"},
		{PhaseID: "p1", MilestoneID: "m2", Field: service.FieldStatus, Value: "Archived"},
	}, "Demo User")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFieldValue))

	after, err := repo.GetByID(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, before.Roadmap, after.Roadmap, "failed save must not mutate the roadmap")
	assert.Equal(t, before.EditHistory, after.EditHistory, "failed save must not append history")
}

func TestRoadmapFlow_HistoryGrowsOncePerSave(t *testing.T) {
	stub := &stubPlanner{resp: &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Office")}}
	svc, _, projectID := setupRoadmapService(t, stub)
	ctx := context.Background()

	phases, err := svc.GenerateRoadmap(ctx, projectID)
	require.NoError(t, err)
	_, err = svc.ReplaceRoadmap(ctx, projectID, phases, "Demo User")
	require.NoError(t, err)

	saves := 1
	for _, status := range []string{domain.MilestoneInProgress, domain.MilestoneCompleted} {
		_, err = svc.EditRoadmap(ctx, projectID, []service.MilestoneEdit{
			{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldStatus, Value: status},
		}, "Demo User")
		require.NoError(t, err)
		saves++
	}

	history, err := svc.History(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, history, saves)
	// Newest first, as the UI renders it.
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i-1].Timestamp.Before(history[i].Timestamp))
	}
}

func TestRoadmapFlow_RegenerationReplacesEverything(t *testing.T) {
	stub := &stubPlanner{resp: &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Office")}}
	svc, _, projectID := setupRoadmapService(t, stub)
	ctx := context.Background()

	phases, err := svc.GenerateRoadmap(ctx, projectID)
	require.NoError(t, err)
	_, err = svc.ReplaceRoadmap(ctx, projectID, phases, "Demo User")
	require.NoError(t, err)

	// Complete a milestone, then regenerate.
	_, err = svc.EditRoadmap(ctx, projectID, []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldStatus, Value: domain.MilestoneCompleted},
	}, "Demo User")
	require.NoError(t, err)

	stub.resp = &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Warehouse")}
	regenerated, err := svc.GenerateRoadmap(ctx, projectID)
	require.NoError(t, err)
	saved, err := svc.ReplaceRoadmap(ctx, projectID, regenerated, "Demo User")
	require.NoError(t, err)

	// Nothing from the old roadmap survives; every milestone is Pending again.
	for _, p := range saved.Roadmap {
		assert.Contains(t, p.Name, "Warehouse")
		for _, m := range p.Milestones {
			assert.Equal(t, domain.MilestonePending, m.Status)
		}
	}
}

func TestRoadmapFlow_GenerateRequiresDescription(t *testing.T) {
	stub := &stubPlanner{resp: &planner.GenerateResponse{OK: true, Roadmap: generatedPayload("Office")}}
	repo := repository.NewProjectRepository(setupTestRedis(t))
	svc := service.NewRoadmapService(repo, stub)
	ctx := context.Background()

	p := newTestProject("user-1")
	p.Description = "   "
	require.NoError(t, repo.Create(ctx, p))

	_, err := svc.GenerateRoadmap(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidGenerationResult))
	assert.Equal(t, 0, stub.calls, "the planner must not be called without a description")
}

func TestRoadmapFlow_PlannerFailureIsTerminal(t *testing.T) {
	stub := &stubPlanner{err: errors.New("connection refused")}
	svc, repo, projectID := setupRoadmapService(t, stub)
	ctx := context.Background()

	_, err := svc.GenerateRoadmap(ctx, projectID)
	require.Error(t, err)
	assert.Equal(t, 1, stub.calls, "no automatic retry")

	stored, err := repo.GetByID(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, stored.Roadmap)
}
