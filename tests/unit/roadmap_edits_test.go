package unit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/service"
)

func sampleRoadmap() []domain.Phase {
	return []domain.Phase{
		{
			ID: "p1", Name: "Planning", Description: "Scoping",
			Milestones: []domain.Milestone{
				{ID: "m1", Name: "Site survey", Description: "Survey the lot", Status: domain.MilestonePending},
				{ID: "m2", Name: "Permit filing", Description: "File with the city", Status: domain.MilestonePending},
			},
		},
		{
			ID: "p2", Name: "Construction", Description: "Main build",
			Milestones: []domain.Milestone{
				{ID: "m3", Name: "Foundation", Description: "Pour foundation", Status: domain.MilestoneInProgress},
			},
		},
	}
}

func TestApplyMilestoneEdits_SingleField(t *testing.T) {
	roadmap := sampleRoadmap()

	next, err := service.ApplyMilestoneEdits(roadmap, []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m2", Field: service.FieldStatus, Value: domain.MilestoneCompleted},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MilestoneCompleted, next[0].Milestones[1].Status)
	// The input roadmap is untouched.
	assert.Equal(t, domain.MilestonePending, roadmap[0].Milestones[1].Status)
}

func TestApplyMilestoneEdits_Batch(t *testing.T) {
	next, err := service.ApplyMilestoneEdits(sampleRoadmap(), []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldName, Value: "Topographic survey"},
		{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldDescription, Value: "Full topographic survey of the lot"},
		{PhaseID: "p2", MilestoneID: "m3", Field: service.FieldStatus, Value: domain.MilestoneCompleted},
	})
	require.NoError(t, err)

	assert.Equal(t, "Topographic survey", next[0].Milestones[0].Name)
	assert.Equal(t, "Full topographic survey of the lot", next[0].Milestones[0].Description)
	assert.Equal(t, domain.MilestoneCompleted, next[1].Milestones[0].Status)
}

func TestApplyMilestoneEdits_InvalidStatusRejectsWholeBatch(t *testing.T) {
	roadmap := sampleRoadmap()
	before := domain.CloneRoadmap(roadmap)

	_, err := service.ApplyMilestoneEdits(roadmap, []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m1", Field: service.FieldName, Value: "Renamed"},
		{PhaseID: "p1", MilestoneID: "m2", Field: service.FieldStatus, Value: "Archived"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFieldValue))

	// No partial application: the valid first edit must not have leaked.
	assert.Equal(t, before, roadmap)
}

func TestApplyMilestoneEdits_UnknownField(t *testing.T) {
	_, err := service.ApplyMilestoneEdits(sampleRoadmap(), []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m1", Field: "priority", Value: "high"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFieldValue))
}

func TestApplyMilestoneEdits_MilestoneNotFound(t *testing.T) {
	_, err := service.ApplyMilestoneEdits(sampleRoadmap(), []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m99", Field: service.FieldName, Value: "x"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMilestoneNotFound))
}

func TestApplyMilestoneEdits_PhaseNotFound(t *testing.T) {
	_, err := service.ApplyMilestoneEdits(sampleRoadmap(), []service.MilestoneEdit{
		{PhaseID: "p99", MilestoneID: "m1", Field: service.FieldName, Value: "x"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPhaseNotFound))
}

func TestApplyMilestoneEdits_MilestoneLookupScopedToPhase(t *testing.T) {
	// m3 exists, but in p2. Addressing it through p1 must fail.
	_, err := service.ApplyMilestoneEdits(sampleRoadmap(), []service.MilestoneEdit{
		{PhaseID: "p1", MilestoneID: "m3", Field: service.FieldName, Value: "x"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMilestoneNotFound))
}
