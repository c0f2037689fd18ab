package service

import (
	"fmt"
	"strings"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/planner"
)

// Editable milestone fields.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldStatus      = "status"
)

// MilestoneEdit targets one field of one milestone inside one phase.
type MilestoneEdit struct {
	PhaseID     string `json:"phase_id"`
	MilestoneID string `json:"milestone_id"`
	Field       string `json:"field"`
	Value       string `json:"value"`
}

// BuildRoadmap validates a planner payload and coerces it into domain
// phases. Acceptance is all-or-nothing: any structural problem rejects the
// whole payload. Every milestone starts out Pending regardless of what the
// planner claimed. If the planner omitted IDs, or produced duplicates, the
// entire roadmap is re-keyed with a shared allocator so IDs stay unique
// project-wide.
func BuildRoadmap(payload []planner.PhasePayload) ([]domain.Phase, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: no phases returned", domain.ErrInvalidGenerationResult)
	}

	phases := make([]domain.Phase, 0, len(payload))
	for i, pp := range payload {
		if strings.TrimSpace(pp.Name) == "" {
			return nil, fmt.Errorf("%w: phase %d has no name", domain.ErrInvalidGenerationResult, i+1)
		}
		if len(pp.Milestones) == 0 {
			return nil, fmt.Errorf("%w: phase %q has no milestones", domain.ErrInvalidGenerationResult, pp.Name)
		}

		phase := domain.Phase{
			ID:          strings.TrimSpace(pp.ID),
			Name:        strings.TrimSpace(pp.Name),
			Description: strings.TrimSpace(pp.Description),
			Milestones:  make([]domain.Milestone, 0, len(pp.Milestones)),
		}
		for j, mp := range pp.Milestones {
			if strings.TrimSpace(mp.Name) == "" {
				return nil, fmt.Errorf("%w: milestone %d in phase %q has no name", domain.ErrInvalidGenerationResult, j+1, pp.Name)
			}
			if mp.Status != "" && !domain.ValidMilestoneStatus(mp.Status) {
				return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidGenerationResult, mp.Status)
			}
			phase.Milestones = append(phase.Milestones, domain.Milestone{
				ID:          strings.TrimSpace(mp.ID),
				Name:        strings.TrimSpace(mp.Name),
				Description: strings.TrimSpace(mp.Description),
				Status:      domain.MilestonePending,
			})
		}
		phases = append(phases, phase)
	}

	if !roadmapIDsUnique(phases) {
		rekeyRoadmap(phases)
	}
	return phases, nil
}

// roadmapIDsUnique reports whether every phase and milestone carries a
// non-empty ID with no duplicates, milestones pooled across all phases.
func roadmapIDsUnique(phases []domain.Phase) bool {
	phaseIDs := make(map[string]bool, len(phases))
	milestoneIDs := make(map[string]bool)
	for _, p := range phases {
		if p.ID == "" || phaseIDs[p.ID] {
			return false
		}
		phaseIDs[p.ID] = true
		for _, m := range p.Milestones {
			if m.ID == "" || milestoneIDs[m.ID] {
				return false
			}
			milestoneIDs[m.ID] = true
		}
	}
	return true
}

func rekeyRoadmap(phases []domain.Phase) {
	var alloc IDAllocator
	for i := range phases {
		phases[i].ID = alloc.NextPhaseID()
		for j := range phases[i].Milestones {
			phases[i].Milestones[j].ID = alloc.NextMilestoneID()
		}
	}
}

// ApplyMilestoneEdits applies a batch of edits to a copy of the roadmap and
// returns the result. Either every edit lands or none do; the input roadmap
// is never mutated.
func ApplyMilestoneEdits(roadmap []domain.Phase, edits []MilestoneEdit) ([]domain.Phase, error) {
	next := domain.CloneRoadmap(roadmap)

	for _, e := range edits {
		m, err := findMilestone(next, e.PhaseID, e.MilestoneID)
		if err != nil {
			return nil, err
		}
		switch e.Field {
		case FieldName:
			m.Name = e.Value
		case FieldDescription:
			m.Description = e.Value
		case FieldStatus:
			if !domain.ValidMilestoneStatus(e.Value) {
				return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidFieldValue, e.Value)
			}
			m.Status = e.Value
		default:
			return nil, fmt.Errorf("%w: field %q", domain.ErrInvalidFieldValue, e.Field)
		}
	}
	return next, nil
}

func findMilestone(roadmap []domain.Phase, phaseID, milestoneID string) (*domain.Milestone, error) {
	for i := range roadmap {
		if roadmap[i].ID != phaseID {
			continue
		}
		for j := range roadmap[i].Milestones {
			if roadmap[i].Milestones[j].ID == milestoneID {
				return &roadmap[i].Milestones[j], nil
			}
		}
		return nil, fmt.Errorf("%w: %q in phase %q", domain.ErrMilestoneNotFound, milestoneID, phaseID)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrPhaseNotFound, phaseID)
}

// validateRoadmap checks the invariants a roadmap must hold before it is
// persisted: non-empty unique IDs (milestones pooled project-wide), at
// least one milestone per phase, and enumerated statuses only.
func validateRoadmap(phases []domain.Phase) error {
	for _, p := range phases {
		if len(p.Milestones) == 0 {
			return fmt.Errorf("%w: phase %q has no milestones", domain.ErrInvalidFieldValue, p.ID)
		}
		for _, m := range p.Milestones {
			if !domain.ValidMilestoneStatus(m.Status) {
				return fmt.Errorf("%w: status %q", domain.ErrInvalidFieldValue, m.Status)
			}
		}
	}
	if !roadmapIDsUnique(phases) {
		return fmt.Errorf("%w: duplicate or empty roadmap ids", domain.ErrInvalidFieldValue)
	}
	return nil
}
