package domain

import "time"

// Milestone is a trackable unit of work inside a roadmap phase.
// IDs are unique across the whole roadmap, not just within a phase.
type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Milestone status values. These are the wire values the frontend renders,
// so the spellings (including the space) are load-bearing.
const (
	MilestonePending    = "Pending"
	MilestoneInProgress = "In Progress"
	MilestoneCompleted  = "Completed"
)

// ValidMilestoneStatus reports whether s is one of the three allowed statuses.
func ValidMilestoneStatus(s string) bool {
	switch s {
	case MilestonePending, MilestoneInProgress, MilestoneCompleted:
		return true
	}
	return false
}

// Phase is one ordered stage of a project roadmap. Phase order is
// chronological and must survive edit/save round trips.
type Phase struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Milestones  []Milestone `json:"milestones"`
}

// EditHistoryEntry records one successful roadmap save. Entries are
// append-only and never mutated.
type EditHistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Editor    string    `json:"editor"`
	Change    string    `json:"change"`
}

// Project status values.
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// Project is the marketplace project document. It owns exactly one roadmap
// and one edit history; both are stored inline on the document.
type Project struct {
	ID             string             `json:"id"`
	OwnerUID       string             `json:"owner_uid"`
	Name           string             `json:"name"`
	ClientName     string             `json:"client_name"`
	Description    string             `json:"description"`
	Status         string             `json:"status"`
	Progress       int                `json:"progress"`
	Location       string             `json:"location,omitempty"`
	StartDate      time.Time          `json:"start_date"`
	Deadline       time.Time          `json:"deadline"`
	Budget         float64            `json:"budget"`
	Tags           []string           `json:"tags,omitempty"`
	RequiredSkills []string           `json:"required_skills,omitempty"`
	Roadmap        []Phase            `json:"roadmap"`
	EditHistory    []EditHistoryEntry `json:"edit_history"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// CloneRoadmap returns a deep copy of the roadmap so edits can be staged
// without touching the original until they are known to be valid.
func CloneRoadmap(roadmap []Phase) []Phase {
	if roadmap == nil {
		return nil
	}
	out := make([]Phase, len(roadmap))
	for i, p := range roadmap {
		cp := p
		cp.Milestones = make([]Milestone, len(p.Milestones))
		copy(cp.Milestones, p.Milestones)
		out[i] = cp
	}
	return out
}
