package http

import (
	"time"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/service"
)

type createProjectReq struct {
	Name           string    `json:"name"`
	ClientName     string    `json:"client_name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartDate      time.Time `json:"start_date"`
	Deadline       time.Time `json:"deadline"`
	Budget         float64   `json:"budget"`
	Tags           []string  `json:"tags"`
	RequiredSkills []string  `json:"required_skills"`
}

type updateProjectReq struct {
	Name           *string    `json:"name,omitempty"`
	ClientName     *string    `json:"client_name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Progress       *int       `json:"progress,omitempty"`
	Location       *string    `json:"location,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	Budget         *float64   `json:"budget,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	RequiredSkills []string   `json:"required_skills,omitempty"`
}

type saveRoadmapReq struct {
	Roadmap []domain.Phase `json:"roadmap"`
}

type editRoadmapReq struct {
	Edits []service.MilestoneEdit `json:"edits"`
}
