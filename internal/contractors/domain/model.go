package domain

import "time"

// Profile is the contractor-facing subset of a user account. It is
// read-only input to matching; nothing in this service mutates it.
type Profile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ProfessionalTitle string    `json:"professional_title,omitempty"`
	Location          string    `json:"location,omitempty"`
	Skills            []string  `json:"skills"`
	Bio               string    `json:"bio,omitempty"`
	JoinedAt          time.Time `json:"joined_at"`
}

// HasSkill reports whether the profile lists the skill verbatim. A profile
// with no skills recorded matches nothing, but is not an error.
func (p Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
