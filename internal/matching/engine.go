// Package matching filters the contractor pool against a client's project
// requirements. It is a deterministic filter, not a ranker: results keep
// the pool's original order and carry no scores.
package matching

import (
	"strings"

	"github.com/geo3dhub/geo-hub-backend/internal/contractors/domain"
)

// Requirement is the location/skill criteria for one matching request.
// It is an ephemeral value object and is never persisted.
type Requirement struct {
	Location       string   `json:"location"`
	RequiredSkills []string `json:"required_skills"`
}

// Filter returns the contractors that satisfy req, preserving pool order.
// An empty requirement returns the whole pool; an empty pool returns an
// empty result.
func Filter(pool []domain.Profile, req Requirement) []domain.Profile {
	out := make([]domain.Profile, 0, len(pool))
	for _, p := range pool {
		if Matches(p, req) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single profile satisfies the requirement:
//   - location: empty requirement passes, otherwise the profile location
//     must contain the requirement string as a case-sensitive substring
//     (so "Pune" matches "Pune, India"; loose on purpose);
//   - skills: every required skill must appear verbatim in the profile's
//     skill set; extra skills are fine, an empty requirement set passes.
func Matches(p domain.Profile, req Requirement) bool {
	if req.Location != "" && !strings.Contains(p.Location, req.Location) {
		return false
	}
	for _, skill := range req.RequiredSkills {
		if !p.HasSkill(skill) {
			return false
		}
	}
	return true
}
