package domain

import "errors"

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrPhaseNotFound           = errors.New("roadmap phase not found")
	ErrMilestoneNotFound       = errors.New("milestone not found")
	ErrInvalidFieldValue       = errors.New("invalid milestone field or value")
	ErrInvalidGenerationResult = errors.New("invalid roadmap generation result")
)
