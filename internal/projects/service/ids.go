package service

import "fmt"

// IDAllocator hands out sequential phase and milestone IDs ("p1", "p2",
// "m1", "m2") for a single generation pass. One counter per entity kind;
// the milestone counter is shared across phases so milestone IDs stay
// unique across the whole roadmap. A fresh allocator is used per
// generation, since regeneration replaces the document wholesale.
type IDAllocator struct {
	phases     int
	milestones int
}

// NextPhaseID returns the next phase ID.
func (a *IDAllocator) NextPhaseID() string {
	a.phases++
	return fmt.Sprintf("p%d", a.phases)
}

// NextMilestoneID returns the next milestone ID.
func (a *IDAllocator) NextMilestoneID() string {
	a.milestones++
	return fmt.Sprintf("m%d", a.milestones)
}
