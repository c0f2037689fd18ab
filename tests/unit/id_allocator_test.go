package unit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/service"
)

func TestIDAllocator_Sequential(t *testing.T) {
	var alloc service.IDAllocator

	assert.Equal(t, "p1", alloc.NextPhaseID())
	assert.Equal(t, "p2", alloc.NextPhaseID())
	assert.Equal(t, "m1", alloc.NextMilestoneID())
	assert.Equal(t, "m2", alloc.NextMilestoneID())
	assert.Equal(t, "p3", alloc.NextPhaseID())
	assert.Equal(t, "m3", alloc.NextMilestoneID())
}

func TestIDAllocator_MilestoneCounterSharedAcrossPhases(t *testing.T) {
	// The milestone counter must not reset per phase: ids are unique
	// across the whole roadmap.
	var alloc service.IDAllocator
	seen := make(map[string]bool)

	for phase := 0; phase < 3; phase++ {
		alloc.NextPhaseID()
		for ms := 0; ms < 4; ms++ {
			id := alloc.NextMilestoneID()
			assert.False(t, seen[id], "duplicate milestone id %s", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 12)
	assert.True(t, seen[fmt.Sprintf("m%d", 12)])
}
