package sim

import (
	"github.com/anthropics/outbreak-engine/internal/domain"
	"github.com/anthropics/outbreak-engine/internal/epi"
)

// Tally counts the current state of every agent in the population. It is a
// pure read-side view and never mutates agent state.
func Tally(pop []*epi.Infectee) domain.Counts {
	var c domain.Counts
	for _, a := range pop {
		c[a.Status()]++
	}
	return c
}
