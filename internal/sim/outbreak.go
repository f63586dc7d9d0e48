// Package sim drives the outbreak population loop and provides read-side
// aggregation over the resulting population.
package sim

import (
	"github.com/anthropics/outbreak-engine/internal/domain"
	"github.com/anthropics/outbreak-engine/internal/epi"
	"github.com/anthropics/outbreak-engine/internal/randv"
)

// Result is the output of one simulation run. Population holds every agent
// ever created, in creation order; Final and Intervals are derived tallies.
type Result struct {
	R0         float64
	Steps      int // steps actually executed; less than the horizon if the cap hit
	Final      domain.Counts
	Intervals  []domain.IntervalCounts
	Population []*epi.Infectee
}

// Run simulates one outbreak. It validates the parameters, derives the
// inter-infection interval from R0, seeds the population with a single index
// case at time zero, and advances the clock one unit per step until the
// horizon is reached or the population exceeds the configured cap.
//
// The per-step pass iterates the population by index with the bound re-read
// on every iteration: agents born during the pass are appended immediately
// and visited later in the same pass, at the same time value. That same-step
// visibility determines the generation structure of the output and must not
// be replaced with a length snapshot.
func Run(r0 float64, p domain.Params, src *randv.Source) (*Result, error) {
	if r0 <= 0 {
		return nil, domain.ErrNonPositiveR0
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// Convert R0 into the period between infections caused by a single
	// individual.
	p.InfectDelta = p.InfectiousPeriod.Mean() / r0

	pop := []*epi.Infectee{epi.New(nil, 0, p, src)}
	res := &Result{R0: r0}

	time := 0
	for time < p.Horizon {
		time++

		for i := 0; i < len(pop); i++ {
			if child := pop[i].Update(float64(time), p, src); child != nil {
				pop = append(pop, child)
			}
		}

		if p.OutputInterval > 0 && time%p.OutputInterval == 0 {
			res.Intervals = append(res.Intervals, domain.IntervalCounts{
				Step:   time,
				Counts: Tally(pop),
			})
		}

		if p.MaxInfected > 0 && len(pop) > p.MaxInfected {
			break
		}
	}

	res.Steps = time
	res.Population = pop
	res.Final = Tally(pop)
	return res, nil
}
