package sim

import (
	"math"

	"github.com/anthropics/outbreak-engine/internal/domain"
	"github.com/anthropics/outbreak-engine/internal/epi"
)

// EstimateR0 estimates the basic reproduction number from agents that are
// past their infectious period, as the mean number of reported cases each of
// them caused. It returns NaN when no agent has completed its infectious
// period yet.
func EstimateR0(pop []*epi.Infectee) float64 {
	nInfectors := 0
	nReported := 0

	for _, a := range pop {
		if a.Status() <= domain.StateSymptoms {
			continue
		}
		nInfectors++
		for _, c := range a.Infected() {
			if c.Reported() {
				nReported++
			}
		}
	}

	if nInfectors == 0 {
		return math.NaN()
	}
	return float64(nReported) / float64(nInfectors)
}

// PeriodStats summarizes realized phase durations across a population against
// the configured expectations.
type PeriodStats struct {
	MeanLatent     float64
	MeanInfectious float64
	MeanRecovering float64
	MeanDying      float64

	ExpectedLatent     float64
	ExpectedInfectious float64
	ExpectedRecovering float64
	ExpectedDying      float64

	RecoveryFraction float64
	ExpectedRecovery float64
}

// Stats computes realized period means from the agents' sampled end-time
// tables. Periods are read from the schedule fixed at construction, so agents
// cut off mid-trajectory still contribute their full sampled durations.
func Stats(pop []*epi.Infectee, p domain.Params) PeriodStats {
	var latentSum, infectiousSum, recoverSum, dyingSum float64
	var nRecover, nDying int

	for _, a := range pop {
		traj := a.Trajectory()

		// End of the pre-infectious phase depends on which middle branch the
		// agent took.
		var offset float64
		if traj[1] == domain.StateSymptomsNonInfectious {
			offset = a.EndTime(domain.StateLatent)
		} else {
			offset = a.EndTime(domain.StateLatentInfectious)
		}
		latentSum += offset - a.InfectionTime()
		infectiousSum += a.EndTime(domain.StateSymptoms) - offset

		if traj[3] == domain.StateRecovering {
			recoverSum += a.EndTime(domain.StateRecovering) - a.EndTime(domain.StateSymptoms)
			nRecover++
		} else {
			dyingSum += a.EndTime(domain.StateDying) - a.EndTime(domain.StateSymptoms)
			nDying++
		}
	}

	n := len(pop)
	st := PeriodStats{
		ExpectedLatent:     p.LatentPeriod.Mean(),
		ExpectedInfectious: p.InfectiousPeriod.Mean(),
		ExpectedRecovering: p.RecoverPeriod.Mean(),
		ExpectedDying:      p.DyingPeriod.Mean(),
		ExpectedRecovery:   p.RecoveryProbability.P,
	}
	if n == 0 {
		return st
	}

	st.MeanLatent = latentSum / float64(n)
	st.MeanInfectious = infectiousSum / float64(n)
	if nRecover > 0 {
		st.MeanRecovering = recoverSum / float64(nRecover)
	}
	if nDying > 0 {
		st.MeanDying = dyingSum / float64(nDying)
	}
	st.RecoveryFraction = float64(nRecover) / float64(n)
	return st
}
