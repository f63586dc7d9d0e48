// Package epi implements the infected-individual agent: its precomputed
// disease trajectory, the status-advancement state machine, and the
// transmission policy.
package epi

import (
	"fmt"
	"math"

	"github.com/anthropics/outbreak-engine/internal/domain"
	"github.com/anthropics/outbreak-engine/internal/randv"
)

// TrajectoryLen is the number of explicit states in every trajectory. The
// terminal state (recovered or dead) is reached by the state machine's final
// advancement and is not stored.
const TrajectoryLen = 4

// Infectee is one infected individual. The full future course of its illness
// is sampled at construction; Update only moves a cursor along it.
type Infectee struct {
	infector      *Infectee   // who caused this infection; nil for the index case
	infected      []*Infectee // individuals infected by self
	infectionTime float64

	trajectory [TrajectoryLen]domain.State
	// endTimes[s] is the absolute time at which state s gives way to its
	// successor. Entries for states not in the trajectory stay NaN.
	endTimes [domain.NStates]float64
	cursor   int

	lastTransmission float64
}

// New creates an infected individual at the given infection time and samples
// its entire trajectory. The draw order is fixed: latent period, incubation
// factor, infectious period, recovery branch, then the recovery or dying
// period. Changing it breaks seed reproducibility.
func New(infector *Infectee, infectionTime float64, p domain.Params, src *randv.Source) *Infectee {
	inf := &Infectee{
		infector:         infector,
		infectionTime:    infectionTime,
		lastTransmission: infectionTime,
	}
	for i := range inf.endTimes {
		inf.endTimes[i] = math.NaN()
	}

	inf.trajectory[0] = domain.StateLatent
	latent := src.Gamma(p.LatentPeriod.Shape, p.LatentPeriod.Scale)
	factor := src.Uniform(p.IncubationFactor.Loc, p.IncubationFactor.Scale)

	// Symptom onset may precede or follow the onset of infectiousness.
	// Either way the pre-symptomatic phase of one branch ends exactly when
	// the other branch would have turned infectious.
	if factor > 1 {
		inf.trajectory[1] = domain.StateSymptomsNonInfectious
		inf.endTimes[domain.StateLatent] = latent
		inf.endTimes[domain.StateSymptomsNonInfectious] = factor * latent
	} else {
		inf.trajectory[1] = domain.StateLatentInfectious
		inf.endTimes[domain.StateLatent] = factor * latent
		inf.endTimes[domain.StateLatentInfectious] = latent
	}

	inf.trajectory[2] = domain.StateSymptoms
	infectious := src.Gamma(p.InfectiousPeriod.Shape, p.InfectiousPeriod.Scale)
	twoPeriods := latent + infectious
	inf.endTimes[domain.StateSymptoms] = twoPeriods

	if src.Bernoulli(p.RecoveryProbability.P) {
		inf.trajectory[3] = domain.StateRecovering
		inf.endTimes[domain.StateRecovering] = twoPeriods + src.Gamma(p.RecoverPeriod.Shape, p.RecoverPeriod.Scale)
	} else {
		inf.trajectory[3] = domain.StateDying
		inf.endTimes[domain.StateDying] = twoPeriods + src.Gamma(p.DyingPeriod.Shape, p.DyingPeriod.Scale)
	}

	// Shift all end times to absolute simulation time. NaN entries stay NaN.
	for i := range inf.endTimes {
		inf.endTimes[i] += infectionTime
	}

	return inf
}

// Update advances the agent's state once if its current state has expired at
// time t, then applies the transmission policy. It returns the newly infected
// individual, or nil.
//
// Exactly one conditional advance is performed per call. With very short
// period draws and unit time steps an agent could in principle owe more than
// one advance; that case is deliberately not caught up.
func (i *Infectee) Update(t float64, p domain.Params, src *randv.Source) *Infectee {
	if t >= i.timeNext() {
		i.cursor++
	}

	if i.CanInfect() && t-i.lastTransmission > p.InfectDelta {
		child := New(i, t, p, src)
		i.infected = append(i.infected, child)
		i.lastTransmission = t
		return child
	}
	return nil
}

// Status returns the agent's current infection state. Once the cursor has
// moved past the last trajectory entry the agent sits in its terminal state
// for the remainder of the run.
func (i *Infectee) Status() domain.State {
	if i.cursor < TrajectoryLen {
		return i.trajectory[i.cursor]
	}
	return terminal(i.trajectory[TrajectoryLen-1])
}

// CanInfect reports whether the agent currently transmits.
func (i *Infectee) CanInfect() bool {
	return i.Status().CanInfect()
}

// Reported reports whether the agent is visible to surveillance.
func (i *Infectee) Reported() bool {
	return i.Status().Reported()
}

// Infector returns the agent that caused this infection, nil for the index
// case.
func (i *Infectee) Infector() *Infectee {
	return i.infector
}

// Infected returns the agents this agent has infected, in infection order.
// The returned slice is shared with the agent and must not be mutated.
func (i *Infectee) Infected() []*Infectee {
	return i.infected
}

// NumInfected returns the number of agents infected by self.
func (i *Infectee) NumInfected() int {
	return len(i.infected)
}

// InfectionTime returns the absolute time at which the agent was infected.
func (i *Infectee) InfectionTime() float64 {
	return i.infectionTime
}

// Trajectory returns the agent's fixed four-state trajectory.
func (i *Infectee) Trajectory() [TrajectoryLen]domain.State {
	return i.trajectory
}

// EndTime returns the absolute time at which the given state ends, NaN when
// the state is not part of the agent's trajectory.
func (i *Infectee) EndTime(s domain.State) float64 {
	if s < 0 || int(s) >= domain.NStates {
		return math.NaN()
	}
	return i.endTimes[s]
}

// String returns a short description for debugging.
func (i *Infectee) String() string {
	return fmt.Sprintf("infectee(t=%g status=%s infected=%d)", i.infectionTime, i.Status(), len(i.infected))
}

// timeNext returns the absolute time at which the current state expires.
// Terminal states never expire.
func (i *Infectee) timeNext() float64 {
	if i.cursor >= TrajectoryLen {
		return math.Inf(1)
	}
	return i.endTimes[i.trajectory[i.cursor]]
}

// terminal maps the last explicit trajectory state onto its deterministic
// successor: recovering to recovered, dying to dead.
func terminal(s domain.State) domain.State {
	return s + 2
}
