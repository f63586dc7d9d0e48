// Package domain defines the core types for the Outbreak Engine.
package domain

// State is the numeric infection status of an agent. The numeric values are
// load-bearing: they index count vectors and decide infectiousness and
// reporting, so they must not be reordered.
type State int

const (
	StateLatent State = iota
	StateSymptomsNonInfectious
	StateLatentInfectious
	StateSymptoms
	StateRecovering
	StateDying
	StateRecovered
	StateDead
)

// NStates is the number of infection states.
const NStates = 8

var stateNames = [NStates]string{
	"latent",
	"symptoms-non-infectious",
	"latent-infectious",
	"symptoms",
	"recovering",
	"dying",
	"recovered",
	"dead",
}

// String returns the canonical name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= NStates {
		return "unknown"
	}
	return stateNames[s]
}

// CanInfect reports whether an agent in this state transmits the disease.
// Symptomatic-non-infectious agents do not, modeling pre-infectious
// symptomatic presentation.
func (s State) CanInfect() bool {
	return s == StateLatentInfectious || s == StateSymptoms
}

// Reported reports whether an agent in this state is visible to surveillance.
// Latent and latent-infectious agents show no symptoms and go unreported.
func (s State) Reported() bool {
	return s != StateLatent && s != StateLatentInfectious
}

// Counts is a per-state tally of agents, indexed by State.
type Counts [NStates]int

// Total returns the number of agents counted, i.e. the population size.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Reported returns the number of agents in surveillance-visible states.
func (c Counts) Reported() int {
	return c.Total() - c.Unobserved()
}

// Unobserved returns the number of agents in the symptomless states.
func (c Counts) Unobserved() int {
	return c[StateLatent] + c[StateLatentInfectious]
}

// IntervalCounts is one row of a time-indexed tally, taken after the pass at
// the given step completed.
type IntervalCounts struct {
	Step   int
	Counts Counts
}
