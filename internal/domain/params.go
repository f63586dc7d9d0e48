package domain

import "fmt"

// GammaParams parameterizes a Gamma(shape, scale) period distribution.
type GammaParams struct {
	Shape float64 `json:"shape" yaml:"shape"`
	Scale float64 `json:"scale" yaml:"scale"`
}

// Mean returns the distribution mean, shape times scale.
func (g GammaParams) Mean() float64 {
	return g.Shape * g.Scale
}

// UniformParams parameterizes a Uniform(loc, loc+scale) distribution.
type UniformParams struct {
	Loc   float64 `json:"loc" yaml:"loc"`
	Scale float64 `json:"scale" yaml:"scale"`
}

// BernoulliParams parameterizes a Bernoulli(p) branch.
type BernoulliParams struct {
	P float64 `json:"p" yaml:"p"`
}

// Params is the immutable parameter set shared read-only by all agents during
// one simulation run. InfectDelta is derived from R0 by the simulation entry
// point, never read from configuration.
type Params struct {
	LatentPeriod        GammaParams     `json:"latent_period" yaml:"latent_period"`
	IncubationFactor    UniformParams   `json:"incubation_factor" yaml:"incubation_factor"`
	InfectiousPeriod    GammaParams     `json:"infectious_period" yaml:"infectious_period"`
	RecoveryProbability BernoulliParams `json:"recovery_probability" yaml:"recovery_probability"`
	RecoverPeriod       GammaParams     `json:"recover_period" yaml:"recover_period"`
	DyingPeriod         GammaParams     `json:"dying_period" yaml:"dying_period"`

	// Horizon is the number of unit time steps to simulate.
	Horizon int `json:"horizon" yaml:"horizon"`
	// OutputInterval is the step spacing of time-indexed tallies; zero means
	// a final tally only.
	OutputInterval int `json:"output_interval" yaml:"output_interval"`
	// MaxInfected stops the run early once the population exceeds it; zero
	// disables the cap.
	MaxInfected int `json:"max_infected" yaml:"max_infected"`

	// InfectDelta is the minimum elapsed time between successive
	// transmissions by one agent: mean infectious period divided by R0.
	InfectDelta float64 `json:"-" yaml:"-"`
}

// DefaultParams returns the Britton–Tomba model defaults.
func DefaultParams() Params {
	return Params{
		LatentPeriod:        GammaParams{Shape: 2, Scale: 5},
		IncubationFactor:    UniformParams{Loc: 0.8, Scale: 0.4},
		InfectiousPeriod:    GammaParams{Shape: 1, Scale: 5},
		RecoveryProbability: BernoulliParams{P: 0.3},
		RecoverPeriod:       GammaParams{Shape: 4, Scale: 3},
		DyingPeriod:         GammaParams{Shape: 4. / 9., Scale: 9},
		Horizon:             150,
		OutputInterval:      7,
		MaxInfected:         100000,
	}
}

// Validate checks every distribution parameter before a simulation starts.
// A parameter outside its distribution's domain is a configuration error and
// must never reach the trajectory generator.
func (p Params) Validate() error {
	var problems []string

	gammas := []struct {
		name string
		g    GammaParams
	}{
		{"latent_period", p.LatentPeriod},
		{"infectious_period", p.InfectiousPeriod},
		{"recover_period", p.RecoverPeriod},
		{"dying_period", p.DyingPeriod},
	}
	for _, g := range gammas {
		if g.g.Shape <= 0 {
			problems = append(problems, fmt.Sprintf("%s.shape must be positive", g.name))
		}
		if g.g.Scale <= 0 {
			problems = append(problems, fmt.Sprintf("%s.scale must be positive", g.name))
		}
	}

	if p.IncubationFactor.Scale < 0 {
		problems = append(problems, "incubation_factor.scale must be non-negative")
	}
	if p.IncubationFactor.Loc < 0 {
		problems = append(problems, "incubation_factor.loc must be non-negative")
	}
	if p.RecoveryProbability.P < 0 || p.RecoveryProbability.P > 1 {
		problems = append(problems, "recovery_probability.p must be in [0, 1]")
	}
	if p.Horizon < 0 {
		problems = append(problems, "horizon must be non-negative")
	}
	if p.OutputInterval < 0 {
		problems = append(problems, "output_interval must be non-negative")
	}
	if p.MaxInfected < 0 {
		problems = append(problems, "max_infected must be non-negative")
	}

	if len(problems) > 0 {
		return &SimError{
			Code:    ErrInvalidParameter.Code,
			Message: fmt.Sprintf("%s: %v", ErrInvalidParameter.Message, problems),
		}
	}
	return nil
}
