package domain

import (
	"strings"
	"testing"
)

func TestDefaultParams_Valid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v, want nil", err)
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		problem string
	}{
		{
			name:    "negative latent shape",
			mutate:  func(p *Params) { p.LatentPeriod.Shape = -1 },
			problem: "latent_period.shape",
		},
		{
			name:    "zero latent scale",
			mutate:  func(p *Params) { p.LatentPeriod.Scale = 0 },
			problem: "latent_period.scale",
		},
		{
			name:    "zero infectious shape",
			mutate:  func(p *Params) { p.InfectiousPeriod.Shape = 0 },
			problem: "infectious_period.shape",
		},
		{
			name:    "negative recover scale",
			mutate:  func(p *Params) { p.RecoverPeriod.Scale = -3 },
			problem: "recover_period.scale",
		},
		{
			name:    "negative dying shape",
			mutate:  func(p *Params) { p.DyingPeriod.Shape = -0.5 },
			problem: "dying_period.shape",
		},
		{
			name:    "negative incubation scale",
			mutate:  func(p *Params) { p.IncubationFactor.Scale = -0.1 },
			problem: "incubation_factor.scale",
		},
		{
			name:    "probability above one",
			mutate:  func(p *Params) { p.RecoveryProbability.P = 1.1 },
			problem: "recovery_probability.p",
		},
		{
			name:    "negative probability",
			mutate:  func(p *Params) { p.RecoveryProbability.P = -0.2 },
			problem: "recovery_probability.p",
		},
		{
			name:    "negative horizon",
			mutate:  func(p *Params) { p.Horizon = -1 },
			problem: "horizon",
		},
		{
			name:    "negative output interval",
			mutate:  func(p *Params) { p.OutputInterval = -7 },
			problem: "output_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			simErr, ok := err.(*SimError)
			if !ok {
				t.Fatalf("expected SimError, got %T", err)
			}
			if simErr.Code != ErrInvalidParameter.Code {
				t.Errorf("Code = %d, want %d", simErr.Code, ErrInvalidParameter.Code)
			}
			if !strings.Contains(simErr.Message, tt.problem) {
				t.Errorf("Message = %q, want mention of %q", simErr.Message, tt.problem)
			}
		})
	}
}

func TestParams_Validate_CollectsAllProblems(t *testing.T) {
	p := DefaultParams()
	p.LatentPeriod.Shape = -1
	p.RecoveryProbability.P = 2
	p.Horizon = -5

	err := p.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"latent_period.shape", "recovery_probability.p", "horizon"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestParams_ZeroHorizonValid(t *testing.T) {
	p := DefaultParams()
	p.Horizon = 0
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() with zero horizon = %v, want nil", err)
	}
}

func TestGammaParams_Mean(t *testing.T) {
	g := GammaParams{Shape: 1, Scale: 5}
	if got := g.Mean(); got != 5 {
		t.Errorf("Mean() = %f, want 5", got)
	}
}
