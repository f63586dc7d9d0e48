package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/outbreak-engine/internal/config"
	"github.com/anthropics/outbreak-engine/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "outbreak",
	Short: "Individual-based stochastic epidemic simulator",
	Long: `Outbreak forward-simulates the spread of an infectious disease through an
infinite susceptible pool. Each infected individual samples its full clinical
trajectory at the moment of infection and transmits at a rate derived from R0
while infectious.

The model follows Britton and Scalia Tomba (2018), "Estimation in emerging
epidemics: biases and remedies", and is intended for generating synthetic
trajectories when inferring the basic reproduction number R0.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadParams resolves the parameter set: an explicit file when given,
// otherwise the model defaults.
func loadParams(path string) (domain.Params, error) {
	if path == "" {
		return domain.DefaultParams(), nil
	}
	p, err := config.Load(path)
	if err != nil {
		return p, fmt.Errorf("load config: %w", err)
	}
	return p, nil
}
