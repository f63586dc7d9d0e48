package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anthropics/outbreak-engine/internal/randv"
	"github.com/anthropics/outbreak-engine/internal/report"
	"github.com/anthropics/outbreak-engine/internal/sim"
	"github.com/anthropics/outbreak-engine/internal/store"
)

var (
	runR0        float64
	runSeed      uint64
	runConfig    string
	runDB        string
	runStats     bool
	runIntervals bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a single outbreak and print the final tally",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams(runConfig)
		if err != nil {
			return err
		}

		seed := runSeed
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
			fmt.Fprintf(os.Stderr, "using seed = %d\n", seed)
		}

		res, err := sim.Run(runR0, p, randv.New(seed))
		if err != nil {
			return err
		}

		if runIntervals && len(res.Intervals) > 0 {
			if err := report.WriteIntervals(os.Stdout, res.Intervals); err != nil {
				return err
			}
			fmt.Println()
		}
		if err := report.WriteCounts(os.Stdout, res.Final); err != nil {
			return err
		}
		if runStats {
			fmt.Println()
			st := sim.Stats(res.Population, p)
			if err := report.WriteStats(os.Stdout, st, sim.EstimateR0(res.Population)); err != nil {
				return err
			}
		}

		if runDB != "" {
			db, err := store.NewDB(runDB)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			repo := &store.RunRepo{}
			rec := store.RunRecord{
				Seed:      int64(seed),
				R0:        runR0,
				Horizon:   p.Horizon,
				Steps:     res.Steps,
				Final:     res.Final,
				CreatedAt: time.Now().Unix(),
			}
			id, err := repo.Save(context.Background(), db, rec, res.Intervals)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			fmt.Fprintf(os.Stderr, "saved run %s to %s\n", id, runDB)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Float64Var(&runR0, "r0", 1.7, "basic reproduction number")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "random seed (defaults to the current time)")
	runCmd.Flags().StringVar(&runConfig, "config", "", "path to a JSON or YAML parameter file")
	runCmd.Flags().StringVar(&runDB, "db", "", "SQLite database to persist the run to")
	runCmd.Flags().BoolVar(&runStats, "stats", false, "print period statistics and the R0 estimate")
	runCmd.Flags().BoolVar(&runIntervals, "intervals", false, "print the per-interval tally table")
}
