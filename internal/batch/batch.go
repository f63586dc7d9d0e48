// Package batch runs independent outbreaks for a vector of R0 values over a
// single shared random stream, producing the per-interval reported-case
// series consumed by bulk R0-inference workloads.
package batch

import (
	"github.com/anthropics/outbreak-engine/internal/domain"
	"github.com/anthropics/outbreak-engine/internal/randv"
	"github.com/anthropics/outbreak-engine/internal/sim"
)

// ObservedSeries simulates one outbreak per R0 value and returns, per run,
// the reported case count at each output interval. All runs draw from the
// same stream, so the whole batch is reproducible from one seed.
//
// The parameter set must have a positive output interval; without interval
// tallies there is no series to report.
func ObservedSeries(r0s []float64, p domain.Params, src *randv.Source) ([][]int, error) {
	if p.OutputInterval <= 0 {
		return nil, domain.ErrNoIntervals
	}

	out := make([][]int, len(r0s))
	for i, r0 := range r0s {
		res, err := sim.Run(r0, p, src)
		if err != nil {
			return nil, err
		}

		row := make([]int, len(res.Intervals))
		for j, iv := range res.Intervals {
			row[j] = iv.Counts.Reported()
		}
		out[i] = row
	}
	return out, nil
}
