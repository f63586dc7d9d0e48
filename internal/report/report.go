// Package report renders simulation output for human consumption. It only
// consumes derived count vectors and statistics; it never touches agent
// state.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/anthropics/outbreak-engine/internal/domain"
	"github.com/anthropics/outbreak-engine/internal/sim"
)

// WriteCounts prints a final tally, one state per line, followed by the
// summary reductions.
func WriteCounts(w io.Writer, c domain.Counts) error {
	for s := domain.State(0); s < domain.NStates; s++ {
		if _, err := fmt.Fprintf(w, "%s: %d\n", s, c[s]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\ntotal cases: %d\nreported cases: %d\nunobserved cases: %d\n",
		c.Total(), c.Reported(), c.Unobserved())
	return err
}

// WriteIntervals prints the time-indexed tally as an aligned table with one
// row per output interval.
func WriteIntervals(w io.Writer, ivs []domain.IntervalCounts) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprint(tw, "t")
	for s := domain.State(0); s < domain.NStates; s++ {
		fmt.Fprintf(tw, "\t%s", s)
	}
	fmt.Fprintln(tw)

	for _, iv := range ivs {
		fmt.Fprintf(tw, "%d", iv.Step)
		for _, n := range iv.Counts {
			fmt.Fprintf(tw, "\t%d", n)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteStats prints realized period means against their configured
// expectations, plus the R0 estimate when it is defined.
func WriteStats(w io.Writer, st sim.PeriodStats, r0Estimate float64) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "period\tmean\texpected")
	fmt.Fprintf(tw, "latent\t%.3f\t%.3f\n", st.MeanLatent, st.ExpectedLatent)
	fmt.Fprintf(tw, "infectious\t%.3f\t%.3f\n", st.MeanInfectious, st.ExpectedInfectious)
	fmt.Fprintf(tw, "recovering\t%.3f\t%.3f\n", st.MeanRecovering, st.ExpectedRecovering)
	fmt.Fprintf(tw, "dying\t%.3f\t%.3f\n", st.MeanDying, st.ExpectedDying)
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nPr(recovery): %.3f (expected %.3f)\n",
		st.RecoveryFraction, st.ExpectedRecovery); err != nil {
		return err
	}

	if math.IsNaN(r0Estimate) {
		_, err := fmt.Fprintln(w, "estimated R0: n/a (no agent past its infectious period)")
		return err
	}
	_, err := fmt.Fprintf(w, "estimated R0: %.3f\n", r0Estimate)
	return err
}
