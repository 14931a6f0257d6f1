package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/validation"
)

type rangeQuery struct {
	from, to, step int64
	distinctMod    int64
}

func (q *rangeQuery) validate() error {
	v := validation.New().
		Custom(q.from != q.to, "to", "must differ from --from").
		Custom(q.step != 0, "step", "must not be zero").
		Custom(q.distinctMod >= 0, "mod", "must not be negative")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func newRangeCommand(a *app) *cobra.Command {
	q := &rangeQuery{}
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Generate an inclusive numeric range and aggregate it",
		Example: `linqctl range --from 1 --to 10 --step 3
linqctl range --from 10 --to 0 --step 2 --mod 3`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			if err := q.validate(); err != nil {
				return err
			}
			return a.runRange(cmd, q)
		}),
	}

	flags := cmd.Flags()
	flags.Int64Var(&q.from, "from", 0, "first value")
	flags.Int64Var(&q.to, "to", 10, "last value (inclusive when reached by the step)")
	flags.Int64Var(&q.step, "step", 1, "step magnitude; direction follows from and to")
	flags.Int64Var(&q.distinctMod, "mod", 0, "also list the distinct remainders modulo this value")
	return cmd
}

func (a *app) runRange(cmd *cobra.Command, q *rangeQuery) error {
	values := observability.Traced(cmd.Context(),
		linq.FromToStep(q.from, q.to, q.step).Trace(nil, "range"),
		"range.generate", a.traceOptions()...)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "values: %s\n", strings.Join(linq.SelectToString(values).ToSlice(), " "))

	sum, n := linq.SumAndCount(values)
	fmt.Fprintf(out, "count: %d\n", n)
	fmt.Fprintf(out, "sum: %d\n", sum)
	if avg, ok := linq.Average(values); ok {
		fmt.Fprintf(out, "average: %.2f\n", avg)
	}
	if lo, ok := linq.Min(values); ok {
		hi, _ := linq.Max(values)
		fmt.Fprintf(out, "min: %d\nmax: %d\n", lo, hi)
	}

	if q.distinctMod > 0 {
		rems := linq.OrderByAscending(
			linq.Distinct(linq.Select(values, func(v int64) int64 { return v % q.distinctMod })),
			func(v int64) int64 { return v },
		)
		fmt.Fprintf(out, "remainders: %s\n", strings.Join(linq.SelectToString(rems.Range).ToSlice(), " "))
	}
	return nil
}
