package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/validation"
)

const (
	dataFlag   = "data"
	minAgeFlag = "min-age"
	teamFlag   = "team"
	orderFlag  = "order"
	takeFlag   = "take"
)

type peopleQuery struct {
	data   string
	minAge int
	team   string
	order  string
	take   int
}

func (q *peopleQuery) validate() error {
	v := validation.New().
		Required(dataFlag, q.data).
		Min(minAgeFlag, q.minAge, 0).
		Min(takeFlag, q.take, 0).
		OneOf(orderFlag, q.order, []string{"asc", "desc"})
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func (q *peopleQuery) direction() linq.SortDirection {
	if q.order == "desc" {
		return linq.Descending
	}
	return linq.Ascending
}

func newPeopleCommand(a *app) *cobra.Command {
	q := &peopleQuery{}
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Filter, sort and summarize a people dataset",
		Example: `linqctl people --data people.yaml --min-age 30 --order desc --take 3
linqctl people --data people.json --team core`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			if err := q.validate(); err != nil {
				return err
			}
			records, err := loadDataset(q.data)
			if err != nil {
				return err
			}
			return a.runPeople(cmd, q, records)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&q.data, dataFlag, "", "YAML or JSON file with a top-level people list")
	flags.IntVar(&q.minAge, minAgeFlag, 0, "keep people at least this old")
	flags.StringVar(&q.team, teamFlag, "", "keep people of this team only")
	flags.StringVar(&q.order, orderFlag, "asc", "age order: asc or desc (ties by name)")
	flags.IntVar(&q.take, takeFlag, 0, "limit the number of rows (0 keeps all)")
	return cmd
}

func (a *app) runPeople(cmd *cobra.Command, q *peopleQuery, records []person) error {
	ctx := cmd.Context()
	opts := a.traceOptions()

	source := linq.From(&records).Trace(nil, "people")
	filtered := observability.Traced(ctx, source.Where(func(p person) bool {
		return p.Age >= q.minAge && (q.team == "" || p.Team == q.team)
	}), "people.filter", opts...)

	ordered := linq.ThenByAscending(
		linq.OrderBy(filtered, func(p person) int { return p.Age }, q.direction()),
		func(p person) string { return p.Name },
	)
	result := ordered.Range
	if q.take > 0 {
		result = ordered.Take(q.take)
	}
	// One sorted snapshot feeds both the table and the summary.
	rows := result.ToSlice()
	view := linq.From(&rows)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %4s  %s\n", "NAME", "AGE", "TEAM")
	view.ForEach(func(p person) {
		fmt.Fprintf(out, "%-12s %4d  %s\n", p.Name, p.Age, p.Team)
	})
	writeSummary(out, view)
	return nil
}

func writeSummary(out io.Writer, people linq.Range[person]) {
	fmt.Fprintf(out, "count: %d\n", people.Count())

	if avg, ok := linq.Average(linq.Select(people, func(p person) int { return p.Age })); ok {
		fmt.Fprintf(out, "average age: %.2f\n", avg)
	} else {
		fmt.Fprintln(out, "average age: n/a")
	}

	teams := linq.Distinct(linq.Select(people, func(p person) string { return p.Team })).
		Where(func(t string) bool { return t != "" })
	perTeam := linq.ToMap(linq.Select(teams, func(t string) linq.Pair[string, int] {
		return linq.MakePair(t, people.CountWhere(func(p person) bool { return p.Team == t }))
	}))
	counts := linq.Select(perTeam.Range(), func(e linq.Pair[string, int]) string {
		return fmt.Sprintf("%s=%d", e.Key, e.Value)
	}).ToSlice()
	fmt.Fprintf(out, "teams: %s\n", strings.Join(counts, ", "))
}
