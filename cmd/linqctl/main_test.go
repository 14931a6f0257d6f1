package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/version"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs linqctl with a quiet test configuration and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--config=testdata/config.yml", "--log-level=disabled"))
	err := cmd.Execute()
	return out.String(), err
}

func table(rows ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-12s %4s  %s\n", "NAME", "AGE", "TEAM")
	for _, r := range rows {
		sb.WriteString(r + "\n")
	}
	return sb.String()
}

func row(name string, age int, team string) string {
	return fmt.Sprintf("%-12s %4d  %s", name, age, team)
}

func TestPeopleCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "filter order and take",
			args: []string{"people", "--data", "testdata/people.yaml", "--min-age", "25", "--order", "desc", "--take", "3"},
			want: table(row("Eve", 40, "ops"), row("Cid", 31, "core"), row("Dora", 31, "web")) +
				"count: 3\naverage age: 34.00\nteams: core=1, ops=1, web=1\n",
		},
		{
			name: "ascending ties by name",
			args: []string{"people", "--data", "testdata/people.yaml"},
			want: table(
				row("Finn", 19, "core"), row("Ann", 25, "core"), row("Bob", 25, "web"),
				row("Cid", 31, "core"), row("Dora", 31, "web"), row("Eve", 40, "ops"),
			) + "count: 6\naverage age: 28.50\nteams: core=3, ops=1, web=2\n",
		},
		{
			name: "json dataset by team",
			args: []string{"people", "--data", "testdata/people.json", "--team", "core"},
			want: table(row("Ann", 25, "core"), row("Cid", 31, "core")) +
				"count: 2\naverage age: 28.00\nteams: core=2\n",
		},
		{
			name: "nothing matches",
			args: []string{"people", "--data", "testdata/people.yaml", "--min-age", "100"},
			want: table() + "count: 0\naverage age: n/a\nteams: \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPeopleCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
		msg  string
	}{
		{"missing data flag", []string{"people"}, errors.ErrCodeInvalidInput, "data: is required"},
		{"bad order", []string{"people", "--data", "testdata/people.yaml", "--order", "up"}, errors.ErrCodeInvalidInput, "must be one of: asc, desc"},
		{"negative take", []string{"people", "--data", "testdata/people.yaml", "--take", "-1"}, errors.ErrCodeInvalidInput, "take: must be at least 0"},
		{"missing file", []string{"people", "--data", "testdata/nope.yaml"}, errors.ErrCodeNotFound, "dataset"},
		{"invalid records", []string{"people", "--data", "testdata/invalid.yaml"}, errors.ErrCodeInvalidInput, "people[0].age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestRangeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "ascending with step",
			args: []string{"range", "--from", "1", "--to", "10", "--step", "3", "--mod", "3"},
			want: "values: 1 4 7 10\ncount: 4\nsum: 22\naverage: 5.50\nmin: 1\nmax: 10\nremainders: 1\n",
		},
		{
			name: "descending stops before passing end",
			args: []string{"range", "--from", "10", "--to", "0", "--step", "4"},
			want: "values: 10 6 2\ncount: 3\nsum: 18\naverage: 6.00\nmin: 2\nmax: 10\n",
		},
		{
			name: "step sign ignored",
			args: []string{"range", "--from", "0", "--to", "5", "--step=-2", "--mod", "4"},
			want: "values: 0 2 4\ncount: 3\nsum: 6\naverage: 2.00\nmin: 0\nmax: 4\nremainders: 0 2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRangeCommandRejectsDegenerateRanges(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"equal bounds", []string{"range", "--from", "3", "--to", "3"}, "to: must differ from --from"},
		{"zero step", []string{"range", "--step", "0"}, "step: must not be zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
				t.Fatalf("expected INVALID_INPUT, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := version.Get().String() + "\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInvalidConfigFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"version", "--config=testdata/config.yml", "--log-level=loud"})
	err := cmd.Execute()
	if errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestUnknownArgumentsRejected(t *testing.T) {
	if _, err := execute(t, "range", "extra"); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
}

// stubTelemetry replaces the exporters of a with functions that count
// shutdowns. A non-nil meterErr makes meter setup fail.
func stubTelemetry(a *app, meterErr error) *int {
	stopped := 0
	stop := func(context.Context) error {
		stopped++
		return nil
	}
	a.initTracer = func(context.Context, *observability.TracerConfig) (shutdownFunc, error) {
		return stop, nil
	}
	a.initMeter = func(context.Context, *observability.MeterConfig) (shutdownFunc, error) {
		if meterErr != nil {
			return nil, meterErr
		}
		return stop, nil
	}
	return &stopped
}

func TestTelemetryShutdownOnSuccess(t *testing.T) {
	a := newApp()
	stopped := stubTelemetry(a, nil)
	cmd := a.command()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"range", "--from", "1", "--to", "3", "--config=testdata/tracing.yml", "--log-level=disabled"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *stopped != 2 {
		t.Errorf("shutdowns = %d, want 2", *stopped)
	}
}

func TestTelemetrySetupFailureShutsDownTracer(t *testing.T) {
	a := newApp()
	stopped := stubTelemetry(a, errors.Internal(fmt.Errorf("meter exporter unavailable")))
	cmd := a.command()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"version", "--config=testdata/tracing.yml", "--log-level=disabled"})
	err := cmd.Execute()
	if errors.CodeOf(err) != errors.ErrCodeInternal {
		t.Fatalf("expected INTERNAL_ERROR, got %v", err)
	}
	if *stopped != 1 {
		t.Errorf("tracer shutdowns = %d, want 1", *stopped)
	}
	if len(a.shutdown) != 0 {
		t.Errorf("%d shutdown hooks left registered", len(a.shutdown))
	}
}
