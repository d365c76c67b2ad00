package status

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type mockRunner struct {
	result *RunResult
	err    error
	calls  [][]string
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) (*RunResult, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	return m.result, m.err
}

func TestSystemctlSource_Query(t *testing.T) {
	t.Parallel()

	out := "LoadState=loaded\nActiveState=active\nActiveEnterTimestamp=Mon 2025-01-13 09:15:02 UTC\n"
	runner := &mockRunner{result: &RunResult{Output: out}}
	src := NewSystemctlSource(runner, time.UTC)

	snap, err := src.Query(context.Background(), "frigbot.service")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := time.Date(2025, 1, 13, 9, 15, 2, 0, time.UTC)
	if snap.ActiveState != "active" || !snap.ActiveEnter.Equal(want) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(runner.calls))
	}
	call := strings.Join(runner.calls[0], " ")
	wantCall := "systemctl show frigbot.service --property=LoadState --property=ActiveState --property=ActiveEnterTimestamp"
	if call != wantCall {
		t.Fatalf("call: got %q; want %q", call, wantCall)
	}
}

func TestSystemctlSource_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		runner *mockRunner
	}{
		{name: "command missing", runner: &mockRunner{err: errors.New(`exec: "systemctl": executable file not found in $PATH`)}},
		{name: "non-zero exit", runner: &mockRunner{result: &RunResult{ExitCode: 1}}},
		{name: "unknown unit", runner: &mockRunner{result: &RunResult{Output: "LoadState=not-found\nActiveState=inactive\nActiveEnterTimestamp=\n"}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewSystemctlSource(tc.runner, time.UTC).Query(context.Background(), "frigbot.service")
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("expected ErrUnavailable, got %v", err)
			}
		})
	}
}

func TestSystemctlSource_UnparsableTimestamp(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{result: &RunResult{Output: "LoadState=loaded\nActiveState=active\nActiveEnterTimestamp=garbage\n"}}
	snap, err := NewSystemctlSource(runner, time.UTC).Query(context.Background(), "frigbot.service")
	if err != nil {
		t.Fatalf("parse failure must not fail the query: %v", err)
	}
	if snap.ActiveState != "active" || !snap.ActiveEnter.IsZero() {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	berlin := time.FixedZone("CET", 3600)

	cases := []struct {
		name string
		in   string
		loc  *time.Location
		ok   bool
		want time.Time
	}{
		{name: "utc", in: "Mon 2025-01-13 09:15:02 UTC", loc: time.UTC, ok: true, want: time.Date(2025, 1, 13, 9, 15, 2, 0, time.UTC)},
		{name: "utc in other zone", in: "Mon 2025-01-13 09:15:02 UTC", loc: berlin, ok: true, want: time.Date(2025, 1, 13, 9, 15, 2, 0, time.UTC)},
		{name: "local abbreviation", in: "Mon 2025-01-13 10:15:02 CET", loc: berlin, ok: true, want: time.Date(2025, 1, 13, 9, 15, 2, 0, time.UTC)},
		{name: "foreign abbreviation", in: "Mon 2025-01-13 10:15:02 MSK", loc: berlin, ok: false},
		{name: "n/a", in: "n/a", loc: time.UTC, ok: false},
		{name: "empty", in: "", loc: time.UTC, ok: false},
		{name: "wrong layout", in: "2025-01-13T09:15:02Z", loc: time.UTC, ok: false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTimestamp(tc.in, tc.loc)
			if ok != tc.ok {
				t.Fatalf("ok: got %v, want %v (t=%v)", ok, tc.ok, got)
			}
			if tc.ok && !got.Equal(tc.want) {
				t.Fatalf("time: got %v, want %v", got, tc.want)
			}
		})
	}
}
