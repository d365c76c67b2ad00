package status

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSource struct {
	snap    Snapshot
	err     error
	gotUnit string
	calls   int
}

func (f *fakeSource) Query(ctx context.Context, unit string) (Snapshot, error) {
	f.calls++
	f.gotUnit = unit
	if _, ok := ctx.Deadline(); !ok {
		return Snapshot{}, errors.New("query must run under a deadline")
	}
	return f.snap, f.err
}

func TestFormatUptime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want string
	}{
		{in: 90061 * time.Second, want: "1d 1h 1m 1s"},
		{in: 0, want: "0d 0h 0m 0s"},
		{in: 59*time.Second + 999*time.Millisecond, want: "0d 0h 0m 59s"},
		{in: 3 * 24 * time.Hour, want: "3d 0h 0m 0s"},
		{in: -5 * time.Second, want: "0d 0h 0m 0s"},
	}
	for _, c := range cases {
		if got := FormatUptime(c.in); got != c.want {
			t.Errorf("FormatUptime(%v) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestUnitName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"frigbot":         "frigbot.service",
		"frigbot.service": "frigbot.service",
		"backup.timer":    "backup.timer",
		" frigbot ":       "frigbot.service",
		"":                "",
	}
	for in, want := range cases {
		if got := UnitName(in); got != want {
			t.Errorf("UnitName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestReader_Get(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 2, 1, 1, 1, 0, time.UTC)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("active with start time", func(t *testing.T) {
		t.Parallel()
		src := &fakeSource{snap: Snapshot{ActiveState: "active", ActiveEnter: start}}
		r := NewReader(src, time.Second)
		r.now = func() time.Time { return now }

		got := r.Get(context.Background(), "frigbot")
		if !got.Found || !got.Status.IsActive {
			t.Fatalf("unexpected result: %+v", got)
		}
		if got.Status.StartTime == nil || !got.Status.StartTime.Equal(start) {
			t.Fatalf("start time: %v", got.Status.StartTime)
		}
		if got.Status.Uptime != "1d 1h 1m 1s" {
			t.Fatalf("uptime: %q", got.Status.Uptime)
		}
		if src.gotUnit != "frigbot.service" {
			t.Fatalf("unit: %q", src.gotUnit)
		}
	})

	t.Run("state must match active exactly", func(t *testing.T) {
		t.Parallel()
		for _, state := range []string{"inactive", "activating", "Active", "failed"} {
			r := NewReader(&fakeSource{snap: Snapshot{ActiveState: state}}, 0)
			got := r.Get(context.Background(), "frigbot")
			if !got.Found || got.Status.IsActive {
				t.Fatalf("state %q: unexpected result %+v", state, got)
			}
		}
	})

	t.Run("missing start time leaves uptime empty", func(t *testing.T) {
		t.Parallel()
		r := NewReader(&fakeSource{snap: Snapshot{ActiveState: "active"}}, 0)
		got := r.Get(context.Background(), "frigbot")
		if got.Status.StartTime != nil || got.Status.Uptime != "" {
			t.Fatalf("expected absent start/uptime, got %+v", got.Status)
		}
	})

	t.Run("source failure is not found", func(t *testing.T) {
		t.Parallel()
		r := NewReader(&fakeSource{err: ErrUnavailable}, 0)
		got := r.Get(context.Background(), "frigbot")
		if got.Found {
			t.Fatalf("expected Found=false, got %+v", got)
		}
	})
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	if _, ok := NewSource("dbus").(*DBusSource); !ok {
		t.Error("dbus backend should build a DBusSource")
	}
	if _, ok := NewSource("systemctl").(*SystemctlSource); !ok {
		t.Error("systemctl backend should build a SystemctlSource")
	}
	if _, ok := NewSource("bogus").(*SystemctlSource); !ok {
		t.Error("unknown backend should fall back to systemctl")
	}
}

func TestSnapshotFromProps(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	snap, err := snapshotFromProps("frigbot.service", map[string]interface{}{
		"LoadState":            "loaded",
		"ActiveState":          "active",
		"ActiveEnterTimestamp": uint64(start.UnixMicro()),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ActiveState != "active" || !snap.ActiveEnter.Equal(start) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	snap, err = snapshotFromProps("x.service", map[string]interface{}{
		"LoadState":            "loaded",
		"ActiveState":          "inactive",
		"ActiveEnterTimestamp": uint64(0),
	})
	if err != nil || !snap.ActiveEnter.IsZero() {
		t.Fatalf("zero timestamp should stay absent: %+v, %v", snap, err)
	}

	if _, err := snapshotFromProps("gone.service", map[string]interface{}{"LoadState": "not-found"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
