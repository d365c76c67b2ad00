package status

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// systemdTimestampLayout is how `systemctl show` prints timestamps,
// e.g. "Mon 2025-01-13 09:15:02 UTC".
const systemdTimestampLayout = "Mon 2006-01-02 15:04:05 MST"

const (
	propLoadState   = "LoadState"
	propActiveState = "ActiveState"
	propActiveEnter = "ActiveEnterTimestamp"
)

// SystemctlSource shells out to `systemctl show`.
type SystemctlSource struct {
	runner Runner
	loc    *time.Location
}

// NewSystemctlSource uses ExecRunner when runner is nil. loc is the zone
// systemctl formats timestamps in (the host's local zone).
func NewSystemctlSource(runner Runner, loc *time.Location) *SystemctlSource {
	if runner == nil {
		runner = ExecRunner()
	}
	if loc == nil {
		loc = time.Local
	}
	return &SystemctlSource{runner: runner, loc: loc}
}

func (s *SystemctlSource) Query(ctx context.Context, unit string) (Snapshot, error) {
	res, err := s.runner.Run(ctx, "systemctl", "show", unit,
		"--property="+propLoadState,
		"--property="+propActiveState,
		"--property="+propActiveEnter,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("systemctl show %s: %w: %v", unit, ErrUnavailable, err)
	}
	if res.ExitCode != 0 {
		return Snapshot{}, fmt.Errorf("systemctl show %s: exit %d: %w", unit, res.ExitCode, ErrUnavailable)
	}

	props := parseProperties(res.Output)
	if props[propLoadState] == loadNotFound {
		return Snapshot{}, fmt.Errorf("unit %s: %w", unit, ErrUnavailable)
	}

	snap := Snapshot{ActiveState: props[propActiveState]}
	if ts, ok := ParseTimestamp(props[propActiveEnter], s.loc); ok {
		snap.ActiveEnter = ts
	}
	return snap, nil
}

// parseProperties reads "Key=Value" lines.
func parseProperties(out string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		props[key] = strings.TrimSpace(value)
	}
	return props
}

// ParseTimestamp parses a systemd timestamp. The zone abbreviation must be
// UTC/GMT or one that loc actually uses at that instant; anything else
// (another locale's abbreviation, "n/a", empty) is a parse failure.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "n/a" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(systemdTimestampLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}

	abbr := s[strings.LastIndexByte(s, ' ')+1:]
	if abbr == "UTC" || abbr == "GMT" {
		return t, true
	}
	if name, _ := t.In(loc).Zone(); name != abbr {
		return time.Time{}, false
	}
	return t, true
}
