// Package status reads a service's run state and start time from the host
// process manager (systemd) and derives an uptime string.
package status

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frigdash/internal/models"
)

// Backends selectable through configuration.
const (
	BackendSystemctl = "systemctl"
	BackendDBus      = "dbus"
)

const (
	stateActive      = "active"
	loadNotFound     = "not-found"
	defaultTimeout   = 3 * time.Second
	unitSuffix       = ".service"
	secondsPerDay    = 24 * 60 * 60
	secondsPerHour   = 60 * 60
	secondsPerMinute = 60
)

// ErrUnavailable means the process manager could not answer for the unit:
// command missing, non-zero exit, timeout, or unknown unit.
var ErrUnavailable = errors.New("service status not available")

// Snapshot is what a Source reports for one unit. A zero ActiveEnter means
// the start time is absent or could not be parsed.
type Snapshot struct {
	ActiveState string
	ActiveEnter time.Time
}

// Source queries the process manager for a single unit.
type Source interface {
	Query(ctx context.Context, unit string) (Snapshot, error)
}

// NewSource picks the backend by name; unknown names use systemctl.
func NewSource(backend string) Source {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendDBus:
		return NewDBusSource()
	default:
		return NewSystemctlSource(nil, time.Local)
	}
}

// Reader turns Source snapshots into models.StatusResult.
type Reader struct {
	source  Source
	timeout time.Duration
	now     func() time.Time
}

// NewReader builds a Reader. A non-positive timeout uses the default (3s).
func NewReader(source Source, timeout time.Duration) *Reader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Reader{source: source, timeout: timeout, now: time.Now}
}

// Get returns Found=false whenever the source fails; it never errors.
func (r *Reader) Get(ctx context.Context, name string) models.StatusResult {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	snap, err := r.source.Query(ctx, UnitName(name))
	if err != nil {
		return models.StatusResult{}
	}

	st := models.ServiceStatus{IsActive: snap.ActiveState == stateActive}
	if !snap.ActiveEnter.IsZero() {
		start := snap.ActiveEnter
		st.StartTime = &start
		st.Uptime = FormatUptime(r.now().Sub(start))
	}
	return models.StatusResult{Found: true, Status: st}
}

// UnitName appends ".service" to bare names.
func UnitName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ".") {
		return name
	}
	return name + unitSuffix
}

// FormatUptime renders d as "{days}d {hours}h {minutes}m {seconds}s" using
// whole seconds. Negative durations (clock skew) render as zero.
func FormatUptime(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	days := secs / secondsPerDay
	secs %= secondsPerDay
	hours := secs / secondsPerHour
	secs %= secondsPerHour
	minutes := secs / secondsPerMinute
	secs %= secondsPerMinute
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
}
