package status

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
)

// DBusSource reads unit properties over the systemd D-Bus API instead of
// spawning systemctl.
type DBusSource struct{}

func NewDBusSource() *DBusSource { return &DBusSource{} }

func (s *DBusSource) Query(ctx context.Context, unit string) (Snapshot, error) {
	conn, err := dbus.NewWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dbus connect: %w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	props, err := conn.GetUnitPropertiesContext(ctx, unit)
	if err != nil {
		return Snapshot{}, fmt.Errorf("unit %s properties: %w: %v", unit, ErrUnavailable, err)
	}
	return snapshotFromProps(unit, props)
}

// snapshotFromProps maps raw D-Bus properties. ActiveEnterTimestamp is in
// microseconds since the epoch; zero means the unit never became active.
func snapshotFromProps(unit string, props map[string]interface{}) (Snapshot, error) {
	if load, _ := props[propLoadState].(string); load == loadNotFound {
		return Snapshot{}, fmt.Errorf("unit %s: %w", unit, ErrUnavailable)
	}

	snap := Snapshot{}
	snap.ActiveState, _ = props[propActiveState].(string)
	if us, ok := props[propActiveEnter].(uint64); ok && us > 0 {
		snap.ActiveEnter = time.UnixMicro(int64(us))
	}
	return snap, nil
}
