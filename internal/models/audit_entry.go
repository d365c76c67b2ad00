package models

import "time"

// AuditEntry records one attempt to reach a key-gated route.
type AuditEntry struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Path       string    `json:"path"`
	RemoteIP   string    `json:"remote_ip"`
	Granted    bool      `json:"granted"`
}
