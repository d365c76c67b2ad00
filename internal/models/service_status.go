package models

import "time"

type ServiceStatus struct {
	IsActive  bool       `json:"is_active"`
	StartTime *time.Time `json:"start_time,omitempty"`
	Uptime    string     `json:"uptime,omitempty"` // e.g. "1d 1h 1m 1s"
}

// StatusResult tags a status lookup: Found is false when the process manager
// could not be queried or does not know the service.
type StatusResult struct {
	Found  bool          `json:"available"`
	Status ServiceStatus `json:"status"`
}
