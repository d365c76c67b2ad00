package models

// LogChunk is one page of log lines, newest first.
type LogChunk struct {
	Lines      []string `json:"lines"`
	HasMore    bool     `json:"has_more"`
	TotalLines int      `json:"total_lines"`
	Offset     int      `json:"offset"`
	Error      string   `json:"error,omitempty"`
}

// LogEntrySummary is the short form of a JSONL log line pushed with the
// live tail. Message is truncated for display.
type LogEntrySummary struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"` // INFO | WARN | ERROR | DEBUG ...
	Message   string `json:"message"`
	EventType string `json:"event_type,omitempty"`
	Raw       bool   `json:"raw,omitempty"` // line was not valid JSON
}
