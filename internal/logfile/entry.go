package logfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"frigdash/internal/models"
)

const (
	defaultLevel  = "INFO"
	maxSummaryLen = 50
)

// Summarize extracts the viewer summary from one JSONL record. Lines that
// are not JSON objects come back with Raw set and the line as Message.
// Message is cut to 50 characters with a "..." suffix.
func Summarize(line string) models.LogEntrySummary {
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return models.LogEntrySummary{Level: defaultLevel, Message: truncate(line, maxSummaryLen), Raw: true}
	}

	s := models.LogEntrySummary{
		Timestamp: firstString(rec, "timestamp", "time"),
		Level:     firstString(rec, "level", "severity"),
		Message:   firstString(rec, "message", "msg"),
	}
	if s.Level == "" {
		s.Level = defaultLevel
	}

	if data, ok := rec["data"].(map[string]any); ok {
		s.EventType = firstString(data, "event_type")
		// chat messages carry the text in data.content
		if s.Level == defaultLevel {
			if content := firstString(data, "content"); content != "" {
				s.Message = fmt.Sprintf("%s: \"%s\"", s.Message, content)
			}
		}
	}
	s.Message = truncate(s.Message, maxSummaryLen)
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// MatchEvent reports whether the line passes an event-type filter. Lines
// without an event type always pass; an empty filter passes everything.
func MatchEvent(line string, events map[string]bool) bool {
	if len(events) == 0 {
		return true
	}
	et := Summarize(line).EventType
	return et == "" || events[et]
}

// MatchLevel reports whether the line's level equals want, ignoring case.
// "warning" and "warn" are the same level. An empty want matches all.
func MatchLevel(line, want string) bool {
	if want == "" {
		return true
	}
	return normalizeLevel(Summarize(line).Level) == normalizeLevel(want)
}

func normalizeLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return "warn"
	}
	return s
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
