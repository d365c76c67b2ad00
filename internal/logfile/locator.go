package logfile

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPattern matches the frigbot JSONL logs ("frigbot_20250101_120000.jsonl").
const DefaultPattern = "frigbot_*.jsonl"

// ErrNoLogFile covers every reason the locator could not produce a file:
// missing directory, no match, permission error, malformed pattern.
var ErrNoLogFile = errors.New("no log file")

// Locator finds the newest log file in Dir. Log names embed a sortable
// timestamp, so the lexicographically greatest match is the newest one.
type Locator struct {
	Dir     string
	Pattern string
}

// NewLocator builds a Locator, falling back to DefaultPattern.
func NewLocator(dir, pattern string) *Locator {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Locator{Dir: dir, Pattern: pattern}
}

// Latest returns the full path of the newest matching regular file.
func (l *Locator) Latest() (string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return "", ErrNoLogFile
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(l.Pattern, e.Name())
		if err != nil {
			return "", ErrNoLogFile
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", ErrNoLogFile
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return filepath.Join(l.Dir, names[0]), nil
}
