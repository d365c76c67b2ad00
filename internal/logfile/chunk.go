package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"frigdash/internal/models"
)

// Page size bounds for a chunk request.
const (
	DefaultLimit = 100
	MaxLimit     = 500
	MinLimit     = 1
)

// Placeholder texts shown instead of log lines.
const (
	msgNoLogFiles   = "No log files found."
	msgReadFailedFm = "Error reading log file: %v"
)

// ErrInvalidParams is returned when offset or limit are not integers.
var ErrInvalidParams = errors.New("invalid offset or limit parameter")

// ChunkRequest selects a page counted from the end of the file.
type ChunkRequest struct {
	Offset int // lines to skip from the end
	Limit  int // page size, within [MinLimit, MaxLimit]
}

// NewChunkRequest clamps offset to >= 0 and limit to [MinLimit, MaxLimit].
func NewChunkRequest(offset, limit int) ChunkRequest {
	if offset < 0 {
		offset = 0
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return ChunkRequest{Offset: offset, Limit: limit}
}

// QueryFunc looks up a query parameter and reports whether it was present,
// like gin's Context.GetQuery or url.Values lookups.
type QueryFunc func(key string) (string, bool)

// ParseChunkRequest reads "offset" and "limit". Absent parameters fall back
// to offset 0 and DefaultLimit; a present value that is not an integer
// (including an empty one) yields ErrInvalidParams. Integers too large for
// int saturate and are then clamped.
func ParseChunkRequest(query QueryFunc) (ChunkRequest, error) {
	offset, err := parseIntOr(query, "offset", 0)
	if err != nil {
		return ChunkRequest{}, ErrInvalidParams
	}
	limit, err := parseIntOr(query, "limit", DefaultLimit)
	if err != nil {
		return ChunkRequest{}, ErrInvalidParams
	}
	return NewChunkRequest(offset, limit), nil
}

func parseIntOr(query QueryFunc, key string, def int) (int, error) {
	raw, ok := query(key)
	if !ok {
		return def, nil
	}
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return v, err
}

// EmptyChunk is the well-formed empty result, used for error responses.
func EmptyChunk(errMsg string) models.LogChunk {
	return models.LogChunk{Lines: []string{}, Error: errMsg}
}

// Reader pages through the newest log file found by its Locator.
type Reader struct {
	locator *Locator
}

func NewReader(locator *Locator) *Reader {
	return &Reader{locator: locator}
}

// Latest exposes the locator result.
func (r *Reader) Latest() (string, error) {
	return r.locator.Latest()
}

// GetChunk returns the requested page. Failures never leave the result
// malformed: a missing log file or read error is reported in the Error
// field and the error is also returned so callers can log it.
func (r *Reader) GetChunk(req ChunkRequest) (models.LogChunk, error) {
	req = NewChunkRequest(req.Offset, req.Limit)

	path, err := r.locator.Latest()
	if err != nil {
		return EmptyChunk(msgNoLogFiles), err
	}

	lines, err := readLines(path)
	if err != nil {
		return EmptyChunk(fmt.Sprintf(msgReadFailedFm, err)), fmt.Errorf("read %s: %w", path, err)
	}

	return sliceChunk(lines, req), nil
}

// sliceChunk takes [start, end) counted back from the end of lines,
// reverses it and drops blank lines.
func sliceChunk(lines []string, req ChunkRequest) models.LogChunk {
	total := len(lines)
	end := total - req.Offset
	if end < 0 {
		end = 0
	}
	start := end - req.Limit
	if start < 0 {
		start = 0
	}

	page := make([]string, 0, end-start)
	for i := end - 1; i >= start; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		page = append(page, lines[i])
	}

	return models.LogChunk{
		Lines:      page,
		HasMore:    start > 0,
		TotalLines: total,
		Offset:     req.Offset,
	}
}

// readLines splits the file on '\n'. A trailing newline does not produce
// an extra empty line. bufio.Reader is used instead of Scanner because
// JSONL records can exceed the scanner's token limit.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
