package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"frigdash/internal/logfile"
	"frigdash/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 2 * time.Second
	maxInterval      = 30 * time.Second
	maxIntervalMilli = 30_000
	defaultTailLimit = 50
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// tailOptions are the live tail query parameters:
// limit (default 50), level, event (comma separated, repeatable) and
// interval or interval_ms.
type tailOptions struct {
	interval time.Duration
	limit    int
	level    string
	events   map[string]bool
}

// tailState tracks what the client has already seen.
type tailState struct {
	opts      tailOptions
	lastTotal int
	sent      bool
}

// tailChunk is a LogChunk plus one summary per kept line.
type tailChunk struct {
	models.LogChunk
	Summaries []models.LogEntrySummary `json:"summaries"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsLogs streams the newest log lines whenever the log file grows.
func (h *Handler) wsLogs(c *gin.Context) {
	st := &tailState{opts: parseTailOptions(c)}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	closed := h.watchClose(conn)

	poll := time.NewTicker(st.opts.interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		poll.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendTail(ctx, conn, st); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-poll.C:
			if err := h.sendTail(ctx, conn, st); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseTailOptions never fails: bad values fall back to defaults, out of
// range limits are clamped by NewChunkRequest.
func parseTailOptions(c *gin.Context) tailOptions {
	opts := tailOptions{
		interval: defaultInterval,
		limit:    defaultTailLimit,
		level:    strings.TrimSpace(c.Query("level")),
	}

	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		opts.limit = v
	}

	if d, err := time.ParseDuration(c.Query("interval")); err == nil && d > 0 && d <= maxInterval {
		opts.interval = d
	} else if v, err := strconv.Atoi(c.Query("interval_ms")); err == nil && v > 0 && v <= maxIntervalMilli {
		opts.interval = time.Duration(v) * time.Millisecond
	}

	for _, raw := range c.QueryArray("event") {
		for _, ev := range strings.Split(raw, ",") {
			if ev = strings.TrimSpace(ev); ev != "" {
				if opts.events == nil {
					opts.events = make(map[string]bool)
				}
				opts.events[ev] = true
			}
		}
	}
	return opts
}

// watchClose drains incoming frames so pongs are handled; the returned
// channel closes once the client goes away.
func (h *Handler) watchClose(conn *websocket.Conn) <-chan struct{} {
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if h.log != nil {
					h.log.Infow("ws_read_closed", "err", err)
				}
				return
			}
		}
	}()
	return closed
}

// sendTail writes a chunk when the file's line count changed since the
// last send. The first call always writes.
func (h *Handler) sendTail(ctx context.Context, conn *websocket.Conn, st *tailState) error {
	chunk, err := h.services.LogChunk(ctx, logfile.NewChunkRequest(0, st.opts.limit))
	if st.sent && chunk.TotalLines == st.lastTotal {
		return nil
	}
	st.sent = true
	st.lastTotal = chunk.TotalLines

	env := wsEnvelope{Type: "chunk", Data: filterChunk(chunk, st.opts)}
	if err != nil {
		env.Error = chunk.Error
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

// filterChunk keeps the lines matching the level and event filters and
// summarizes them.
func filterChunk(chunk models.LogChunk, opts tailOptions) tailChunk {
	out := tailChunk{LogChunk: chunk}
	out.Lines = make([]string, 0, len(chunk.Lines))
	out.Summaries = make([]models.LogEntrySummary, 0, len(chunk.Lines))
	for _, line := range chunk.Lines {
		if !logfile.MatchLevel(line, opts.level) || !logfile.MatchEvent(line, opts.events) {
			continue
		}
		out.Lines = append(out.Lines, line)
		out.Summaries = append(out.Summaries, logfile.Summarize(line))
	}
	return out
}
