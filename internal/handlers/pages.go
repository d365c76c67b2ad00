package handlers

import (
	"io/fs"
	"net/http"

	"frigdash/internal/logfile"
	"frigdash/internal/models"
	"frigdash/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	stateActive   = "active"
	stateInactive = "inactive"
	stateUnknown  = "unknown"
	noLogsText    = "No log files found."
	htmlMIME      = "text/html; charset=utf-8"
)

var viewerLevels = []string{"debug", "info", "warn", "error"}

// frigbotView is the data for templates/frigbot.html.
type frigbotView struct {
	State      string
	Uptime     string
	LogFile    string
	NoLogs     bool
	NoLogsText string
	Key        string
	ChunkSize  int
	Levels     []string
}

func (h *Handler) index(c *gin.Context) {
	h.serveStaticPage(c, "static/index.html")
}

func (h *Handler) kissyReport(c *gin.Context) {
	h.serveStaticPage(c, "static/kissyreport.html")
}

func (h *Handler) serveStaticPage(c *gin.Context, name string) {
	data, err := fs.ReadFile(web.Static, name)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("static_page_missing", "err", err, "page", name)
		}
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.Data(http.StatusOK, htmlMIME, data)
}

// frigbotPage renders the viewer shell; lines are fetched by the page
// script through /api/friglogs/chunk. Status failures render as "unknown".
func (h *Handler) frigbotPage(c *gin.Context) {
	ctx := c.Request.Context()

	view := frigbotView{
		Key:        c.Query("key"),
		ChunkSize:  logfile.DefaultLimit,
		Levels:     viewerLevels,
		NoLogsText: noLogsText,
	}
	view.State, view.Uptime = statusText(h.services.ServiceStatus(ctx))

	name, err := h.services.LatestLogFile(ctx)
	if err != nil {
		view.NoLogs = true
	} else {
		view.LogFile = name
	}

	c.HTML(http.StatusOK, "frigbot.html", view)
}

func statusText(res models.StatusResult) (state, uptime string) {
	if !res.Found {
		return stateUnknown, stateUnknown
	}
	state = stateInactive
	if res.Status.IsActive {
		state = stateActive
	}
	uptime = res.Status.Uptime
	if uptime == "" {
		uptime = stateUnknown
	}
	return state, uptime
}
