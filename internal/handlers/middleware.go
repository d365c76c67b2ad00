package handlers

import (
	"net/http"
	"time"

	"frigdash/internal/models"

	"github.com/gin-gonic/gin"
)

const errForbidden = "forbidden"

// keyMiddleware gates a route on the shared-secret "key" query parameter.
// Every attempt is written to the audit log.
func (h *Handler) keyMiddleware(c *gin.Context) {
	granted := h.services.Allow(c.Query("key"))
	h.recordAccess(c, granted)

	if !granted {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": errForbidden,
		})
		return
	}
	c.Next()
}

// recordAccess never fails the request; audit errors are only logged.
func (h *Handler) recordAccess(c *gin.Context, granted bool) {
	if h.services.Audit == nil {
		return
	}
	err := h.services.Record(c.Request.Context(), models.AuditEntry{
		Path:     c.Request.URL.Path,
		RemoteIP: c.ClientIP(),
		Granted:  granted,
	})
	if err != nil && h.log != nil {
		h.log.Errorw("audit_record_failed", "err", err, "path", c.Request.URL.Path)
	}
}

// requestLogger logs one line per request. Only the path is logged, so the
// key query parameter never reaches the log.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"ip", c.ClientIP(),
	)
}
