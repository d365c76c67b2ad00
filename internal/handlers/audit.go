package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      Recent access attempts
// @Description  Newest first. limit defaults to 50 and is capped at 500.
// @Tags         audit
// @Produce      json
// @Param        key    query     string  true   "Shared secret"
// @Param        limit  query     int     false  "Max entries"  default(50)
// @Success      200    {object}  map[string]interface{}  "count, entries"
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/audit [get]
func (h *Handler) listAudit(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit'; use an integer"})
			return
		}
		limit = v
	}

	entries, err := h.services.Recent(c.Request.Context(), limit)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("audit_list_failed", "err", err, "limit", limit)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}
