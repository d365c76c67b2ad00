package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Service status
// @Description  Active state, start time and uptime of the watched service. available=false when the process manager could not be queried.
// @Tags         status
// @Produce      json
// @Param        key  query     string  true  "Shared secret"
// @Success      200  {object}  models.StatusResult
// @Failure      403  {object}  map[string]string
// @Router       /api/frigbot/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.ServiceStatus(c.Request.Context()))
}
