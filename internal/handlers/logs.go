package handlers

import (
	"errors"
	"net/http"

	"frigdash/internal/logfile"

	"github.com/gin-gonic/gin"
)

const errChunkParams = "Invalid offset or limit parameter"

// @Summary      Log chunk
// @Description  Page of frigbot log lines counted back from the end of the newest log file, newest first. limit is clamped to [1,500], negative offset to 0.
// @Tags         logs
// @Produce      json
// @Param        key     query     string  true   "Shared secret"
// @Param        offset  query     int     false  "Lines to skip from the end"  default(0)
// @Param        limit   query     int     false  "Page size"                  default(100)
// @Success      200     {object}  models.LogChunk
// @Failure      400     {object}  models.LogChunk
// @Failure      403     {object}  map[string]string
// @Router       /api/friglogs/chunk [get]
func (h *Handler) getLogChunk(c *gin.Context) {
	req, err := logfile.ParseChunkRequest(c.GetQuery)
	if err != nil {
		c.JSON(http.StatusBadRequest, logfile.EmptyChunk(errChunkParams))
		return
	}

	chunk, err := h.services.LogChunk(c.Request.Context(), req)
	if err != nil && !errors.Is(err, logfile.ErrNoLogFile) && h.log != nil {
		h.log.Errorw("log_chunk_failed", "err", err, "offset", req.Offset, "limit", req.Limit)
	}
	c.JSON(http.StatusOK, chunk)
}
