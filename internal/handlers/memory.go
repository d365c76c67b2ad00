package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"frigdash/internal/memory"

	"github.com/gin-gonic/gin"
)

// contentTypeFor picks a MIME type from the extension; memory files are
// small text documents.
func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonl":
		return "application/json; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// @Summary      List memory files
// @Tags         memories
// @Produce      json
// @Param        key  query     string  true  "Shared secret"
// @Success      200  {object}  map[string]interface{}  "count, files"
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/memories [get]
func (h *Handler) listMemories(c *gin.Context) {
	files, err := h.services.ListMemories(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("memories_list_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list memories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(files),
		"files": files,
	})
}

// @Summary      Fetch a memory file
// @Tags         memories
// @Produce      plain
// @Param        key   query     string  true  "Shared secret"
// @Param        name  path      string  true  "File name"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/memories/{name} [get]
func (h *Handler) getMemory(c *gin.Context) {
	name := c.Param("name")
	data, err := h.services.ReadMemory(c.Request.Context(), name)
	switch {
	case errors.Is(err, memory.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid memory file name"})
		return
	case errors.Is(err, memory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "memory file not found"})
		return
	case err != nil:
		if h.log != nil {
			h.log.Errorw("memory_read_failed", "err", err, "name", name)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read memory file"})
		return
	}
	c.Data(http.StatusOK, contentTypeFor(name), data)
}
