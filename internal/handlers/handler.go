package handlers

import (
	"html/template"
	"io/fs"
	"net/http"

	"frigdash/internal/logger"
	"frigdash/internal/service"
	"frigdash/internal/web"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if h.log != nil {
		router.Use(h.requestLogger)
	}

	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	// live tail (HTTP upgrade), same port
	router.GET("/ws/friglogs", h.keyMiddleware, h.wsLogs)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/frigbot", h.frigbotPage)
	r.GET("/kissyreport", h.keyMiddleware, h.kissyReport)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.keyMiddleware)
	{
		api.GET("/friglogs/chunk", h.getLogChunk)
		api.GET("/frigbot/status", h.getStatus)
		h.registerMemoryRoutes(api)
		api.GET("/audit", h.listAudit)
	}
}

func (h *Handler) registerMemoryRoutes(api *gin.RouterGroup) {
	memories := api.Group("/memories")
	{
		memories.GET("", h.listMemories)
		memories.GET("/:name", h.getMemory)
	}
}

// @Summary  Health check
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
