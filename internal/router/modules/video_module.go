package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
)

// VideoModule wires video CRUD and search.
// Public: GET /api/videos, GET /api/videos/search
// Gated:  POST /api/videos, PUT/DELETE /api/videos/:id
type VideoModule struct {
	Handler *handlers.VideoHandler
	Gate    gin.HandlerFunc
	Write   []gin.HandlerFunc
}

func NewVideoModule(h *handlers.VideoHandler, gate gin.HandlerFunc, write []gin.HandlerFunc) *VideoModule {
	return &VideoModule{Handler: h, Gate: gate, Write: write}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	rg.GET("/videos", m.Handler.List)
	rg.GET("/videos/search", m.Handler.Search)

	gated := rg.Group("/videos", m.Gate)
	gated.Use(m.Write...)
	gated.POST("", m.Handler.Create)
	gated.PUT("/:id", m.Handler.Update)
	gated.DELETE("/:id", m.Handler.Delete)
}
