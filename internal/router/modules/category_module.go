package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
)

// CategoryModule wires category CRUD.
// Public: GET /api/categories
// Gated:  POST /api/categories, PUT/DELETE /api/categories/:id
type CategoryModule struct {
	Handler *handlers.CategoryHandler
	Gate    gin.HandlerFunc
	Write   []gin.HandlerFunc
}

func NewCategoryModule(h *handlers.CategoryHandler, gate gin.HandlerFunc, write []gin.HandlerFunc) *CategoryModule {
	return &CategoryModule{Handler: h, Gate: gate, Write: write}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.List)

	gated := rg.Group("/categories", m.Gate)
	gated.Use(m.Write...)
	gated.POST("", m.Handler.Create)
	gated.PUT("/:id", m.Handler.Update)
	gated.DELETE("/:id", m.Handler.Delete)
}
