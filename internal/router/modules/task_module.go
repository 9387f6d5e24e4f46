package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
)

// TaskModule wires task CRUD.
// Public: GET /api/tasks
// Gated:  POST /api/tasks, PUT/DELETE /api/tasks/:id
type TaskModule struct {
	Handler *handlers.TaskHandler
	Gate    gin.HandlerFunc
	Write   []gin.HandlerFunc
}

func NewTaskModule(h *handlers.TaskHandler, gate gin.HandlerFunc, write []gin.HandlerFunc) *TaskModule {
	return &TaskModule{Handler: h, Gate: gate, Write: write}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	rg.GET("/tasks", m.Handler.List)

	gated := rg.Group("/tasks", m.Gate)
	gated.Use(m.Write...)
	gated.POST("", m.Handler.Create)
	gated.PUT("/:id", m.Handler.Update)
	gated.DELETE("/:id", m.Handler.Delete)
}
