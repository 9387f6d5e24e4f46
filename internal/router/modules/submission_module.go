package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
)

// SubmissionModule wires task-submission CRUD.
// Public: GET /api/submissions (filterable by userId/taskId/videoId)
// Gated:  POST /api/submissions, PUT/DELETE /api/submissions/:id
type SubmissionModule struct {
	Handler *handlers.SubmissionHandler
	Gate    gin.HandlerFunc
	Write   []gin.HandlerFunc
}

func NewSubmissionModule(h *handlers.SubmissionHandler, gate gin.HandlerFunc, write []gin.HandlerFunc) *SubmissionModule {
	return &SubmissionModule{Handler: h, Gate: gate, Write: write}
}

func (m *SubmissionModule) Register(rg *gin.RouterGroup) {
	rg.GET("/submissions", m.Handler.List)

	gated := rg.Group("/submissions", m.Gate)
	gated.Use(m.Write...)
	gated.POST("", m.Handler.Create)
	gated.PUT("/:id", m.Handler.Update)
	gated.DELETE("/:id", m.Handler.Delete)
}
