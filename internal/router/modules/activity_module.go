package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
)

// ActivityModule exposes the dashboard activity feed.
type ActivityModule struct {
	Handler *handlers.ActivityHandler
}

func NewActivityModule(h *handlers.ActivityHandler) *ActivityModule {
	return &ActivityModule{Handler: h}
}

func (m *ActivityModule) Register(rg *gin.RouterGroup) {
	rg.GET("/activity", m.Handler.Recent)
}
