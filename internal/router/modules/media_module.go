package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
)

// MediaModule exposes the authenticated media upload endpoint.
type MediaModule struct {
	Handler *handlers.UploadHandler
	Gate    gin.HandlerFunc
	Write   []gin.HandlerFunc
}

func NewMediaModule(h *handlers.UploadHandler, gate gin.HandlerFunc, write []gin.HandlerFunc) *MediaModule {
	return &MediaModule{Handler: h, Gate: gate, Write: write}
}

func (m *MediaModule) Register(rg *gin.RouterGroup) {
	gated := rg.Group("/upload", m.Gate)
	gated.Use(m.Write...)
	gated.POST("", m.Handler.Upload)
}
