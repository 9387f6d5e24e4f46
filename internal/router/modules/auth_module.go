package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orkidhq/orkid-cms/internal/container"
	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
	"github.com/orkidhq/orkid-cms/internal/interface/middleware"
)

// AuthModule wires registration, login and password changes.
// Public: POST /api/auth/register, POST /api/auth/login
// Gated:  PUT /api/auth/password
// Register and login are throttled per IP; failed and successful attempts
// count the same.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Gate    gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, gate gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Gate: gate}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	auth := rg.Group("/auth")
	auth.POST("/register", limiter, m.Handler.Register)
	auth.POST("/login", limiter, m.Handler.Login)
	auth.PUT("/password", m.Gate, m.Handler.ChangePassword)
}
