package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
	"github.com/orkidhq/orkid-cms/pkg/helpers"
	"github.com/orkidhq/orkid-cms/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth gates mutating endpoints behind a bearer token. The token is verified
// against the server secret and resolved to a stored user; every failure mode
// (missing header, malformed token, bad signature, expired, unknown user)
// collapses into the same generic 401 so callers learn nothing about which
// check failed. Read endpoints are deliberately left open.
func Auth(jwt *helpers.JWTManager, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reject := func() {
			resp := response.Error[any](c, http.StatusUnauthorized, "please authenticate", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
		}

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			reject()
			return
		}
		claims, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			reject()
			return
		}
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || u == nil {
			reject()
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}
