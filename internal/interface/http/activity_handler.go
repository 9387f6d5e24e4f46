package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orkidhq/orkid-cms/internal/application"
	"github.com/orkidhq/orkid-cms/pkg/response"
)

type ActivityHandler struct {
	Svc    *app.ActivityService
	Logger *logrus.Logger
}

func NewActivityHandler(svc *app.ActivityService, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{Svc: svc, Logger: logger}
}

func (h *ActivityHandler) Recent(c *gin.Context) {
	activities, err := h.Svc.Recent(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, activities, "recent activity", nil)
}
