package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orkidhq/orkid-cms/internal/application"
	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	"github.com/orkidhq/orkid-cms/pkg/response"
	"github.com/orkidhq/orkid-cms/pkg/validation"
)

type TaskHandler struct {
	Svc    *app.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *app.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// Content is literal text for type=text, a URL otherwise; the shape is the
// client's responsibility (no URL-format validation happens here).
type taskRequest struct {
	Type        string `json:"type" binding:"required,contentkind"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks", nil)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), entity.ContentKind(req.Type), req.Description, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created", nil)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), entity.ContentKind(req.Type), req.Description, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "task deleted", nil)
}
