package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orkidhq/orkid-cms/internal/application"
	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
	"github.com/orkidhq/orkid-cms/pkg/response"
	"github.com/orkidhq/orkid-cms/pkg/validation"
)

type SubmissionHandler struct {
	Svc    *app.SubmissionService
	Logger *logrus.Logger
}

func NewSubmissionHandler(svc *app.SubmissionService, logger *logrus.Logger) *SubmissionHandler {
	return &SubmissionHandler{Svc: svc, Logger: logger}
}

type submissionRequest struct {
	TaskID         string `json:"taskId" binding:"required"`
	UserID         string `json:"userId" binding:"required"`
	VideoID        string `json:"videoId" binding:"required"`
	SubmissionType string `json:"submissionType" binding:"required,contentkind"`
	FileURL        string `json:"fileUrl" binding:"required"`
}

type submissionUpdateRequest struct {
	SubmissionType string `json:"submissionType" binding:"required,contentkind"`
	FileURL        string `json:"fileUrl" binding:"required"`
}

// List is public and filterable by userId, taskId and videoId query params.
func (h *SubmissionHandler) List(c *gin.Context) {
	f := repo.SubmissionFilter{
		UserID:  c.Query("userId"),
		TaskID:  c.Query("taskId"),
		VideoID: c.Query("videoId"),
	}
	subs, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, subs, "submissions", nil)
}

func (h *SubmissionHandler) Create(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sub, err := h.Svc.Create(c.Request.Context(), app.SubmissionInput{
		TaskID:         req.TaskID,
		UserID:         req.UserID,
		VideoID:        req.VideoID,
		SubmissionType: entity.ContentKind(req.SubmissionType),
		FileURL:        req.FileURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sub, "submission created", nil)
}

func (h *SubmissionHandler) Update(c *gin.Context) {
	var req submissionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sub, err := h.Svc.Update(c.Request.Context(), c.Param("id"), entity.ContentKind(req.SubmissionType), req.FileURL)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub, "submission updated", nil)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "submission deleted", nil)
}
