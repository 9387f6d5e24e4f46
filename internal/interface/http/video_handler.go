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

type VideoHandler struct {
	Svc    *app.VideoService
	Logger *logrus.Logger
}

func NewVideoHandler(svc *app.VideoService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Svc: svc, Logger: logger}
}

type pauseTimeRequest struct {
	TimeInSeconds int     `json:"timeInSeconds" binding:"gte=0"`
	TaskID        *string `json:"taskId"`
}

type videoRequest struct {
	CategoryID  string             `json:"categoryId" binding:"required"`
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	MediaURL    string             `json:"mediaUrl" binding:"required"`
	Duration    int                `json:"duration" binding:"gte=0"`
	PauseTimes  []pauseTimeRequest `json:"pauseTimes" binding:"omitempty,dive"`
}

func (r *videoRequest) input() app.VideoInput {
	pts := make([]entity.PauseTime, 0, len(r.PauseTimes))
	for _, pt := range r.PauseTimes {
		pts = append(pts, entity.PauseTime{TimeInSeconds: pt.TimeInSeconds, TaskID: pt.TaskID})
	}
	return app.VideoInput{
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		MediaURL:    r.MediaURL,
		Duration:    r.Duration,
		PauseTimes:  pts,
	}
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "videos", nil)
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "video created", nil)
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video updated", nil)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "video deleted", nil)
}

// Search queries the Elasticsearch index; an empty q returns nothing rather
// than everything.
func (h *VideoHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Success(c, http.StatusOK, []map[string]any{}, "search results", nil)
		return
	}
	size := 10
	if s := c.Query("size"); s != "" {
		if n, err := parsePositiveInt(s); err == nil {
			size = n
		}
	}
	results, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, results, "search results", nil)
}
