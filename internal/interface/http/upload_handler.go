package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orkidhq/orkid-cms/internal/application"
	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	"github.com/orkidhq/orkid-cms/pkg/response"
)

type UploadHandler struct {
	Svc    *app.MediaService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *app.MediaService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Upload accepts multipart form data with fields "file" and "type" and streams
// the bytes to the media store. The owning record is created by the client in
// a later request, so a failed upload leaves nothing behind.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "no file provided", nil)
		return
	}
	kind := entity.ContentKind(c.PostForm("type"))

	f, err := fh.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res, err := h.Svc.Upload(c.Request.Context(), f, fh.Filename, contentType, kind)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("filename", fh.Filename).Error("upload failed")
		}
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "upload successful", nil)
}
