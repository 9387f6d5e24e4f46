package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	"github.com/orkidhq/orkid-cms/pkg/helpers"
)

// Upload result: the durable URL goes into the owning record, the object id is
// kept opaque for the client.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// MediaService pushes raw media bytes to the external store before any record
// referencing them exists. A failed upload therefore never leaves a partial
// record behind. Video uploads may run for minutes; Timeout bounds them
// generously.
type MediaService struct {
	GCS     *storage.Client
	Bucket  string
	Folder  string
	Timeout time.Duration
	Logger  *logrus.Logger
}

func NewMediaService(gcs *storage.Client, bucket, folder string, timeout time.Duration, logger *logrus.Logger) *MediaService {
	return &MediaService{GCS: gcs, Bucket: bucket, Folder: folder, Timeout: timeout, Logger: logger}
}

func (s *MediaService) Upload(ctx context.Context, r io.Reader, filename, contentType string, kind entity.ContentKind) (*UploadResult, error) {
	if s.GCS == nil || s.Bucket == "" {
		return nil, &UpstreamError{Op: "media upload", Err: errMediaStoreUnconfigured}
	}

	// "video" gets its own prefix, everything else is generic media.
	segment := "media"
	if kind == entity.KindVideo {
		segment = "video"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join(s.Folder, segment, uuid.NewString()+ext))

	c := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		c, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	url, err := helpers.UploadObject(c, s.GCS, s.Bucket, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("object", objectPath).Error("media upload failed")
		}
		return nil, &UpstreamError{Op: "media upload", Err: err}
	}
	return &UploadResult{URL: url, PublicID: objectPath}, nil
}
