package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
)

func TestUploadUnconfiguredStoreIsUpstreamError(t *testing.T) {
	svc := NewMediaService(nil, "", "orkid-cms", time.Minute, nil)

	_, err := svc.Upload(context.Background(), strings.NewReader("bytes"), "clip.mp4", "video/mp4", entity.KindVideo)
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "media upload", uerr.Op)
}
