package repository

import (
	"context"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
)

// VideoRepository defines the interface for video database operations.
// List returns newest first with Category resolved (nil when the category was
// deleted); limit <= 0 means no limit. PauseTimes round-trip in exact
// insertion order.
type VideoRepository interface {
	Create(ctx context.Context, v *entity.Video) error
	List(ctx context.Context, limit int) ([]entity.Video, error)
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	Update(ctx context.Context, v *entity.Video) error
	Delete(ctx context.Context, id string) error
}
