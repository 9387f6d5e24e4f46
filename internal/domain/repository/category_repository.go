package repository

import (
	"context"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
)

// CategoryRepository defines the interface for category database operations.
// List returns newest first; limit <= 0 means no limit. That ordering is a
// documented guarantee relied on by the activity feed.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	List(ctx context.Context, limit int) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}
