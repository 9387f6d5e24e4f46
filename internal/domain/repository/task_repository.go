package repository

import (
	"context"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
)

// TaskRepository defines the interface for task database operations.
// List returns newest first; limit <= 0 means no limit.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	List(ctx context.Context, limit int) ([]entity.Task, error)
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
}
