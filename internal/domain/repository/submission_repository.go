package repository

import (
	"context"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
)

// SubmissionFilter narrows a submission listing; empty fields match anything.
type SubmissionFilter struct {
	UserID  string
	TaskID  string
	VideoID string
}

// SubmissionRepository defines the interface for task-submission database
// operations. List returns newest first with User, Task and Video resolved
// (nil for dangling references); limit <= 0 means no limit.
type SubmissionRepository interface {
	Create(ctx context.Context, s *entity.TaskSubmission) error
	List(ctx context.Context, f SubmissionFilter, limit int) ([]entity.TaskSubmission, error)
	GetByID(ctx context.Context, id string) (*entity.TaskSubmission, error)
	Update(ctx context.Context, s *entity.TaskSubmission) error
	Delete(ctx context.Context, id string) error
}
