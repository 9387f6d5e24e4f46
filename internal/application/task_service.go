package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// TaskService manages interactive prompts. Deleting a task leaves dangling
// references in video pause lists and in submissions; reads treat those as
// absent.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

func (s *TaskService) Create(ctx context.Context, kind entity.ContentKind, description, content string) (*entity.Task, error) {
	if !kind.Valid() {
		return nil, invalid("type", "must be one of: image, video, pdf, text, audio")
	}
	t := &entity.Task{Type: kind, Description: description, Content: content}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context) ([]entity.Task, error) {
	return s.Repo.List(ctx, 0)
}

func (s *TaskService) Update(ctx context.Context, id string, kind entity.ContentKind, description, content string) (*entity.Task, error) {
	if !kind.Valid() {
		return nil, invalid("type", "must be one of: image, video, pdf, text, audio")
	}
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Type = kind
	t.Description = description
	t.Content = content
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
