package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// CategoryService manages video groupings. Deleting a category never cascades
// to its videos; their categoryId is left dangling and resolves to null on
// read.
type CategoryService struct {
	Repo   repo.CategoryRepository
	Logger *logrus.Logger
}

func NewCategoryService(r repo.CategoryRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Repo: r, Logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*entity.Category, error) {
	c := &entity.Category{Name: name, Description: description}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.Repo.List(ctx, 0)
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*entity.Category, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Description = description
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
