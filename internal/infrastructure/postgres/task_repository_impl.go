package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (type, description, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, string(t.Type), t.Description, t.Content)

	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) List(ctx context.Context, limit int) ([]entity.Task, error) {
	q := `
		SELECT id, type, description, content, created_at
		FROM tasks
		ORDER BY created_at DESC, id
	`
	var rows pgx.Rows
	var err error
	if limit > 0 {
		rows, err = r.pool.Query(ctx, q+` LIMIT $1`, limit)
	} else {
		rows, err = r.pool.Query(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Type, &t.Description, &t.Content, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	tid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, type, description, content, created_at
		FROM tasks
		WHERE id = $1
	`, tid)

	if err := row.Scan(&t.ID, &t.Type, &t.Description, &t.Content, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks SET type = $1, description = $2, content = $3 WHERE id = $4
	`, string(t.Type), t.Description, t.Content, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, tid)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

var _ repo.TaskRepository = (*TaskRepository)(nil)
