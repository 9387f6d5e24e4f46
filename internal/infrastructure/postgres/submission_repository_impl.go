package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// SubmissionRepository persists task submissions. Like the video table, the
// task/user/video references carry no SQL constraints; reads resolve them via
// LEFT JOINs and surface dangling ids as null objects.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *entity.TaskSubmission) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO task_submissions (task_id, user_id, video_id, submission_type, file_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, s.TaskID, s.UserID, s.VideoID, string(s.SubmissionType), s.FileURL)

	return row.Scan(&s.ID, &s.CreatedAt)
}

const submissionSelect = `
	SELECT s.id, s.task_id, s.user_id, s.video_id, s.submission_type, s.file_url, s.created_at,
	       u.id, u.name, u.email,
	       t.id, t.type, t.description, t.content, t.created_at,
	       v.id, v.category_id, v.title, v.description, v.media_url, v.duration, v.pause_times, v.created_at
	FROM task_submissions s
	LEFT JOIN users u ON u.id = s.user_id
	LEFT JOIN tasks t ON t.id = s.task_id
	LEFT JOIN videos v ON v.id = s.video_id
`

func scanSubmission(row pgx.Row) (*entity.TaskSubmission, error) {
	var (
		s entity.TaskSubmission

		uID, uName, uEmail *string

		tID, tType, tDesc, tContent *string
		tAt                         *time.Time

		vID, vCat, vTitle, vDesc, vURL *string
		vDur                           *int
		vPause                         []byte
		vAt                            *time.Time
	)
	if err := row.Scan(&s.ID, &s.TaskID, &s.UserID, &s.VideoID, &s.SubmissionType, &s.FileURL, &s.CreatedAt,
		&uID, &uName, &uEmail,
		&tID, &tType, &tDesc, &tContent, &tAt,
		&vID, &vCat, &vTitle, &vDesc, &vURL, &vDur, &vPause, &vAt); err != nil {
		return nil, err
	}
	if uID != nil {
		s.User = &entity.UserRef{ID: *uID, Name: *uName, Email: *uEmail}
	}
	if tID != nil {
		s.Task = &entity.Task{ID: *tID, Type: entity.ContentKind(*tType), Description: *tDesc, Content: *tContent, CreatedAt: *tAt}
	}
	if vID != nil {
		v := &entity.Video{ID: *vID, CategoryID: *vCat, Title: *vTitle, Description: *vDesc, MediaURL: *vURL, Duration: *vDur, CreatedAt: *vAt}
		if err := json.Unmarshal(vPause, &v.PauseTimes); err != nil {
			return nil, err
		}
		s.Video = v
	}
	return &s, nil
}

func (r *SubmissionRepository) List(ctx context.Context, f repo.SubmissionFilter, limit int) ([]entity.TaskSubmission, error) {
	q := submissionSelect
	args := []any{}
	where := ""

	appendCond := func(col, id string) bool {
		v, ok := filterID(id)
		if !ok {
			return false
		}
		args = append(args, v)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf("%s = $%d", col, len(args))
		return true
	}

	if f.UserID != "" && !appendCond("s.user_id", f.UserID) {
		return []entity.TaskSubmission{}, nil
	}
	if f.TaskID != "" && !appendCond("s.task_id", f.TaskID) {
		return []entity.TaskSubmission{}, nil
	}
	if f.VideoID != "" && !appendCond("s.video_id", f.VideoID) {
		return []entity.TaskSubmission{}, nil
	}

	q += where + ` ORDER BY s.created_at DESC, s.id`
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.TaskSubmission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*entity.TaskSubmission, error) {
	sid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s, err := scanSubmission(r.pool.QueryRow(ctx, submissionSelect+` WHERE s.id = $1`, sid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SubmissionRepository) Update(ctx context.Context, s *entity.TaskSubmission) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE task_submissions SET submission_type = $1, file_url = $2 WHERE id = $3
	`, string(s.SubmissionType), s.FileURL, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	sid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM task_submissions WHERE id = $1`, sid)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

var _ repo.SubmissionRepository = (*SubmissionRepository)(nil)
