package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// VideoRepository persists videos with the pause list embedded as a JSONB
// array, which keeps the client's insertion order byte for byte. The category
// reference carries no SQL constraint: deleting a category leaves the id
// dangling and the LEFT JOIN below resolves it to null.
type VideoRepository struct {
	pool *pgxpool.Pool
}

func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

func encodePauseTimes(pts []entity.PauseTime) ([]byte, error) {
	if pts == nil {
		pts = []entity.PauseTime{}
	}
	return json.Marshal(pts)
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	pts, err := encodePauseTimes(v.PauseTimes)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (category_id, title, description, media_url, duration, pause_times)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, v.CategoryID, v.Title, v.Description, v.MediaURL, v.Duration, pts)

	return row.Scan(&v.ID, &v.CreatedAt)
}

const videoSelect = `
	SELECT v.id, v.category_id, v.title, v.description, v.media_url, v.duration, v.pause_times, v.created_at,
	       c.id, c.name, c.description, c.created_at
	FROM videos v
	LEFT JOIN categories c ON c.id = v.category_id
`

func scanVideo(row pgx.Row) (*entity.Video, error) {
	var (
		v        entity.Video
		rawPause []byte
		catID    *string
		catName  *string
		catDesc  *string
		catAt    *time.Time
	)
	if err := row.Scan(&v.ID, &v.CategoryID, &v.Title, &v.Description, &v.MediaURL, &v.Duration, &rawPause, &v.CreatedAt,
		&catID, &catName, &catDesc, &catAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawPause, &v.PauseTimes); err != nil {
		return nil, err
	}
	if catID != nil {
		v.Category = &entity.Category{ID: *catID, Name: *catName, Description: *catDesc, CreatedAt: *catAt}
	}
	return &v, nil
}

func (r *VideoRepository) List(ctx context.Context, limit int) ([]entity.Video, error) {
	q := videoSelect + ` ORDER BY v.created_at DESC, v.id`
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

	out := make([]entity.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	vid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	v, err := scanVideo(r.pool.QueryRow(ctx, videoSelect+` WHERE v.id = $1`, vid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) Update(ctx context.Context, v *entity.Video) error {
	pts, err := encodePauseTimes(v.PauseTimes)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE videos
		SET category_id = $1, title = $2, description = $3, media_url = $4, duration = $5, pause_times = $6
		WHERE id = $7
	`, v.CategoryID, v.Title, v.Description, v.MediaURL, v.Duration, pts, v.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	vid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, vid)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

var _ repo.VideoRepository = (*VideoRepository)(nil)
