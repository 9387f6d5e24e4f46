package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// In-memory repositories mirroring the postgres implementations: newest-first
// listings, ErrNotFound on missing ids, references resolved on read and left
// dangling on delete.

type memClock struct{ t time.Time }

func newMemClock() *memClock {
	return &memClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *memClock) next() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type memCategoryRepo struct {
	clock *memClock
	items map[string]*entity.Category
}

func newMemCategoryRepo(clock *memClock) *memCategoryRepo {
	return &memCategoryRepo{clock: clock, items: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = uuid.NewString()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.clock.next()
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) List(_ context.Context, limit int) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memTaskRepo struct {
	clock *memClock
	items map[string]*entity.Task
}

func newMemTaskRepo(clock *memClock) *memTaskRepo {
	return &memTaskRepo{clock: clock, items: map[string]*entity.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	t.ID = uuid.NewString()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = r.clock.next()
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) List(_ context.Context, limit int) ([]entity.Task, error) {
	out := make([]entity.Task, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.items[t.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memUserRepo struct {
	clock *memClock
	items map[string]*entity.User
}

func newMemUserRepo(clock *memClock) *memUserRepo {
	return &memUserRepo{clock: clock, items: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.clock.next()
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.items[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Password = passwordHash
	return nil
}

type memVideoRepo struct {
	clock      *memClock
	categories *memCategoryRepo
	items      map[string]*entity.Video
}

func newMemVideoRepo(clock *memClock, categories *memCategoryRepo) *memVideoRepo {
	return &memVideoRepo{clock: clock, categories: categories, items: map[string]*entity.Video{}}
}

func (r *memVideoRepo) resolve(v entity.Video) entity.Video {
	v.Category = nil
	if r.categories != nil {
		if c, ok := r.categories.items[v.CategoryID]; ok {
			cp := *c
			v.Category = &cp
		}
	}
	return v
}

func (r *memVideoRepo) Create(_ context.Context, v *entity.Video) error {
	v.ID = uuid.NewString()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = r.clock.next()
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *memVideoRepo) List(_ context.Context, limit int) ([]entity.Video, error) {
	out := make([]entity.Video, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, r.resolve(*v))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memVideoRepo) GetByID(_ context.Context, id string) (*entity.Video, error) {
	v, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	resolved := r.resolve(*v)
	return &resolved, nil
}

func (r *memVideoRepo) Update(_ context.Context, v *entity.Video) error {
	if _, ok := r.items[v.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *memVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memSubmissionRepo struct {
	clock  *memClock
	users  *memUserRepo
	tasks  *memTaskRepo
	videos *memVideoRepo
	items  map[string]*entity.TaskSubmission
}

func newMemSubmissionRepo(clock *memClock, users *memUserRepo, tasks *memTaskRepo, videos *memVideoRepo) *memSubmissionRepo {
	return &memSubmissionRepo{clock: clock, users: users, tasks: tasks, videos: videos, items: map[string]*entity.TaskSubmission{}}
}

func (r *memSubmissionRepo) resolve(s entity.TaskSubmission) entity.TaskSubmission {
	s.User, s.Task, s.Video = nil, nil, nil
	if r.users != nil {
		if u, ok := r.users.items[s.UserID]; ok {
			s.User = u.Ref()
		}
	}
	if r.tasks != nil {
		if t, ok := r.tasks.items[s.TaskID]; ok {
			cp := *t
			s.Task = &cp
		}
	}
	if r.videos != nil {
		if v, ok := r.videos.items[s.VideoID]; ok {
			cp := r.videos.resolve(*v)
			s.Video = &cp
		}
	}
	return s
}

func (r *memSubmissionRepo) Create(_ context.Context, s *entity.TaskSubmission) error {
	s.ID = uuid.NewString()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = r.clock.next()
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memSubmissionRepo) List(_ context.Context, f repo.SubmissionFilter, limit int) ([]entity.TaskSubmission, error) {
	out := make([]entity.TaskSubmission, 0, len(r.items))
	for _, s := range r.items {
		if f.UserID != "" && s.UserID != f.UserID {
			continue
		}
		if f.TaskID != "" && s.TaskID != f.TaskID {
			continue
		}
		if f.VideoID != "" && s.VideoID != f.VideoID {
			continue
		}
		out = append(out, r.resolve(*s))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memSubmissionRepo) GetByID(_ context.Context, id string) (*entity.TaskSubmission, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	resolved := r.resolve(*s)
	return &resolved, nil
}

func (r *memSubmissionRepo) Update(_ context.Context, s *entity.TaskSubmission) error {
	if _, ok := r.items[s.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memSubmissionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
