package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/orkidhq/orkid-cms/internal/application"
	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
	"github.com/orkidhq/orkid-cms/pkg/validation"
)

// End-to-end handler tests: real services and handlers over in-memory
// stores, exercising the full envelope and error mapping.

type fakeCategoryRepo struct {
	now   time.Time
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.now = r.now.Add(time.Second)
	c.ID, c.CreatedAt = uuid.NewString(), r.now
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, limit int) ([]entity.Category, error) {
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

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeVideoRepo struct {
	now        time.Time
	categories *fakeCategoryRepo
	items      map[string]*entity.Video
}

func newFakeVideoRepo(categories *fakeCategoryRepo) *fakeVideoRepo {
	return &fakeVideoRepo{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), categories: categories, items: map[string]*entity.Video{}}
}

func (r *fakeVideoRepo) resolve(v entity.Video) entity.Video {
	v.Category = nil
	if c, ok := r.categories.items[v.CategoryID]; ok {
		cp := *c
		v.Category = &cp
	}
	return v
}

func (r *fakeVideoRepo) Create(_ context.Context, v *entity.Video) error {
	r.now = r.now.Add(time.Second)
	v.ID, v.CreatedAt = uuid.NewString(), r.now
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *fakeVideoRepo) List(_ context.Context, limit int) ([]entity.Video, error) {
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

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*entity.Video, error) {
	v, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	resolved := r.resolve(*v)
	return &resolved, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, v *entity.Video) error {
	if _, ok := r.items[v.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeTaskRepo struct {
	items map[string]*entity.Task
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	t.ID = uuid.NewString()
	r.items[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) List(context.Context, int) ([]entity.Task, error) { return nil, nil }

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return t, nil
}

func (r *fakeTaskRepo) Update(context.Context, *entity.Task) error { return nil }
func (r *fakeTaskRepo) Delete(context.Context, string) error       { return nil }

func newTestRouter() (*gin.Engine, *fakeCategoryRepo, *fakeVideoRepo) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	categories := newFakeCategoryRepo()
	videos := newFakeVideoRepo(categories)
	tasks := &fakeTaskRepo{items: map[string]*entity.Task{}}

	categorySvc := app.NewCategoryService(categories, nil)
	videoSvc := app.NewVideoService(videos, categories, tasks, true, nil, nil, "")

	ch := NewCategoryHandler(categorySvc, nil)
	vh := NewVideoHandler(videoSvc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/categories", ch.List)
	api.POST("/categories", ch.Create)
	api.PUT("/categories/:id", ch.Update)
	api.DELETE("/categories/:id", ch.Delete)
	api.GET("/videos", vh.List)
	api.POST("/videos", vh.Create)
	return r, categories, videos
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestCategoryThenVideoFlow(t *testing.T) {
	router, _, _ := newTestRouter()

	w, envelope := doJSON(t, router, http.MethodPost, "/api/categories", gin.H{
		"name":        "Science",
		"description": "STEM videos",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	cat := envelope["data"].(map[string]any)
	catID := cat["id"].(string)
	require.NotEmpty(t, catID)

	w, envelope = doJSON(t, router, http.MethodPost, "/api/videos", gin.H{
		"categoryId": catID,
		"title":      "Photosynthesis",
		"mediaUrl":   "https://cdn.example.com/v.mp4",
		"duration":   120,
		"pauseTimes": []gin.H{{"timeInSeconds": 45}},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", envelope)

	w, envelope = doJSON(t, router, http.MethodGet, "/api/videos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := envelope["data"].([]any)
	require.Len(t, list, 1)
	video := list[0].(map[string]any)
	assert.Equal(t, "Photosynthesis", video["title"])

	category := video["category"].(map[string]any)
	assert.Equal(t, "Science", category["name"])

	pauses := video["pauseTimes"].([]any)
	require.Len(t, pauses, 1)
	assert.Equal(t, float64(45), pauses[0].(map[string]any)["timeInSeconds"])
}

func TestVideoCreateUnknownCategoryIs400(t *testing.T) {
	router, _, _ := newTestRouter()

	w, envelope := doJSON(t, router, http.MethodPost, "/api/videos", gin.H{
		"categoryId": "deadbeef-0000-0000-0000-000000000000",
		"title":      "t",
		"mediaUrl":   "u",
		"duration":   10,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
	details := envelope["error"].(map[string]any)
	assert.Contains(t, details, "categoryId")
}

func TestVideoCreateMissingTitleIs400(t *testing.T) {
	router, _, _ := newTestRouter()

	w, envelope := doJSON(t, router, http.MethodPost, "/api/videos", gin.H{
		"categoryId": "c",
		"mediaUrl":   "u",
		"duration":   10,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid payload", envelope["message"])
}

func TestCategoryUpdateUnknownIDIs404(t *testing.T) {
	router, _, _ := newTestRouter()

	w, envelope := doJSON(t, router, http.MethodPut, "/api/categories/deadbeef-0000-0000-0000-000000000000", gin.H{
		"name": "x",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", envelope["message"])
}

func TestCategoryDeleteIsForgivingButReports404(t *testing.T) {
	router, _, _ := newTestRouter()

	w, envelope := doJSON(t, router, http.MethodPost, "/api/categories", gin.H{"name": "Temp"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := envelope["data"].(map[string]any)["id"].(string)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/categories/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/categories/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
