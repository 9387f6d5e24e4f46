package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

func newVideoFixture(strict bool) (*VideoService, *memCategoryRepo, *memTaskRepo) {
	clock := newMemClock()
	categories := newMemCategoryRepo(clock)
	tasks := newMemTaskRepo(clock)
	videos := newMemVideoRepo(clock, categories)
	svc := NewVideoService(videos, categories, tasks, strict, nil, nil, "")
	return svc, categories, tasks
}

func TestVideoCreatePreservesPauseOrder(t *testing.T) {
	svc, categories, tasks := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))
	task := &entity.Task{Type: entity.KindText, Description: "quiz", Content: "q"}
	require.NoError(t, tasks.Create(ctx, task))

	in := VideoInput{
		CategoryID: cat.ID,
		Title:      "Photosynthesis",
		MediaURL:   "https://cdn.example.com/v.mp4",
		Duration:   120,
		PauseTimes: []entity.PauseTime{
			{TimeInSeconds: 90, TaskID: &task.ID},
			{TimeInSeconds: 10},
			{TimeInSeconds: 90}, // duplicates are allowed
		},
	}
	v, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.Repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.PauseTimes, 3)
	assert.Equal(t, 90, got.PauseTimes[0].TimeInSeconds)
	assert.Equal(t, 10, got.PauseTimes[1].TimeInSeconds)
	assert.Equal(t, 90, got.PauseTimes[2].TimeInSeconds)
	require.NotNil(t, got.PauseTimes[0].TaskID)
	assert.Equal(t, task.ID, *got.PauseTimes[0].TaskID)
	assert.Nil(t, got.PauseTimes[1].TaskID)
}

func TestVideoCreateRejectsPausePastDuration(t *testing.T) {
	svc, categories, _ := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))

	_, err := svc.Create(ctx, VideoInput{
		CategoryID: cat.ID,
		Title:      "t",
		MediaURL:   "u",
		Duration:   60,
		PauseTimes: []entity.PauseTime{{TimeInSeconds: 61}},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pauseTimes", verr.Field)
}

func TestVideoCreateRejectsNegativePause(t *testing.T) {
	svc, categories, _ := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))

	_, err := svc.Create(ctx, VideoInput{
		CategoryID: cat.ID,
		Title:      "t",
		MediaURL:   "u",
		Duration:   60,
		PauseTimes: []entity.PauseTime{{TimeInSeconds: -1}},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestVideoCreateRejectsUnknownCategory(t *testing.T) {
	svc, _, _ := newVideoFixture(true)

	_, err := svc.Create(context.Background(), VideoInput{
		CategoryID: "deadbeef-0000-0000-0000-000000000000",
		Title:      "t",
		MediaURL:   "u",
		Duration:   10,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "categoryId", verr.Field)
}

func TestVideoCreateRejectsUnknownPauseTask(t *testing.T) {
	svc, categories, _ := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))

	ghost := "deadbeef-0000-0000-0000-000000000000"
	_, err := svc.Create(ctx, VideoInput{
		CategoryID: cat.ID,
		Title:      "t",
		MediaURL:   "u",
		Duration:   60,
		PauseTimes: []entity.PauseTime{{TimeInSeconds: 5, TaskID: &ghost}},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pauseTimes", verr.Field)
}

func TestVideoCompatModeSkipsChecks(t *testing.T) {
	svc, _, _ := newVideoFixture(false)
	ctx := context.Background()

	ghost := "deadbeef-0000-0000-0000-000000000000"
	v, err := svc.Create(ctx, VideoInput{
		CategoryID: ghost,
		Title:      "t",
		MediaURL:   "u",
		Duration:   60,
		PauseTimes: []entity.PauseTime{{TimeInSeconds: 999, TaskID: &ghost}},
	})
	require.NoError(t, err)
	assert.Equal(t, 999, v.PauseTimes[0].TimeInSeconds)
}

func TestVideoUpdateReplacesPauseList(t *testing.T) {
	svc, categories, _ := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))

	v, err := svc.Create(ctx, VideoInput{
		CategoryID: cat.ID,
		Title:      "t",
		MediaURL:   "u",
		Duration:   120,
		PauseTimes: []entity.PauseTime{{TimeInSeconds: 10}, {TimeInSeconds: 20}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, v.ID, VideoInput{
		CategoryID: cat.ID,
		Title:      "t2",
		MediaURL:   "u",
		Duration:   120,
		PauseTimes: []entity.PauseTime{{TimeInSeconds: 45}},
	})
	require.NoError(t, err)
	require.Len(t, updated.PauseTimes, 1)
	assert.Equal(t, 45, updated.PauseTimes[0].TimeInSeconds)
	assert.Equal(t, "t2", updated.Title)
}

func TestVideoUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, categories, _ := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))

	_, err := svc.Update(ctx, "missing", VideoInput{CategoryID: cat.ID, Title: "t", MediaURL: "u", Duration: 1})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestVideoListResolvesDanglingCategoryToNil(t *testing.T) {
	svc, categories, _ := newVideoFixture(true)
	ctx := context.Background()

	cat := &entity.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, cat))

	_, err := svc.Create(ctx, VideoInput{CategoryID: cat.ID, Title: "t", MediaURL: "u", Duration: 10})
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, cat.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Category)
	assert.Equal(t, cat.ID, list[0].CategoryID)
}
