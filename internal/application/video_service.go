package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// VideoInput is the write shape for a video; the pause list is taken as-is,
// in the order the client sent it.
type VideoInput struct {
	CategoryID  string
	Title       string
	Description string
	MediaURL    string
	Duration    int
	PauseTimes  []entity.PauseTime
}

// VideoService manages media assets and their pause timelines.
//
// With Strict set (the default), writes verify that the referenced category
// and every referenced pause task exist, and that every pause time lies in
// [0, duration]. Unset, it replicates the legacy system, which persisted
// whatever it was given. Deletes never cascade either way.
type VideoService struct {
	Repo       repo.VideoRepository
	Categories repo.CategoryRepository
	Tasks      repo.TaskRepository
	Strict     bool
	Logger     *logrus.Logger

	ES      *elasticsearch.Client
	ESIndex string
}

func NewVideoService(r repo.VideoRepository, categories repo.CategoryRepository, tasks repo.TaskRepository, strict bool, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *VideoService {
	return &VideoService{Repo: r, Categories: categories, Tasks: tasks, Strict: strict, Logger: logger, ES: es, ESIndex: esIndex}
}

func (s *VideoService) validate(ctx context.Context, in VideoInput) error {
	if !s.Strict {
		return nil
	}
	if _, err := s.Categories.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("categoryId", "references a category that does not exist")
		}
		return err
	}
	for _, pt := range in.PauseTimes {
		if pt.TimeInSeconds < 0 {
			return invalid("pauseTimes", "timeInSeconds must be non-negative")
		}
		if pt.TimeInSeconds > in.Duration {
			return invalid("pauseTimes", "timeInSeconds %d exceeds the video duration %d", pt.TimeInSeconds, in.Duration)
		}
		if pt.TaskID != nil {
			if _, err := s.Tasks.GetByID(ctx, *pt.TaskID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return invalid("pauseTimes", "references a task that does not exist")
				}
				return err
			}
		}
	}
	return nil
}

func (s *VideoService) Create(ctx context.Context, in VideoInput) (*entity.Video, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	v := &entity.Video{
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Description: in.Description,
		MediaURL:    in.MediaURL,
		Duration:    in.Duration,
		PauseTimes:  in.PauseTimes,
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, err
	}
	s.indexVideo(ctx, v)
	return v, nil
}

func (s *VideoService) List(ctx context.Context) ([]entity.Video, error) {
	return s.Repo.List(ctx, 0)
}

func (s *VideoService) Update(ctx context.Context, id string, in VideoInput) (*entity.Video, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	v, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.CategoryID = in.CategoryID
	v.Title = in.Title
	v.Description = in.Description
	v.MediaURL = in.MediaURL
	v.Duration = in.Duration
	v.PauseTimes = in.PauseTimes
	if err := s.Repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.indexVideo(ctx, v)
	return v, nil
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.ES != nil && s.ESIndex != "" {
		c, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
		if res, err := req.Do(c, s.ES); err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("video_id", id).Warn("es delete failed")
			}
		} else {
			_ = res.Body.Close()
		}
	}
	return nil
}

// indexVideo keeps the search index in step with the store, best effort: a
// search lagging behind a write is acceptable, a failed write response is not.
func (s *VideoService) indexVideo(ctx context.Context, v *entity.Video) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          v.ID,
		"title":       v.Title,
		"description": v.Description,
		"category_id": v.CategoryID,
		"created_at":  v.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: v.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", v.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("video_id", v.ID).Warn("es index response error")
	}
}

// Search performs a multi_match search on title and description.
func (s *VideoService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
