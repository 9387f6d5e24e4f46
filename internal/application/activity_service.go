package application

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
	"github.com/orkidhq/orkid-cms/pkg/helpers"
)

const (
	activityLimit    = 5
	activityCacheKey = "activity:recent"
	activityCacheTTL = 30 * time.Second
)

// Activity is one entry of the dashboard's recent-activity feed.
type Activity struct {
	Type    string    `json:"type"` // category, video, submission
	Action  string    `json:"action"`
	Details string    `json:"details"`
	Time    time.Time `json:"time"`
}

// ActivityService merges the most recent categories, videos and submissions
// into a single feed. The result is cached in Redis for a short TTL; cache
// trouble degrades to a direct read.
type ActivityService struct {
	Categories  repo.CategoryRepository
	Videos      repo.VideoRepository
	Submissions repo.SubmissionRepository
	Redis       *redis.Client
	Logger      *logrus.Logger
}

func NewActivityService(categories repo.CategoryRepository, videos repo.VideoRepository, submissions repo.SubmissionRepository, rdb *redis.Client, logger *logrus.Logger) *ActivityService {
	return &ActivityService{Categories: categories, Videos: videos, Submissions: submissions, Redis: rdb, Logger: logger}
}

func (s *ActivityService) Recent(ctx context.Context) ([]Activity, error) {
	if s.Redis != nil {
		var cached []Activity
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, activityCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	categories, err := s.Categories.List(ctx, activityLimit)
	if err != nil {
		return nil, err
	}
	videos, err := s.Videos.List(ctx, activityLimit)
	if err != nil {
		return nil, err
	}
	submissions, err := s.Submissions.List(ctx, repo.SubmissionFilter{}, activityLimit)
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(categories)+len(videos)+len(submissions))
	for _, c := range categories {
		activities = append(activities, Activity{Type: "category", Action: "New category created", Details: c.Name, Time: c.CreatedAt})
	}
	for _, v := range videos {
		activities = append(activities, Activity{Type: "video", Action: "Video uploaded", Details: v.Title, Time: v.CreatedAt})
	}
	for _, sub := range submissions {
		details := "Unknown Task"
		if sub.Task != nil {
			details = sub.Task.Description
		}
		activities = append(activities, Activity{Type: "submission", Action: "Submission received", Details: details, Time: sub.CreatedAt})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})
	if len(activities) > activityLimit {
		activities = activities[:activityLimit]
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, activityCacheKey, activities, activityCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("activity cache write failed")
		}
	}
	return activities, nil
}
